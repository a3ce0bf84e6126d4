package uriutil_test

import (
	"testing"

	"github.com/cellar-dev/cellar-node/internal/uriutil"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	for _, tc := range []struct {
		s       string
		host    string
		withTLS bool
	}{
		// no scheme (TCP)
		{s: "127.0.0.1:8080", host: "127.0.0.1:8080", withTLS: false},
		{s: "node1.cellar.example.com:8080", host: "node1.cellar.example.com:8080", withTLS: false},
		// with scheme and port
		{s: "http://127.0.0.1:8080", host: "127.0.0.1:8080", withTLS: false},
		{s: "http://node1.cellar.example.com:8080", host: "node1.cellar.example.com:8080", withTLS: false},
		{s: "https://127.0.0.1:8443", host: "127.0.0.1:8443", withTLS: true},
		{s: "https://node1.cellar.example.com:8443", host: "node1.cellar.example.com:8443", withTLS: true},
	} {
		host, withTLS, err := uriutil.Parse(tc.s)
		require.NoError(t, err, tc.s)
		require.Equal(t, tc.host, host, tc.s)
		require.Equal(t, tc.withTLS, withTLS, tc.s)
	}

	t.Run("invalid", func(t *testing.T) {
		for _, tc := range []struct {
			name, s, err string
		}{
			{name: "unsupported scheme", s: "unknown://node1.cellar.example.com:8443", err: "unsupported scheme: unknown"},
			{name: "garbage URI", s: "not a URI", err: "address not a URI: missing port in address"},
			{name: "port only", s: "8080", err: "address 8080: missing port in address"},
			{name: "ip only", s: "127.0.0.1", err: "address 127.0.0.1: missing port in address"},
			{name: "host only", s: "node1.cellar.example.com", err: "address node1.cellar.example.com: missing port in address"},
			{name: "path only", s: "/var/lib/cellar/cellar.sock", err: "missing port in address"},
			{name: "ip with scheme without port", s: "http://127.0.0.1", err: "missing port in address"},
			{name: "host with scheme without port", s: "http://node1.cellar.example.com", err: "missing port in address"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := uriutil.Parse(tc.s)
				require.EqualError(t, err, tc.err)
			})
		}
	})
}
