// Package uriutil provides a helper for canonicalizing endpoint addresses
// given either as bare host:port pairs or as http(s) URIs.
package uriutil

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Parse canonicalizes the given endpoint address into a host:port pair and
// reports whether the scheme demands TLS. Plain "host:port" strings are
// accepted as-is, URIs must use the "http" or "https" scheme and carry an
// explicit port.
func Parse(s string) (string, bool, error) {
	uri, err := url.ParseRequestURI(s)

	// Strings like "localhost:8080" parse as opaque URIs, treat everything
	// without an authority part as a bare address.
	isURI := err == nil && uri.Opaque == ""
	if !isURI {
		if _, _, err := net.SplitHostPort(s); err != nil {
			return "", false, err
		}
		return s, false, nil
	}

	if uri.Port() == "" {
		return "", false, errors.New("missing port in address")
	}

	var withTLS bool

	switch uri.Scheme {
	case "https":
		withTLS = true
	case "http":
	default:
		return "", false, fmt.Errorf("unsupported scheme: %s", uri.Scheme)
	}

	return uri.Host, withTLS, nil
}
