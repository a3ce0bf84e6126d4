package object_test

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/common"
	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/fstree"
	"github.com/cellar-dev/cellar-node/pkg/services/object"
)

type testGateway struct {
	t   *testing.T
	srv *httptest.Server
	dir string
}

func newTestGateway(t *testing.T) *testGateway {
	dir := t.TempDir()

	tree := fstree.New(fstree.WithPath(dir))
	require.NoError(t, tree.Open(false))
	require.NoError(t, tree.Init())
	t.Cleanup(func() { require.NoError(t, tree.Close()) })

	return newTestGatewayWithStorage(t, dir, tree)
}

func newTestGatewayWithStorage(t *testing.T, dir string, s common.Storage) *testGateway {
	gin.SetMode(gin.TestMode)

	r := object.NewRouter(object.NewExecutionService(s), zaptest.NewLogger(t))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testGateway{t: t, srv: srv, dir: dir}
}

func (g *testGateway) do(method, path string, payload []byte) *http.Response {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, g.srv.URL+path, body)
	require.NoError(g.t, err)

	resp, err := g.srv.Client().Do(req)
	require.NoError(g.t, err)
	g.t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return body
}

func decodeError(t *testing.T, resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Error)

	return body.Error
}

func listDir(t *testing.T, root string) []string {
	var entries []string

	require.NoError(t, filepath.WalkDir(root, func(p string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		entries = append(entries, rel)
		return nil
	}))

	return entries
}

func TestGateway_Lifecycle(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPut, "/objects/hello", []byte("hi"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Empty(t, readBody(t, resp))

	resp = g.do(http.MethodGet, "/objects/hello", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	require.EqualValues(t, 2, resp.ContentLength)
	require.Equal(t, []byte("hi"), readBody(t, resp))

	resp = g.do(http.MethodHead, "/objects/hello", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 2, resp.ContentLength)
	require.Empty(t, readBody(t, resp))

	resp = g.do(http.MethodDelete, "/objects/hello", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, readBody(t, resp))

	resp = g.do(http.MethodGet, "/objects/hello", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, `object "hello" not found`, decodeError(t, resp))

	resp = g.do(http.MethodDelete, "/objects/hello", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = g.do(http.MethodHead, "/objects/hello", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGateway_Overwrite(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPut, "/objects/versioned", []byte("the longer first payload"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = g.do(http.MethodPut, "/objects/versioned", []byte("short"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = g.do(http.MethodGet, "/objects/versioned", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 5, resp.ContentLength)
	require.Equal(t, []byte("short"), readBody(t, resp))
}

func TestGateway_EmptyPayload(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPut, "/objects/empty", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = g.do(http.MethodGet, "/objects/empty", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 0, resp.ContentLength)
	require.Empty(t, readBody(t, resp))
}

func TestGateway_LargePayload(t *testing.T) {
	g := newTestGateway(t)

	payload := make([]byte, 1<<20)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	resp := g.do(http.MethodPut, "/objects/blobs/large", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = g.do(http.MethodGet, "/objects/blobs/large", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, len(payload), resp.ContentLength)
	require.Equal(t, payload, readBody(t, resp))
}

func TestGateway_NestedKeys(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPut, "/objects/backups/2024/jan.tar", []byte("january"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = g.do(http.MethodPut, "/objects/backups/2024/feb.tar", []byte("february"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The layout on disk matches the key structure.
	_, err := os.Stat(filepath.Join(g.dir, "backups", "2024", "jan.tar"))
	require.NoError(t, err)

	resp = g.do(http.MethodGet, "/objects/backups/2024/jan.tar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []byte("january"), readBody(t, resp))

	resp = g.do(http.MethodDelete, "/objects/backups/2024/jan.tar", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = g.do(http.MethodGet, "/objects/backups/2024/feb.tar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateway_InvalidKeys(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPut, "/objects/present", []byte("payload"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	before := listDir(t, g.dir)

	t.Run("empty key", func(t *testing.T) {
		for _, method := range []string{http.MethodPut, http.MethodGet, http.MethodDelete} {
			resp := g.do(method, "/objects/", []byte("data"))
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, method)
			require.Equal(t, "object key cannot be empty", decodeError(t, resp))
		}
	})

	t.Run("malformed keys", func(t *testing.T) {
		for _, path := range []string{
			"/objects//etc/passwd",
			"/objects/../secret",
			"/objects/a/../../b",
			"/objects/.",
			"/objects/..",
			"/objects/a//b",
			"/objects/a/",
		} {
			for _, method := range []string{http.MethodPut, http.MethodGet, http.MethodDelete} {
				resp := g.do(method, path, []byte("data"))
				require.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %s", method, path)
				require.Contains(t, decodeError(t, resp), "invalid object key", "%s %s", method, path)
			}
		}
	})

	// Nothing may change on the disk after any amount of rejected requests.
	require.Equal(t, before, listDir(t, g.dir))
}

func TestGateway_MethodNotAllowed(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPost, "/objects/some/key", []byte("data"))
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestGateway_RequestID(t *testing.T) {
	g := newTestGateway(t)

	resp := g.do(http.MethodPut, "/objects/traced", []byte("data"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(object.RequestIDHeader))

	req, err := http.NewRequest(http.MethodGet, g.srv.URL+"/objects/traced", nil)
	require.NoError(t, err)
	req.Header.Set(object.RequestIDHeader, "trace-me-42")

	resp, err = g.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	require.Equal(t, "trace-me-42", resp.Header.Get(object.RequestIDHeader))
}

func TestGateway_ReadOnlyStorage(t *testing.T) {
	dir := t.TempDir()

	rw := fstree.New(fstree.WithPath(dir))
	require.NoError(t, rw.Open(false))
	require.NoError(t, rw.Init())
	require.NoError(t, rw.Put("locked/object", []byte("payload")))
	require.NoError(t, rw.Close())

	ro := fstree.New(fstree.WithPath(dir))
	require.NoError(t, ro.Open(true))
	require.NoError(t, ro.Init())
	t.Cleanup(func() { require.NoError(t, ro.Close()) })

	g := newTestGatewayWithStorage(t, dir, ro)

	resp := g.do(http.MethodGet, "/objects/locked/object", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []byte("payload"), readBody(t, resp))

	for _, tc := range []struct {
		method  string
		payload []byte
	}{
		{method: http.MethodPut, payload: []byte("other")},
		{method: http.MethodDelete},
	} {
		resp := g.do(tc.method, "/objects/locked/object", tc.payload)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, tc.method)

		// Server-side failures must not leak storage internals.
		msg := decodeError(t, resp)
		require.Equal(t, "storage I/O error", msg, tc.method)
		require.NotContains(t, msg, dir, tc.method)
	}
}
