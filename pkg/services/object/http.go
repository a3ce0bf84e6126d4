package object

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cellar-dev/cellar-node/internal/keyutil"
	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/common"
)

// errorBody is the JSON payload of every failed request.
type errorBody struct {
	Error string `json:"error"`
}

type httpServer struct {
	svc ServiceServer

	log *zap.Logger
}

// NewRouter builds a router with the object service routes and middleware
// attached, ready to be mounted into an HTTP server. Unknown methods on
// known routes are answered with 405.
func NewRouter(svc ServiceServer, l *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestID(), AccessLog(l), gin.Recovery())

	RegisterRoutes(&r.RouterGroup, svc, l)

	return r
}

// RegisterRoutes attaches object service handlers to the given router group.
func RegisterRoutes(g *gin.RouterGroup, svc ServiceServer, l *zap.Logger) {
	s := &httpServer{
		svc: svc,
		log: l,
	}

	g.PUT("/objects/*key", s.put)
	g.GET("/objects/*key", s.get)
	g.HEAD("/objects/*key", s.get)
	g.DELETE("/objects/*key", s.delete)
}

// objectKey extracts the object key from the catch-all route parameter. An
// empty key is answered right away, the handler must return.
func (s *httpServer) objectKey(c *gin.Context) (string, bool) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, errorBody{Error: "object key cannot be empty"})
		return "", false
	}

	return key, true
}

func (s *httpServer) put(c *gin.Context) {
	key, ok := s.objectKey(c)
	if !ok {
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Warn("payload not read",
			zap.String("key", key),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, errorBody{Error: "request payload not read"})
		return
	}

	if err := s.svc.Put(c.Request.Context(), key, payload); err != nil {
		s.writeError(c, key, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *httpServer) get(c *gin.Context) {
	key, ok := s.objectKey(c)
	if !ok {
		return
	}

	payload, err := s.svc.Get(c.Request.Context(), key)
	if err != nil {
		s.writeError(c, key, err)
		return
	}

	// Explicit length keeps the header on HEAD responses where the body is
	// dropped by the HTTP server.
	c.Header("Content-Length", strconv.Itoa(len(payload)))
	c.Data(http.StatusOK, "application/octet-stream", payload)
}

func (s *httpServer) delete(c *gin.Context) {
	key, ok := s.objectKey(c)
	if !ok {
		return
	}

	if err := s.svc.Delete(c.Request.Context(), key); err != nil {
		s.writeError(c, key, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError renders a failed storage call. Invalid keys and missing objects
// echo the key back to the client, anything else is a server-side failure
// reported without internal details.
func (s *httpServer) writeError(c *gin.Context, key string, err error) {
	switch {
	case errors.Is(err, keyutil.ErrInvalidKey):
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, common.ErrObjectNotFound):
		c.JSON(http.StatusNotFound, errorBody{Error: fmt.Sprintf("object %q not found", key)})
	default:
		s.log.Error("storage failure",
			zap.String("method", c.Request.Method),
			zap.String("key", key),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody{Error: "storage I/O error"})
	}
}
