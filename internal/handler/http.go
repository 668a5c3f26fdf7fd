package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// HTTPHandler triggers the pipeline over HTTP
type HTTPHandler struct {
	runner Runner
	// runs share the manifest, one at a time
	mu sync.Mutex
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(runner Runner) *HTTPHandler {
	return &HTTPHandler{runner: runner}
}

// NewRouter registers the trigger routes on a new gin engine
func NewRouter(runner Runner) *gin.Engine {
	h := NewHTTPHandler(runner)

	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/generate", h.Generate)
	r.GET("/healthz", h.Health)
	return r
}

// Generate runs the pipeline once and returns its {msg, error} body
func (h *HTTPHandler) Generate(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := h.runner.Run(c.Request.Context())
	c.Data(result.StatusCode, "application/json", Body(result))
}

// Health reports liveness
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
