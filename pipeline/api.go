package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIServer exposes the pipeline over HTTP.
type APIServer struct {
	pipeline *Pipeline
	timeout  time.Duration
}

// NewAPIServer creates a pipeline API server. A positive timeout bounds each
// request.
func NewAPIServer(p *Pipeline, timeout time.Duration) *APIServer {
	return &APIServer{
		pipeline: p,
		timeout:  timeout,
	}
}

// SummarizeRequest represents the request for POST /api/v1/summarize.
type SummarizeRequest struct {
	URL string `json:"url"`
}

// RegisterRoutes mounts the pipeline routes on group.
func (s *APIServer) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/summarize", s.HandleSummarize)
}

// HandleSummarize handles POST /api/v1/summarize.
func (s *APIServer) HandleSummarize(c *gin.Context) {
	start := time.Now()

	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Invalid request body",
			"processingTime": time.Since(start).Milliseconds(),
		})
		return
	}

	ctx := c.Request.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.pipeline.Process(ctx, req.URL)
	if err != nil {
		c.JSON(StatusCode(err), gin.H{
			"error":          err.Error(),
			"processingTime": time.Since(start).Milliseconds(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
