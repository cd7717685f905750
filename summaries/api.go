package summaries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxListLimit caps the page size of GET /api/v1/summaries.
const maxListLimit = 100

// APIServer represents the HTTP API server for stored summaries.
type APIServer struct {
	store *Store
}

// NewAPIServer creates a new summaries API server.
func NewAPIServer(store *Store) *APIServer {
	return &APIServer{
		store: store,
	}
}

// SetupRouter configures a Gin router with the summaries routes.
func (s *APIServer) SetupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())
	s.RegisterRoutes(router.Group("/api/v1"))
	return router
}

// RegisterRoutes mounts the summaries routes on group.
func (s *APIServer) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/summaries", s.HandleListSummaries)
	group.GET("/summaries/:id", s.HandleGetSummary)
	group.DELETE("/summaries/:id", s.HandleDeleteSummary)
	group.GET("/processing-logs", s.HandleListProcessingLogs)
}

// CORSMiddleware allows browser clients on any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// ListSummariesResponse represents the response for GET /api/v1/summaries.
type ListSummariesResponse struct {
	Summaries []Summary `json:"summaries"`
	Total     int       `json:"total"`
}

// ListProcessingLogsResponse represents the response for GET
// /api/v1/processing-logs.
type ListProcessingLogsResponse struct {
	Logs  []ProcessingLog `json:"logs"`
	Total int             `json:"total"`
}

// errorResponse creates a standardized error response.
func errorResponse(code, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// handleError maps domain errors to HTTP responses.
func (s *APIServer) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse("not_found", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "Failed to process request"))
	}
}

// HandleListSummaries handles GET /api/v1/summaries.
func (s *APIServer) HandleListSummaries(c *gin.Context) {
	filter := Filter{}

	if urlParam := c.Query("url"); urlParam != "" {
		filter.URL = &urlParam
	}
	if methodParam := c.Query("method"); methodParam != "" {
		filter.Method = &methodParam
	}

	limit, err := parseNonNegative(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("bad_request", "limit must be a non-negative integer"))
		return
	}
	offset, err := parseNonNegative(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("bad_request", "offset must be a non-negative integer"))
		return
	}
	filter.Limit = min(limit, maxListLimit)
	filter.Offset = offset

	summaries, err := s.store.List(filter)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if summaries == nil {
		summaries = []Summary{}
	}

	c.JSON(http.StatusOK, ListSummariesResponse{
		Summaries: summaries,
		Total:     len(summaries),
	})
}

// HandleGetSummary handles GET /api/v1/summaries/{id}.
func (s *APIServer) HandleGetSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("bad_request", "Invalid summary ID"))
		return
	}

	summary, err := s.store.Get(id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleDeleteSummary handles DELETE /api/v1/summaries/{id}.
func (s *APIServer) HandleDeleteSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("bad_request", "Invalid summary ID"))
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListProcessingLogs handles GET /api/v1/processing-logs?url=...
func (s *APIServer) HandleListProcessingLogs(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, errorResponse("validation_error", "url query parameter is required"))
		return
	}

	logs, err := s.store.ListProcessingLogs(url)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if logs == nil {
		logs = []ProcessingLog{}
	}

	c.JSON(http.StatusOK, ListProcessingLogsResponse{
		Logs:  logs,
		Total: len(logs),
	})
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
