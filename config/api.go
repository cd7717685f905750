package config

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIServer exposes the effective configuration, without secrets.
type APIServer struct {
	cfg *Config
}

// NewAPIServer creates a new config API server.
func NewAPIServer(cfg *Config) *APIServer {
	return &APIServer{
		cfg: cfg,
	}
}

// RegisterRoutes mounts the config routes on group.
func (s *APIServer) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/config", s.HandleGetConfig)
}

// ConfigResponse represents the response for GET /api/v1/config.
type ConfigResponse struct {
	*Config
	GeminiEnabled bool `json:"gemini_enabled"`
}

// HandleGetConfig handles GET /api/v1/config. The Gemini API key is never
// serialized; only whether one is set.
func (s *APIServer) HandleGetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		Config:        s.cfg,
		GeminiEnabled: s.cfg.Gemini.APIKey != "",
	})
}
