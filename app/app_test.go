package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pevans/blogsum/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Test helper: create an app backed by a temp directory, with networked
// services disabled
func setupTestApp(t *testing.T) *App {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.SummariesDSN = filepath.Join(dir, "summaries.db")
	cfg.Storage.ContentsDir = filepath.Join(dir, "contents")
	cfg.Translate.Enabled = false
	cfg.Gemini.APIKey = ""

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

// TestNew_WiresComponents verifies every component is built
func TestNew_WiresComponents(t *testing.T) {
	a := setupTestApp(t)

	assert.NotNil(t, a.Summaries)
	assert.NotNil(t, a.Contents)
	assert.NotNil(t, a.Pipeline)

	result := a.Translator.Translate(context.Background(), "good morning")
	assert.Equal(t, "dictionary", string(result.Method), "remote translation is disabled")

	summary := a.Summarizer.Generate(context.Background(), "short", "Title")
	assert.Equal(t, "static", string(summary.Method), "no Gemini key means static summaries")
}

// TestNew_BadStoragePath verifies store errors are reported
func TestNew_BadStoragePath(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.SummariesDSN = filepath.Join(t.TempDir(), "missing", "dir", "summaries.db")
	cfg.Storage.ContentsDir = t.TempDir()

	_, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

// TestRouter_MountsRoutes verifies every API is reachable
func TestRouter_MountsRoutes(t *testing.T) {
	router := setupTestApp(t).Router()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/api/v1/summaries", want: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/config", want: http.StatusOK},
		{method: http.MethodPost, path: "/api/v1/summarize", want: http.StatusBadRequest},
		{method: http.MethodOptions, path: "/api/v1/summarize", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
