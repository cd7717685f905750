package summaries

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Test helper: create a test API server
func setupTestAPIServer(t *testing.T) (*gin.Engine, *Store) {
	store := createTestStore(t)
	return NewAPIServer(store).SetupRouter(), store
}

// Test helper: perform a request against the router
func doRequest(router *gin.Engine, method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHandleListSummaries_Empty verifies an empty list is not null
func TestHandleListSummaries_Empty(t *testing.T) {
	router, _ := setupTestAPIServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/summaries")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summaries":[],"total":0}`, w.Body.String())
}

// TestHandleListSummaries_Filters verifies query parameters
func TestHandleListSummaries_Filters(t *testing.T) {
	router, store := setupTestAPIServer(t)

	now := time.Now()
	require.NoError(t, store.Create(createSampleSummary("https://a.example.com", "static", now)))
	require.NoError(t, store.Create(createSampleSummary("https://a.example.com", "gemini", now.Add(time.Second))))
	require.NoError(t, store.Create(createSampleSummary("https://b.example.com", "gemini", now.Add(2*time.Second))))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "all", query: "", want: 3},
		{name: "by url", query: "?url=https://a.example.com", want: 2},
		{name: "by method", query: "?method=gemini", want: 2},
		{name: "limit", query: "?limit=1", want: 1},
		{name: "offset", query: "?offset=2", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/v1/summaries"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var response ListSummariesResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.want, response.Total)
			assert.Len(t, response.Summaries, tt.want)
		})
	}
}

// TestHandleListSummaries_InvalidPagination verifies bad limits are rejected
func TestHandleListSummaries_InvalidPagination(t *testing.T) {
	router, _ := setupTestAPIServer(t)

	for _, query := range []string{"?limit=abc", "?limit=-1", "?offset=x"} {
		w := doRequest(router, http.MethodGet, "/api/v1/summaries"+query)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

// TestHandleGetSummary verifies fetching one summary
func TestHandleGetSummary(t *testing.T) {
	router, store := setupTestAPIServer(t)

	summary := createSampleSummary("https://a.example.com", "static", time.Now())
	require.NoError(t, store.Create(summary))

	w := doRequest(router, http.MethodGet, "/api/v1/summaries/"+summary.ID.String())
	require.Equal(t, http.StatusOK, w.Code)

	var got Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, summary.ID, got.ID)
	assert.Equal(t, "ایک مختصر خلاصہ۔", got.UrduSummary)
}

// TestHandleGetSummary_Errors verifies invalid and unknown IDs
func TestHandleGetSummary_Errors(t *testing.T) {
	router, _ := setupTestAPIServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/summaries/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/summaries/"+uuid.New().String())
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"]["code"])
}

// TestHandleDeleteSummary verifies deletion
func TestHandleDeleteSummary(t *testing.T) {
	router, store := setupTestAPIServer(t)

	summary := createSampleSummary("https://a.example.com", "static", time.Now())
	require.NoError(t, store.Create(summary))

	w := doRequest(router, http.MethodDelete, "/api/v1/summaries/"+summary.ID.String())
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/summaries/"+summary.ID.String())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestHandleListProcessingLogs verifies the log endpoint
func TestHandleListProcessingLogs(t *testing.T) {
	router, store := setupTestAPIServer(t)

	require.NoError(t, store.LogProcessing(ProcessingLog{URL: "https://a.example.com", Status: StatusSuccess}))

	w := doRequest(router, http.MethodGet, "/api/v1/processing-logs?url=https://a.example.com")
	require.Equal(t, http.StatusOK, w.Code)

	var response ListProcessingLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, StatusSuccess, response.Logs[0].Status)

	w = doRequest(router, http.MethodGet, "/api/v1/processing-logs")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCORSMiddleware verifies preflight handling
func TestCORSMiddleware(t *testing.T) {
	router, _ := setupTestAPIServer(t)

	w := doRequest(router, http.MethodOptions, "/api/v1/summaries")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
