package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forklion/forklion-api/internal/config"
	"github.com/forklion/forklion-api/internal/models"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment: "test",
		Port:        "8080",
		AIProvider:  "openai",
		// No credentials on purpose: evolve must fail fast with 400
	}
	return SetupRouter(cfg, "test")
}

func createLion(t *testing.T, router *gin.Engine) *models.LionDNA {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		DNA *models.LionDNA `json:"dna"`
		SVG string          `json:"svg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.DNA)
	return body.DNA
}

func TestHealthCheck(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"ai_provider":"openai"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCreateLion(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		DNA *models.LionDNA `json:"dna"`
		SVG string          `json:"svg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.DNA)

	assert.NotEmpty(t, body.DNA.LionID)
	assert.Len(t, body.DNA.Traits, 6)
	assert.Equal(t, body.DNA.ComputeHash(), body.DNA.DNAHash)
	assert.True(t, strings.HasPrefix(body.SVG, "<svg"))
}

func TestRenderLion(t *testing.T) {
	router := testRouter()
	dna := createLion(t, router)

	payload, err := json.Marshal(dna)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/render", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `width="400" height="400"`)
}

func TestRenderLionThumbnail(t *testing.T) {
	router := testRouter()
	dna := createLion(t, router)

	payload, err := json.Marshal(dna)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/render?thumbnail=true&size=64", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `width="64" height="64"`)
}

func TestRenderLionDeterministic(t *testing.T) {
	router := testRouter()
	dna := createLion(t, router)

	payload, err := json.Marshal(dna)
	require.NoError(t, err)

	render := func() string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/render", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	assert.Equal(t, render(), render())
}

func TestRenderLionBadBody(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/render", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvolveLionMissingCredentials(t *testing.T) {
	router := testRouter()
	dna := createLion(t, router)

	payload, err := json.Marshal(map[string]any{"dna": dna, "days_passed": 1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/evolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "OPENAI_API_KEY not configured")
}

func TestEvolveLionUnknownProvider(t *testing.T) {
	router := testRouter()
	dna := createLion(t, router)

	payload, err := json.Marshal(map[string]any{"dna": dna, "provider": "claude"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/evolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown provider")
}

func TestEvolveLionMissingDNA(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lions/evolve", strings.NewReader(`{"days_passed": 1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/lions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
