package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forklion/forklion-api/internal/agents/evolution"
	"github.com/forklion/forklion-api/internal/config"
	"github.com/forklion/forklion-api/internal/genetics"
	"github.com/forklion/forklion-api/internal/llm"
	"github.com/forklion/forklion-api/internal/metrics"
	"github.com/forklion/forklion-api/internal/models"
	"github.com/forklion/forklion-api/internal/visualizer"
)

const (
	defaultRenderSize  = 400
	defaultDaysPassed  = 1
	contentTypeSVG     = "image/svg+xml"
	maxRenderDimension = 4000
)

// LionHandler serves lion creation, rendering and evolution.
// The API is stateless: every request carries the full DNA record and every
// response returns the full updated record.
type LionHandler struct {
	cfg        *config.Config
	engine     *genetics.Engine
	factory    *llm.ProviderFactory
	metrics    *metrics.SentryMetrics
	cloudwatch *metrics.Client
}

// NewLionHandler creates a new lion handler
func NewLionHandler(cfg *config.Config, cloudwatch *metrics.Client) *LionHandler {
	return &LionHandler{
		cfg:        cfg,
		engine:     genetics.NewEngine(),
		factory:    llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GitHubToken, cfg.GitHubModel, cfg.GeminiAPIKey),
		metrics:    metrics.NewSentryMetrics(),
		cloudwatch: cloudwatch,
	}
}

// Create rolls a brand new random lion and returns its DNA plus a render
func (h *LionHandler) Create(c *gin.Context) {
	dna := h.engine.GenerateRandomDNA()
	svg := visualizer.Render(dna, defaultRenderSize, defaultRenderSize)

	c.JSON(http.StatusCreated, gin.H{
		"dna": dna,
		"svg": svg,
	})
}

// Render turns a DNA record from the request body into an SVG document.
// Query params: width, height (default 400), thumbnail=true with optional
// size for a square thumbnail.
func (h *LionHandler) Render(c *gin.Context) {
	var dna models.LionDNA
	if err := c.ShouldBindJSON(&dna); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime := time.Now()
	var svg string
	if c.Query("thumbnail") == "true" {
		size := queryInt(c, "size", 0)
		svg = visualizer.RenderThumbnail(&dna, size)
	} else {
		width := queryInt(c, "width", defaultRenderSize)
		height := queryInt(c, "height", defaultRenderSize)
		svg = visualizer.Render(&dna, width, height)
	}

	h.metrics.RecordRenderDuration(c.Request.Context(), time.Since(startTime), len(svg))
	h.cloudwatch.RecordRenderDuration(time.Since(startTime))

	c.Data(http.StatusOK, contentTypeSVG, []byte(svg))
}

// EvolveRequest carries the record to evolve plus evolution context
type EvolveRequest struct {
	DNA        *models.LionDNA `json:"dna" binding:"required"`
	DaysPassed int             `json:"days_passed"`
	Provider   string          `json:"provider"` // optional override of AI_PROVIDER
}

// Evolve advances the lion one evolution step and narrates the change.
// A provider failure never fails the request; the random engine takes over.
func (h *LionHandler) Evolve(c *gin.Context) {
	var req EvolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	daysPassed := req.DaysPassed
	if daysPassed <= 0 {
		daysPassed = defaultDaysPassed
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = h.cfg.AIProvider
	}

	startTime := time.Now()
	provider, err := h.factory.GetProvider(c.Request.Context(), providerName)
	if err != nil {
		log.Printf("⚠️  Provider unavailable: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent := evolution.NewAgent(provider, h.cloudwatch)
	evolved, aiUsed := agent.EvolveWithAI(c.Request.Context(), req.DNA, daysPassed)
	story := agent.GenerateEvolutionStory(c.Request.Context(), req.DNA, evolved)

	h.cloudwatch.RecordEvolution(provider.Name(), time.Since(startTime), aiUsed)

	c.JSON(http.StatusOK, gin.H{
		"dna":   evolved,
		"story": story,
	})
}

// queryInt reads a positive integer query param with a fallback
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxRenderDimension {
		return fallback
	}
	return v
}
