package translate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pivotchat-backend/internal/engine"
	"pivotchat-backend/internal/pipeline"
	"pivotchat-backend/internal/registry"
	"pivotchat-backend/pkg/response"
)

// Handler handles translation HTTP requests
type Handler struct {
	pipeline *pipeline.Pipeline
	engine   *engine.Engine
	registry *registry.Registry
}

// NewHandler creates a new translation handler
func NewHandler(p *pipeline.Pipeline, e *engine.Engine, reg *registry.Registry) *Handler {
	return &Handler{
		pipeline: p,
		engine:   e,
		registry: reg,
	}
}

// ProcessMessageRequest represents a full message-processing request
type ProcessMessageRequest struct {
	Text             string `json:"text"`
	SenderLanguage   string `json:"sender_language" binding:"required"`
	ReceiverLanguage string `json:"receiver_language" binding:"required"`
}

// TranslateRequest represents a single translation request
type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	SourceLanguage string `json:"source_language" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

// AnalyzeRequest represents an input-analysis request
type AnalyzeRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language" binding:"required"`
}

// ProcessMessage runs a finished message through the pipeline
// POST /v1/process
func (h *Handler) ProcessMessage(c *gin.Context) {
	var req ProcessMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	views := h.pipeline.Process(c.Request.Context(), req.Text, req.SenderLanguage, req.ReceiverLanguage)
	response.Success(c, http.StatusOK, views)
}

// PreviewMessage computes the sender-facing preview of in-progress text
// POST /v1/preview
func (h *Handler) PreviewMessage(c *gin.Context) {
	var req ProcessMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	preview := h.pipeline.Preview(c.Request.Context(), req.Text, req.SenderLanguage, req.ReceiverLanguage)
	response.Success(c, http.StatusOK, preview)
}

// Translate performs a single pair translation
// POST /v1/translate
func (h *Handler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	translator := h.engine.GetTranslator(req.SourceLanguage, req.TargetLanguage)
	if translator == nil {
		response.Error(c, http.StatusNotFound, "LANGUAGE_NOT_FOUND", "Source or target language not registered")
		return
	}

	result := translator.TranslateMeaning(c.Request.Context(), req.Text)
	response.Success(c, http.StatusOK, result)
}

// AnalyzeInput classifies in-progress text without translating it
// POST /v1/analyze
func (h *Handler) AnalyzeInput(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	analysis, corrected := h.pipeline.Analyze(req.Text, req.Language)
	response.Success(c, http.StatusOK, gin.H{
		"analysis":  analysis,
		"corrected": corrected,
	})
}

// ListLanguages returns all registered languages
// GET /v1/languages
func (h *Handler) ListLanguages(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"languages": h.registry.All(),
		"count":     h.registry.Size(),
	})
}

// GetLanguage returns a single language by code or name
// GET /v1/languages/:code
func (h *Handler) GetLanguage(c *gin.Context) {
	lang := h.registry.Get(c.Param("code"))
	if lang == nil {
		response.NotFound(c, "Language not found")
		return
	}
	response.Success(c, http.StatusOK, lang)
}
