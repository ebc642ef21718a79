package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neolalia/wordforge/internal/middleware"
	"github.com/neolalia/wordforge/internal/word"
)

type GenerateHandler struct {
	service *word.Service
}

func NewGenerateHandler(service *word.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

type GenerateRequest struct {
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description and languages are required"})
		return
	}

	start := time.Now()
	result, err := h.service.Generate(c.Request.Context(), word.Request{
		EmotionDescription: req.Description,
		Languages:          req.Languages,
	})
	// Inputs rejected before the outbound call don't count as LLM traffic.
	if !errors.Is(err, word.ErrEmptyInput) {
		middleware.RecordGeneration(err == nil, time.Since(start))
	}

	if err != nil {
		log.Printf("Generation failed (request %s): %v", c.GetString(middleware.RequestIDKey), err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// statusFor separates user mistakes from upstream failures. The body always
// carries a single human-readable message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, word.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, word.ErrTransport), errors.Is(err, word.ErrSchemaViolation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
