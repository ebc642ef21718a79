package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neolalia/wordforge/internal/catalog"
)

type ExamplesHandler struct{}

func NewExamplesHandler() *ExamplesHandler {
	return &ExamplesHandler{}
}

// List returns the static reference list of example emotion prompts.
func (h *ExamplesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": catalog.ExamplePrompts()})
}
