package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neolalia/wordforge/internal/catalog"
)

type LanguagesHandler struct {
	catalog *catalog.Catalog
}

func NewLanguagesHandler(c *catalog.Catalog) *LanguagesHandler {
	return &LanguagesHandler{catalog: c}
}

// List returns the grouped category view for the selector plus the flattened
// ordered list.
func (h *LanguagesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalog.Categories(),
		"languages":  h.catalog.Languages(),
	})
}

// SuggestedPairs returns complementary pairings for one language. An unknown
// language yields an empty list, not an error.
func (h *LanguagesHandler) SuggestedPairs(c *gin.Context) {
	name := c.Param("name")
	c.JSON(http.StatusOK, gin.H{
		"language": name,
		"pairs":    h.catalog.SuggestedPairs(name),
	})
}
