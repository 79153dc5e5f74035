package recs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recohub/pkg/logger"
	"recohub/pkg/models"
)

type Handler struct {
	Gen Generator
	Log *logger.Logger
}

func NewHandler(gen Generator, log *logger.Logger) *Handler {
	return &Handler{Gen: gen, Log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.generate)
}

type generateReq struct {
	UserProfile models.UserProfile `json:"userProfile"`
	Category    string             `json:"category"`
	SearchQuery string             `json:"searchQuery"`
	Count       int                `json:"count"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	switch req.Category {
	case "books", "movies", "music":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be one of: books, movies, music"})
		return
	}

	system, user := BuildPrompt(PromptRequest{
		Profile:     req.UserProfile,
		Category:    req.Category,
		SearchQuery: req.SearchQuery,
		Count:       req.Count,
	})

	content, err := h.Gen.Generate(c.Request.Context(), system, user)
	if err != nil {
		h.Log.Error("generation failed", "category", req.Category, "err", err)
		switch {
		case errors.Is(err, ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again in a moment."})
		case errors.Is(err, ErrQuotaExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI credits exhausted. Please add credits to continue."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations"})
		}
		return
	}

	raw, err := ParseRecommendations(content)
	if err != nil {
		h.Log.Error("parse failed", "category", req.Category, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse recommendations"})
		return
	}

	recommendations := Normalize(raw)
	h.Log.Info("recommendations generated",
		"category", req.Category,
		"search", req.SearchQuery != "",
		"count", len(recommendations),
	)

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
