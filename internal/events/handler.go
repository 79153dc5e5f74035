package events

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"recohub/internal/auth"
	"recohub/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.log)
	rg.GET("/insights", h.insights)
}

type logReq struct {
	ItemID     string   `json:"item_id"`
	ItemType   string   `json:"item_type"`
	ItemTitle  string   `json:"item_title"`
	TemplateID string   `json:"template_id"`
	Context    []string `json:"context"`
}

// log appends one consumption event. Clients treat this as fire-and-forget;
// a failure here produces a notification on their side, nothing more.
func (h *Handler) log(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req logReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id required"})
		return
	}

	itemType := strings.ToLower(strings.TrimSpace(req.ItemType))
	switch itemType {
	case "book", "movie", "music":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_type must be one of: book, movie, music"})
		return
	}

	ev := models.ConsumptionEvent{
		UserID:     claims.UserID,
		ItemID:     itemID,
		ItemType:   itemType,
		ItemTitle:  strings.TrimSpace(req.ItemTitle),
		TemplateID: strings.TrimSpace(req.TemplateID),
		Context:    req.Context,
	}
	if err := h.Repo.Insert(c.Request.Context(), ev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "log failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "logged"})
}

func (h *Handler) insights(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	evs, err := h.Repo.ListRecent(c.Request.Context(), claims.UserID, 500)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "insights failed"})
		return
	}

	c.JSON(http.StatusOK, Aggregate(evs, time.Now()))
}
