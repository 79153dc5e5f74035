package favorites

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recohub/internal/auth"
	"recohub/internal/sync"
	"recohub/pkg/models"
)

type Handler struct {
	Repo *Repo
	Hub  *sync.Hub
}

func NewHandler(repo *Repo, hub *sync.Hub) *Handler {
	return &Handler{Repo: repo, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.list)
	rg.POST("/favorites", h.toggle)
	rg.DELETE("/favorites/:item_id", h.remove)
}

type toggleReq struct {
	ItemID    string `json:"item_id"`
	ItemType  string `json:"item_type"`
	ItemTitle string `json:"item_title"`
}

// toggle adds the item if absent and removes it if already favorited, so
// the client's heart button is a single POST either way.
func (h *Handler) toggle(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id required"})
		return
	}

	itemType := normalizeItemType(req.ItemType)
	if itemType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_type must be one of: book, movie, music, template"})
		return
	}

	existing, err := h.Repo.Get(c.Request.Context(), claims.UserID, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	if existing != nil {
		if _, err := h.Repo.Remove(c.Request.Context(), claims.UserID, itemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "remove failed"})
			return
		}
		h.broadcast("favorite.remove", claims.UserID, existing)
		c.JSON(http.StatusOK, gin.H{"favorited": false, "item_id": itemID})
		return
	}

	fav := models.FavoriteItem{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		ItemID:    itemID,
		ItemType:  itemType,
		ItemTitle: strings.TrimSpace(req.ItemTitle),
	}
	if err := h.Repo.Add(c.Request.Context(), fav); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), claims.UserID, itemID)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}

	h.broadcast("favorite.add", claims.UserID, saved)
	c.JSON(http.StatusCreated, gin.H{"favorited": true, "item": saved})
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID := strings.TrimSpace(c.Param("item_id"))
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id required"})
		return
	}

	existing, err := h.Repo.Get(c.Request.Context(), claims.UserID, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	ok, err := h.Repo.Remove(c.Request.Context(), claims.UserID, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.broadcast("favorite.remove", claims.UserID, existing)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Repo.List(c.Request.Context(), claims.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) broadcast(eventType, userID string, fav *models.FavoriteItem) {
	if h.Hub == nil || fav == nil {
		return
	}
	ev := sync.FavoriteEvent{
		Type:      eventType,
		UserID:    userID,
		ItemID:    fav.ItemID,
		ItemType:  fav.ItemType,
		ItemTitle: fav.ItemTitle,
		At:        time.Now().UTC(),
	}
	go h.Hub.BroadcastToUser(userID, ev)
}

func normalizeItemType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "book":
		return "book"
	case "movie", "film":
		return "movie"
	case "music":
		return "music"
	case "template":
		return "template"
	default:
		return ""
	}
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
