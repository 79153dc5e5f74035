package daily

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/daily", h.suggestions)
}

// suggestions returns the two picks for today, or for an explicit
// ?date=YYYY-MM-DD (useful for clients pinned to the user's calendar day).
func (h *Handler) suggestions(c *gin.Context) {
	date := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        date.Format("2006-01-02"),
		"suggestions": Suggestions(date),
	})
}
