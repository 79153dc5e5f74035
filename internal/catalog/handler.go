package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activities", h.listActivities)
	rg.GET("/templates", h.listTemplates)
	rg.GET("/templates/:id", h.getTemplate)
}

func (h *Handler) listActivities(c *gin.Context) {
	items := Activities()
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) listTemplates(c *gin.Context) {
	activity := strings.TrimSpace(c.Query("activity"))
	items := Templates(activity)
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getTemplate(c *gin.Context) {
	t := TemplateByID(c.Param("id"))
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}
