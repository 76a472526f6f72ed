package episodes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"showrank/pkg/models"
)

// ShowLookup resolves a show id; nil, nil means not found.
type ShowLookup interface {
	GetByID(ctx context.Context, id string) (*models.Show, error)
}

type Handler struct {
	Repo  *Repo
	Shows ShowLookup
}

func NewHandler(repo *Repo, shows ShowLookup) *Handler {
	return &Handler{Repo: repo, Shows: shows}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shows/:id/episodes", h.list) // GET /api/shows/:id/episodes
}

func (h *Handler) list(c *gin.Context) {
	id := c.Param("id")
	show, err := h.Shows.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if show == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	items, err := h.Repo.ListByShow(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}
