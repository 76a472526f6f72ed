package shows

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shows", h.list)        // GET /api/shows
	rg.GET("/shows/:id", h.getByID) // GET /api/shows/:id
	rg.GET("/facets", h.facets)     // GET /api/facets
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Tiers:    queryList(c, "tier"),
		Networks: queryList(c, "network"),
		Tags:     queryList(c, "tag"),
		Year:     parseInt(c.Query("year"), 0),
		Category: c.Query("category"),
		Sort:     c.DefaultQuery("sort", SortAbsoluteRank),
		Order:    c.DefaultQuery("order", "asc"),
		Limit:    parseInt(c.Query("limit"), 0),
		Offset:   parseInt(c.Query("offset"), 0),
	}

	if q.Limit > 0 {
		total, err := h.Repo.Count(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(total))
	}

	items, err := h.Repo.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getByID(c *gin.Context) {
	s, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) facets(c *gin.Context) {
	f, err := h.Repo.Facets(c.Request.Context(), parseInt(c.Query("year"), 0), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "facets failed"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// queryList accepts tier=S,A as well as tier=S&tier=A.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		out = append(out, SplitList(v)...)
	}
	return out
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
