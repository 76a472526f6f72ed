package shows

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(repo *Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(repo).RegisterRoutes(r.Group("/api"))
	return r
}

func get(t *testing.T, r http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_List(t *testing.T) {
	repo := newRepo(t,
		show("Severance", "S", 9.5, 2025, "Apple TV+", "drama"),
		show("Andor", "A", 9.0, 2025, "Disney+", "sci-fi"),
		show("Wednesday", "C", 6.0, 2025, "Netflix", "comedy"),
	)
	ids := idsByName(t, repo, 2025)
	require.NoError(t, repo.ApplyRanks(context.Background(), 2025, map[string]int{ids["Wednesday"]: 1}))
	r := newRouter(repo)

	w := get(t, r, "/api/shows")
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "Wednesday", items[0]["name"])
	assert.EqualValues(t, 1, items[0]["absolute_rank"])
	assert.Nil(t, items[1]["absolute_rank"])
	assert.NotContains(t, items[0], "seq")

	w = get(t, r, "/api/shows?tier=S,A&sort=score&order=asc")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Andor", items[0]["name"])

	w = get(t, r, "/api/shows?tag=comedy&tag=drama&sort=score&order=desc&limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-Total-Count"))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Severance", items[0]["name"])
}

func TestHandler_EmptyListIsArray(t *testing.T) {
	r := newRouter(newRepo(t))
	w := get(t, r, "/api/shows")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetByID(t *testing.T) {
	repo := newRepo(t, show("Foo", "A", 8, 2025, "NBC", "drama", "comedy"))
	r := newRouter(repo)
	id := idsByName(t, repo, 2025)["Foo"]

	w := get(t, r, "/api/shows/"+id)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Foo", got["name"])
	assert.Equal(t, []any{"drama", "comedy"}, got["tags"])
	assert.Equal(t, "tv", got["category"])

	w = get(t, r, "/api/shows/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestHandler_Facets(t *testing.T) {
	repo := newRepo(t,
		show("A", "A", 8, 2025, "Netflix", "drama"),
		show("B", "A", 8, 2026, "HBO", "comedy"),
	)
	r := newRouter(repo)

	w := get(t, r, "/api/facets?year=2025")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"networks":["Netflix"],"tags":["drama"]}`, w.Body.String())
}
