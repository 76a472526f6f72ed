// Package admin exposes the owner-only maintenance routes: login, reseed
// and rerank.
package admin

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/crypto/bcrypt"

	"showrank/internal/ingest"
	"showrank/internal/pipeline"
	"showrank/internal/ranking"
	"showrank/pkg/database"
)

// Pipeline is the subset of pipeline.Runner the admin routes drive.
type Pipeline interface {
	Seed(ctx context.Context) (*pipeline.SeedResult, error)
	Ranks(ctx context.Context) ([]ranking.Report, error)
}

// LockFunc takes the writer lock without blocking and returns its
// release func. It fails with database.ErrLocked while another run holds it.
type LockFunc func() (func(), error)

type Handler struct {
	// PasswordHash is a bcrypt hash; empty disables login.
	PasswordHash string
	Tokens       TokenService
	Pipeline     Pipeline
	Lock         LockFunc
	Logger       hclog.Logger
}

// NewHandler wires the admin routes. A nil lock falls back to one
// in-process mutex shared by seed and ranks.
func NewHandler(passwordHash string, tokens TokenService, p Pipeline, lock LockFunc, logger hclog.Logger) *Handler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if lock == nil {
		lock = mutexLock()
	}
	return &Handler{PasswordHash: passwordHash, Tokens: tokens, Pipeline: p, Lock: lock, Logger: logger}
}

func mutexLock() LockFunc {
	var mu sync.Mutex
	return func() (func(), error) {
		if !mu.TryLock() {
			return nil, database.ErrLocked
		}
		return mu.Unlock, nil
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/seed", AuthMiddleware(h.Tokens), h.exclusive, h.seed)
	rg.POST("/ranks", AuthMiddleware(h.Tokens), h.exclusive, h.ranks)
}

// exclusive holds the writer lock for the rest of the chain.
func (h *Handler) exclusive(c *gin.Context) {
	unlock, err := h.Lock()
	if err != nil {
		if errors.Is(err, database.ErrLocked) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "another maintenance run is in progress"})
			return
		}
		h.Logger.Error("writer lock failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "lock failed"})
		return
	}
	defer unlock()
	c.Next()
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	if h.PasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin login disabled"})
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)); err != nil {
		h.Logger.Warn("admin login failed", "remote", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, exp, err := h.Tokens.Sign()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) seed(c *gin.Context) {
	res, err := h.Pipeline.Seed(c.Request.Context())
	if err != nil {
		h.Logger.Error("seed failed", "error", err)
		status := http.StatusInternalServerError
		if k := ingest.KindOf(err); k != 0 && k != ingest.KindStore {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accepted": res.Shows.Accepted,
		"rejected": res.Shows.Rejected,
		"spots":    res.Spots,
	})
}

type rankSummary struct {
	Year    int            `json:"year"`
	Matched int            `json:"matched"`
	Misses  []ranking.Miss `json:"misses"`
}

func (h *Handler) ranks(c *gin.Context) {
	reports, err := h.Pipeline.Ranks(c.Request.Context())
	if err != nil {
		h.Logger.Error("ranks failed", "error", err)
		status := http.StatusInternalServerError
		if ranking.KindOf(err) == ranking.KindConfig {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	out := make([]rankSummary, 0, len(reports))
	for _, r := range reports {
		misses := r.Misses
		if misses == nil {
			misses = []ranking.Miss{}
		}
		out = append(out, rankSummary{Year: r.Year, Matched: r.Matched, Misses: misses})
	}
	c.JSON(http.StatusOK, out)
}
