package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martijn/trainhub/internal/api/dto"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	dbName string
}

// NewHealthHandler creates the health routes. db may be nil when the
// sandbox runs without a database.
func NewHealthHandler(db Pinger, dbName string) *HealthHandler {
	return &HealthHandler{db: db, dbName: dbName}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Time:   time.Now().Format(time.RFC3339),
	})
}

// DBHealth handles GET /health/db
func (h *HealthHandler) DBHealth(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, dto.DBHealthResponse{Status: "ok", Database: "memory"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "Service Unavailable",
			Message: err.Error(),
			Code:    http.StatusServiceUnavailable,
		})
		return
	}
	c.JSON(http.StatusOK, dto.DBHealthResponse{Status: "ok", Database: h.dbName})
}
