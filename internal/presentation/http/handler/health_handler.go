package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
)

// HealthHandler reports whether the service and its database are up
type HealthHandler struct {
	db      *gorm.DB
	service string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, service string) *HealthHandler {
	return &HealthHandler{db: db, service: service}
}

// Check pings the database
func (h *HealthHandler) Check(c *gin.Context) {
	status := gin.H{"status": "ok", "service": h.service, "database": "ok"}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		response.Success(c, http.StatusServiceUnavailable, "Service degraded", status)
		return
	}
	response.OK(c, "Service healthy", status)
}
