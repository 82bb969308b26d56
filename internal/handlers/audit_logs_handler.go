package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	bc := middleware.Business(c)

	var logs []models.AuditLog
	if err := h.db.
		Where("business_info_id = ?", bc.BusinessID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		h.log.Error().Err(err).Str("route", "audit.list").Msg("list failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.List(c, logs)
}
