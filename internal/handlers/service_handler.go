package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type ServiceHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1"`
	Price           float64 `json:"price" binding:"min=0"`
	Currency        string  `json:"currency" binding:"required"`
	IsActive        *bool   `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Currency        *string  `json:"currency"`
	IsActive        *bool    `json:"is_active"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	bc := middleware.Business(c)

	var services []models.Service
	if err := h.db.
		Where("business_info_id = ?", bc.BusinessID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		h.log.Error().Err(err).Str("route", "services.list").Msg("list failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	bc := middleware.Business(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "name, duration_minutes and currency are required")
		return
	}

	if !models.IsValidCurrency(req.Currency) {
		httperr.BadRequestWithHint(c, "Invalid currency", models.Currencies)
		return
	}

	svc := models.Service{
		BusinessInfoID:  bc.BusinessID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Currency:        req.Currency,
		IsActive:        true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := h.db.Create(&svc).Error; err != nil {
		h.log.Error().Err(err).Str("route", "services.create").Msg("create failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.Created(c, gin.H{"service": svc})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	bc := middleware.Business(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Missing service id")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			httperr.BadRequest(c, "duration_minutes must be at least 1")
			return
		}
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "price must not be negative")
			return
		}
		updates["price"] = *req.Price
	}
	if req.Currency != nil {
		if !models.IsValidCurrency(*req.Currency) {
			httperr.BadRequestWithHint(c, "Invalid currency", models.Currencies)
			return
		}
		updates["currency"] = *req.Currency
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "No fields to update")
		return
	}

	res := h.db.Model(&models.Service{}).
		Where("id = ? AND business_info_id = ?", id, bc.BusinessID).
		Updates(updates)
	if res.Error != nil {
		h.log.Error().Err(res.Error).Str("route", "services.update").Msg("update failed")
		httperr.Internal(c, "Internal server error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Service not found")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_info_id = ?", id, bc.BusinessID).
		First(&svc).Error; err != nil {
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{"service": svc})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	bc := middleware.Business(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Missing service id")
		return
	}

	res := h.db.
		Where("id = ? AND business_info_id = ?", id, bc.BusinessID).
		Delete(&models.Service{})
	if res.Error != nil {
		h.log.Error().Err(res.Error).Str("route", "services.delete").Msg("delete failed")
		httperr.Internal(c, "Internal server error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Service not found")
		return
	}

	httpresp.Success(c)
}
