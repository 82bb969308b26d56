package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/models"
	ucAppointment "github.com/glowbook/salon-booking-api/internal/usecase/appointment"

	domain "github.com/glowbook/salon-booking-api/internal/domain/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	log      zerolog.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	log zerolog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string    `json:"client_name" binding:"required"`
	ClientPhone string    `json:"client_phone"`
	Service     string    `json:"service" binding:"required"`
	Price       *float64  `json:"price"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ID uint `json:"id"`

	ClientName  *string    `json:"client_name"`
	ClientPhone *string    `json:"client_phone"`
	Service     *string    `json:"service"`
	Price       *float64   `json:"price"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

// List degrades to an empty set when the user has no business profile yet;
// a fresh business-role account sees zero appointments, not an error page.
func (h *AppointmentHandler) List(c *gin.Context) {
	bc := middleware.Business(c)
	if bc == nil {
		httpresp.OK(c, gin.H{"appointments": []models.Appointment{}})
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), bc.BusinessID)
	if err != nil {
		h.log.Error().Err(err).Str("route", "appointments.list").Msg("list failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{"appointments": aps})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	bc := middleware.Business(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "client_name, service, start_time and end_time are required")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.BusinessScope{BusinessID: bc.BusinessID, UserID: bc.UserID},
		ucAppointment.CreateInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			Service:     req.Service,
			Price:       req.Price,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      req.Status,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_required_fields"):
			httperr.BadRequest(c, "client_name, service, start_time and end_time are required")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Invalid appointment status")
		default:
			h.log.Error().Err(err).Str("route", "appointments.create").Msg("create failed")
			httperr.Internal(c, "Internal server error")
		}
		return
	}

	httpresp.Created(c, gin.H{"appointment": ap})
}

// ======================================================
// UPDATE (partial PUT)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	bc := middleware.Business(c)

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		httperr.BadRequest(c, "Missing appointment id")
		return
	}

	patch := domain.Patch{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Service:     req.Service,
		Price:       req.Price,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      req.Status,
		Notes:       req.Notes,
	}

	ap, err := h.updateUC.Execute(
		c.Request.Context(),
		ucAppointment.BusinessScope{BusinessID: bc.BusinessID, UserID: bc.UserID},
		req.ID,
		patch,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "Appointment not found")
		case httperr.IsBusiness(err, "confirmed_locked"):
			httperr.BadRequest(c, "Confirmed appointments cannot be moved/resized")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "Appointment is completed or cancelled")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Invalid appointment status")
		default:
			h.log.Error().Err(err).Str("route", "appointments.update").Msg("update failed")
			httperr.Internal(c, "Internal server error")
		}
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	bc := middleware.Business(c)

	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Missing appointment id")
		return
	}

	if err := h.deleteUC.Execute(
		c.Request.Context(),
		ucAppointment.BusinessScope{BusinessID: bc.BusinessID, UserID: bc.UserID},
		uint(id),
	); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		h.log.Error().Err(err).Str("route", "appointments.delete").Msg("delete failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.Success(c)
}
