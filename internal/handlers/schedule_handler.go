package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	domainSchedule "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/models"
	ucSchedule "github.com/glowbook/salon-booking-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	getUC    *ucSchedule.GetSchedule
	hoursUC  *ucSchedule.ReplaceWorkingHours
	createUC *ucSchedule.CreateException
	deleteUC *ucSchedule.DeleteException
	blocksUC *ucSchedule.ListBlocks
	log      zerolog.Logger
}

func NewScheduleHandler(
	getUC *ucSchedule.GetSchedule,
	hoursUC *ucSchedule.ReplaceWorkingHours,
	createUC *ucSchedule.CreateException,
	deleteUC *ucSchedule.DeleteException,
	blocksUC *ucSchedule.ListBlocks,
	log zerolog.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		getUC:    getUC,
		hoursUC:  hoursUC,
		createUC: createUC,
		deleteUC: deleteUC,
		blocksUC: blocksUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type updateHoursRequest struct {
	// Raw so that a non-array payload can be rejected with a precise
	// message before any unmarshaling into the schedule type.
	BusinessHours json.RawMessage `json:"businessHours"`
}

type createExceptionRequest struct {
	Title   string  `json:"title"`
	Type    string  `json:"type"`
	Date    string  `json:"date"`
	EndDate *string `json:"endDate"`

	StartTime *string `json:"startTime" binding:"omitempty,hhmm"`
	EndTime   *string `json:"endTime" binding:"omitempty,hhmm"`
	IsFullDay *bool   `json:"isFullDay"`

	Recurring    bool `json:"recurring"`
	RecurringDay *int `json:"recurringDay"`

	Notes string `json:"notes"`
}

// ======================================================
// GET /business/schedule
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	bc := middleware.Business(c)

	sched, err := h.getUC.Execute(c.Request.Context(), bc.BusinessID, bc.Category)
	if err != nil {
		h.log.Error().Err(err).Str("route", "schedule.get").Msg("get failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.OK(c, sched)
}

// ======================================================
// PUT /business/schedule (working hours)
// ======================================================

func (h *ScheduleHandler) UpdateHours(c *gin.Context) {
	bc := middleware.Business(c)

	var req updateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	trimmed := bytes.TrimSpace(req.BusinessHours)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		httperr.BadRequest(c, "businessHours must be an array")
		return
	}

	var hours models.WeekSchedule
	if err := json.Unmarshal(trimmed, &hours); err != nil {
		httperr.BadRequest(c, "businessHours must be an array")
		return
	}

	err := h.hoursUC.Execute(c.Request.Context(), bc.BusinessID, bc.UserID, bc.Category, hours)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "unsupported_category"):
			httperr.BadRequest(c, "Working hours are not supported for this business category")
		case httperr.IsBusiness(err, "invalid_week_length"),
			httperr.IsBusiness(err, "invalid_day_of_week"),
			httperr.IsBusiness(err, "duplicate_day_of_week"):
			httperr.BadRequest(c, "businessHours must contain one entry per weekday")
		case httperr.IsBusiness(err, "invalid_time_format"):
			httperr.BadRequest(c, "Working hours must use HH:MM times")
		case httperr.IsBusiness(err, "open_after_close"):
			httperr.BadRequest(c, "openTime must be before closeTime")
		case httperr.IsBusiness(err, "profile_not_found"):
			httperr.NotFound(c, "Business profile not found")
		default:
			h.log.Error().Err(err).Str("route", "schedule.hours").Msg("update failed")
			httperr.Internal(c, "Internal server error")
		}
		return
	}

	httpresp.Success(c)
}

// ======================================================
// POST /business/schedule (exception)
// ======================================================

func (h *ScheduleHandler) CreateException(c *gin.Context) {
	bc := middleware.Business(c)

	var req createExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			httperr.BadRequest(c, "Times must use HH:MM")
			return
		}
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	ex, err := h.createUC.Execute(
		c.Request.Context(),
		bc.BusinessID,
		bc.UserID,
		ucSchedule.CreateExceptionInput{
			Title:        req.Title,
			Type:         req.Type,
			Date:         req.Date,
			EndDate:      req.EndDate,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			IsFullDay:    req.IsFullDay,
			Recurring:    req.Recurring,
			RecurringDay: req.RecurringDay,
			Notes:        req.Notes,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_required_fields"):
			httperr.BadRequest(c, "title, type and date are required")
		case httperr.IsBusiness(err, "invalid_exception_type"):
			httperr.BadRequestWithHint(c, "Invalid exception type", domainSchedule.ExceptionTypes)
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "Dates must use YYYY-MM-DD")
		case httperr.IsBusiness(err, "incomplete_time_range"):
			httperr.BadRequest(c, "startTime and endTime must both be set")
		case httperr.IsBusiness(err, "invalid_time_format"):
			httperr.BadRequest(c, "Times must use HH:MM")
		case httperr.IsBusiness(err, "start_after_end"):
			httperr.BadRequest(c, "startTime must be before endTime")
		case httperr.IsBusiness(err, "invalid_recurring_day"):
			httperr.BadRequest(c, "recurringDay must be between 0 and 6")
		default:
			h.log.Error().Err(err).Str("route", "schedule.exception").Msg("create failed")
			httperr.Internal(c, "Internal server error")
		}
		return
	}

	httpresp.Created(c, gin.H{"success": true, "exception": ex})
}

// ======================================================
// DELETE /business/schedule?id=
// ======================================================

func (h *ScheduleHandler) DeleteException(c *gin.Context) {
	bc := middleware.Business(c)

	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Missing exception id")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), bc.BusinessID, bc.UserID, uint(id)); err != nil {
		h.log.Error().Err(err).Str("route", "schedule.exception").Msg("delete failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.Success(c)
}

// ======================================================
// GET /business/schedule/blocks
// ======================================================

func (h *ScheduleHandler) Blocks(c *gin.Context) {
	bc := middleware.Business(c)

	from, err1 := domainSchedule.ParseDate(c.Query("start"))
	to, err2 := domainSchedule.ParseDate(c.Query("end"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "start and end are required as YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		httperr.BadRequest(c, "end must not be before start")
		return
	}

	blocks, err := h.blocksUC.Execute(c.Request.Context(), bc.BusinessID, bc.Category, from, to)
	if err != nil {
		h.log.Error().Err(err).Str("route", "schedule.blocks").Msg("blocks failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{"blocks": blocks})
}
