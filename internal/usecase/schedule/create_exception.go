package schedule

import (
	"context"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
	"github.com/glowbook/salon-booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateExceptionInput struct {
	Title   string
	Type    string
	Date    string
	EndDate *string

	StartTime *string
	EndTime   *string
	IsFullDay *bool

	Recurring    bool
	RecurringDay *int

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateException struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateException(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateException {
	return &CreateException{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateException) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	in CreateExceptionInput,
) (*models.ScheduleException, error) {

	ex, err := buildException(businessID, in)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateException(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "exception_created",
		Entity:     "schedule_exception",
		EntityID:   &ex.ID,
	})

	return ex, nil
}

// buildException validates the payload and normalizes it into the stored
// invariant: full-day rows carry no times, timed rows carry an ordered pair.
func buildException(businessID uint, in CreateExceptionInput) (*models.ScheduleException, error) {
	if in.Title == "" || in.Type == "" || in.Date == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if !domain.IsValidExceptionType(in.Type) {
		return nil, httperr.ErrBusiness("invalid_exception_type")
	}

	anchor, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if in.EndDate != nil {
		if _, err := domain.ParseDate(*in.EndDate); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	// Defaults to full-day when no times arrive.
	fullDay := in.StartTime == nil && in.EndTime == nil
	if in.IsFullDay != nil && *in.IsFullDay {
		fullDay = true
	}

	ex := &models.ScheduleException{
		BusinessInfoID: businessID,
		Title:          in.Title,
		Type:           in.Type,
		Date:           in.Date,
		EndDate:        in.EndDate,
		IsFullDay:      fullDay,
		Recurring:      in.Recurring,
		Notes:          in.Notes,
	}

	if !fullDay {
		if in.StartTime == nil || in.EndTime == nil {
			return nil, httperr.ErrBusiness("incomplete_time_range")
		}
		if !validators.IsClock(*in.StartTime) || !validators.IsClock(*in.EndTime) {
			return nil, httperr.ErrBusiness("invalid_time_format")
		}
		if !validators.ClockBefore(*in.StartTime, *in.EndTime) {
			return nil, httperr.ErrBusiness("start_after_end")
		}
		ex.StartTime = in.StartTime
		ex.EndTime = in.EndTime
		ex.EndDate = nil
	}

	if in.Recurring {
		day := int(anchor.Weekday())
		if in.RecurringDay != nil {
			day = *in.RecurringDay
		}
		if day < 0 || day > 6 {
			return nil, httperr.ErrBusiness("invalid_recurring_day")
		}
		ex.RecurringDay = &day
		// Recurrence is single-day per occurrence; a date span makes no
		// sense alongside it.
		ex.EndDate = nil
	}

	return ex, nil
}
