package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type ReplaceWorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceWorkingHours(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReplaceWorkingHours {
	return &ReplaceWorkingHours{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the whole 7-entry schedule. Categories without an hours
// table reject with a domain error instead of silently no-oping.
func (uc *ReplaceWorkingHours) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	category string,
	hours models.WeekSchedule,
) error {

	if !models.HasWorkingHours(category) {
		return httperr.ErrBusiness("unsupported_category")
	}

	if err := domain.ValidateWeek(hours); err != nil {
		return err
	}

	if err := uc.repo.SaveWeekSchedule(ctx, businessID, category, hours); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("profile_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "working_hours_updated",
		Entity:     "working_hours",
	})

	return nil
}
