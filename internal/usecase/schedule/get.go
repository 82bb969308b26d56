package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type Schedule struct {
	BusinessHours models.WeekSchedule        `json:"businessHours"`
	Exceptions    []models.ScheduleException `json:"exceptions"`
	Category      string                     `json:"category"`
}

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

// Execute assembles the schedule view. Categories without an hours concept
// (and profiles that have not saved hours yet) return nil businessHours
// rather than an error.
func (uc *GetSchedule) Execute(
	ctx context.Context,
	businessID uint,
	category string,
) (*Schedule, error) {

	hours, err := uc.repo.GetWeekSchedule(ctx, businessID, category)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) &&
			!httperr.IsBusiness(err, "unsupported_category") {
			return nil, err
		}
		hours = nil
	}

	exceptions, err := uc.repo.ListExceptions(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &Schedule{
		BusinessHours: hours,
		Exceptions:    exceptions,
		Category:      category,
	}, nil
}
