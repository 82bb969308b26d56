package schedule

import (
	"context"

	"github.com/glowbook/salon-booking-api/internal/models"
)

// Repository persists working hours and exceptions, always scoped to the
// owning business. Working hours live on the category table as a JSON
// column and are replaced wholesale.
type Repository interface {
	GetWeekSchedule(ctx context.Context, businessID uint, category string) (models.WeekSchedule, error)

	SaveWeekSchedule(ctx context.Context, businessID uint, category string, ws models.WeekSchedule) error

	ListExceptions(ctx context.Context, businessID uint) ([]models.ScheduleException, error)

	CreateException(ctx context.Context, ex *models.ScheduleException) error

	// DeleteException returns rows affected; deleting an absent id is not
	// an error.
	DeleteException(ctx context.Context, businessID, exceptionID uint) (int64, error)
}
