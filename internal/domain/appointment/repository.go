package appointment

import (
	"context"

	"github.com/glowbook/salon-booking-api/internal/models"
)

// Repository is the persistence contract for the appointment aggregate.
// Every method takes the owning business id and must scope its query on it;
// a foreign id must behave exactly like a missing row.
type Repository interface {
	List(ctx context.Context, businessID uint) ([]models.Appointment, error)

	Get(ctx context.Context, businessID, appointmentID uint) (*models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error

	Update(ctx context.Context, ap *models.Appointment) error

	// Delete returns the number of rows removed so callers can
	// distinguish "gone" from "never yours".
	Delete(ctx context.Context, businessID, appointmentID uint) (int64, error)
}
