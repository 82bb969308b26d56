package appointment

import (
	"context"

	domain "github.com/glowbook/salon-booking-api/internal/domain/appointment"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the tenant's appointments ascending by start time. The
// repository guarantees the ordering for any insertion order.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	businessID uint,
) ([]models.Appointment, error) {
	return uc.repo.List(ctx, businessID)
}
