package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/appointment"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. The row is loaded scoped to the tenant,
// so a foreign id behaves exactly like a missing one, and a rejected patch
// leaves the stored row untouched.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	bc BusinessScope,
	appointmentID uint,
	patch domain.Patch,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, bc.BusinessID, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if err := patch.Validate(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	patch.Apply(ap)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: bc.BusinessID,
		UserID:     &bc.UserID,
		Action:     "appointment_updated",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
