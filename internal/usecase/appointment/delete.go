package appointment

import (
	"context"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/appointment"
	"github.com/glowbook/salon-booking-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	bc BusinessScope,
	appointmentID uint,
) error {

	rows, err := uc.repo.Delete(ctx, bc.BusinessID, appointmentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: bc.BusinessID,
		UserID:     &bc.UserID,
		Action:     "appointment_deleted",
		Entity:     "appointment",
		EntityID:   &appointmentID,
	})

	return nil
}
