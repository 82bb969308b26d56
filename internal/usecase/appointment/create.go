package appointment

import (
	"context"
	"time"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/appointment"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientName  string
	ClientPhone string
	Service     string
	Price       *float64
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	bc BusinessScope,
	in CreateInput,
) (*models.Appointment, error) {

	if in.ClientName == "" || in.Service == "" ||
		in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.DefaultStatus()
	} else if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap := &models.Appointment{
		BusinessInfoID: bc.BusinessID,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		Service:        in.Service,
		Price:          in.Price,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Status:         string(status),
		Notes:          in.Notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: bc.BusinessID,
		UserID:     &bc.UserID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
