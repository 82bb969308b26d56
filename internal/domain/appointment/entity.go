package appointment

import (
	"time"

	"github.com/glowbook/salon-booking-api/internal/models"
)

// Patch is a partial update. Nil pointers mean "leave unchanged". The
// scoping target (id, business_info_id) is never part of a patch; the
// repository re-applies the tenant filter server-side.
type Patch struct {
	ClientName  *string
	ClientPhone *string
	Service     *string
	Price       *float64
	StartTime   *time.Time
	EndTime     *time.Time
	Status      *string
	Notes       *string
}

func (p Patch) ChangesTimes() bool {
	return p.StartTime != nil || p.EndTime != nil
}

func (p Patch) Empty() bool {
	return p.ClientName == nil && p.ClientPhone == nil && p.Service == nil &&
		p.Price == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Status == nil && p.Notes == nil
}

// Apply mutates ap in memory after Validate has accepted the patch against
// the row's current status.
func (p Patch) Apply(ap *models.Appointment) {
	if p.ClientName != nil {
		ap.ClientName = *p.ClientName
	}
	if p.ClientPhone != nil {
		ap.ClientPhone = *p.ClientPhone
	}
	if p.Service != nil {
		ap.Service = *p.Service
	}
	if p.Price != nil {
		ap.Price = p.Price
	}
	if p.StartTime != nil {
		ap.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		ap.EndTime = *p.EndTime
	}
	if p.Status != nil {
		ap.Status = *p.Status
	}
	if p.Notes != nil {
		ap.Notes = *p.Notes
	}
}

// Validate enforces the mutation rules tied to the row's current status.
// Time changes are checked independently of status changes: confirmed rows
// keep accepting price/notes/status edits while their times stay locked.
func (p Patch) Validate(current Status) error {
	if p.ChangesTimes() {
		if err := CanReschedule(current); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if err := CanTransition(current, Status(*p.Status)); err != nil {
			return err
		}
	}
	return nil
}
