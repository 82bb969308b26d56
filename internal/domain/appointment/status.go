package appointment

import "github.com/glowbook/salon-booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// DefaultStatus applies when the caller does not specify one.
func DefaultStatus() Status {
	return StatusConfirmed
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal: completed and cancelled are one-way, nothing transitions out.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition rejects any transition out of a terminal state. Every
// non-terminal row may move to any valid status, including back and forth
// between pending and confirmed.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(from) && from != to {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule gates start/end time changes. Confirmed appointments cannot
// be moved or resized, and terminal ones are frozen too; only pending rows
// may change times.
func CanReschedule(current Status) error {
	if current == StatusConfirmed {
		return httperr.ErrBusiness("confirmed_locked")
	}
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
