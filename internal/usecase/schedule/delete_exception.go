package schedule

import (
	"context"

	"github.com/glowbook/salon-booking-api/internal/audit"
	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
)

type DeleteException struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteException(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteException {
	return &DeleteException{
		repo:  repo,
		audit: audit,
	}
}

// Execute is idempotent: deleting an id that is already gone (or never
// belonged to this tenant) still succeeds with zero rows touched.
func (uc *DeleteException) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	exceptionID uint,
) error {

	rows, err := uc.repo.DeleteException(ctx, businessID, exceptionID)
	if err != nil {
		return err
	}

	if rows > 0 {
		uc.audit.Dispatch(audit.Event{
			BusinessID: businessID,
			UserID:     &userID,
			Action:     "exception_deleted",
			Entity:     "schedule_exception",
			EntityID:   &exceptionID,
		})
	}

	return nil
}
