package schedule

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
)

type ListBlocks struct {
	repo domain.Repository
}

func NewListBlocks(repo domain.Repository) *ListBlocks {
	return &ListBlocks{repo: repo}
}

// Execute materializes the calendar background for [from, to] inclusive.
// Missing or category-less hours degrade to exception-only blocks.
func (uc *ListBlocks) Execute(
	ctx context.Context,
	businessID uint,
	category string,
	from time.Time,
	to time.Time,
) ([]domain.Block, error) {

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

	return domain.Blocks(hours, exceptions, from, to), nil
}
