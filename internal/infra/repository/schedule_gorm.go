package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/glowbook/salon-booking-api/internal/domain/schedule"
	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// GetWeekSchedule reads the JSON hours column off the category table.
// Categories without an hours table yield unsupported_category.
func (r *ScheduleGormRepository) GetWeekSchedule(
	ctx context.Context,
	businessID uint,
	category string,
) (models.WeekSchedule, error) {

	switch category {
	case models.CategorySalonOwner:
		var info models.SalonInfo
		if err := r.db.WithContext(ctx).
			Where("business_info_id = ?", businessID).
			First(&info).Error; err != nil {
			return nil, err
		}
		return info.BusinessHours, nil

	case models.CategoryMobileService:
		var info models.MobileServiceInfo
		if err := r.db.WithContext(ctx).
			Where("business_info_id = ?", businessID).
			First(&info).Error; err != nil {
			return nil, err
		}
		return info.BusinessHours, nil

	default:
		return nil, httperr.ErrBusiness("unsupported_category")
	}
}

func (r *ScheduleGormRepository) SaveWeekSchedule(
	ctx context.Context,
	businessID uint,
	category string,
	ws models.WeekSchedule,
) error {

	switch category {
	case models.CategorySalonOwner:
		return r.updateHours(ctx, &models.SalonInfo{}, businessID, ws)
	case models.CategoryMobileService:
		return r.updateHours(ctx, &models.MobileServiceInfo{}, businessID, ws)
	default:
		return httperr.ErrBusiness("unsupported_category")
	}
}

func (r *ScheduleGormRepository) updateHours(
	ctx context.Context,
	model any,
	businessID uint,
	ws models.WeekSchedule,
) error {

	res := r.db.WithContext(ctx).
		Model(model).
		Where("business_info_id = ?", businessID).
		Update("business_hours", ws)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) ListExceptions(
	ctx context.Context,
	businessID uint,
) ([]models.ScheduleException, error) {

	// Non-nil so an empty result serializes as [].
	exceptions := make([]models.ScheduleException, 0)
	if err := r.db.WithContext(ctx).
		Where("business_info_id = ?", businessID).
		Order("date ASC").
		Find(&exceptions).Error; err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *ScheduleGormRepository) CreateException(
	ctx context.Context,
	ex *models.ScheduleException,
) error {
	return r.db.WithContext(ctx).Create(ex).Error
}

func (r *ScheduleGormRepository) DeleteException(
	ctx context.Context,
	businessID uint,
	exceptionID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND business_info_id = ?", exceptionID, businessID).
		Delete(&models.ScheduleException{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
