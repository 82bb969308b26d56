package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/glowbook/salon-booking-api/internal/domain/appointment"
	"github.com/glowbook/salon-booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	businessID uint,
) ([]models.Appointment, error) {

	// Non-nil so an empty result serializes as [].
	aps := make([]models.Appointment, 0)
	if err := r.db.WithContext(ctx).
		Where("business_info_id = ?", businessID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	businessID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_info_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// Update re-applies the tenant filter so a tampered payload can never
// retarget another business's row.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND business_info_id = ?", ap.ID, ap.BusinessInfoID).
		Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	businessID uint,
	appointmentID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND business_info_id = ?", appointmentID, businessID).
		Delete(&models.Appointment{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
