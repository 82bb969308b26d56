package models

import "time"

// SalonInfo holds salon-owner specific fields, 1:1 with BusinessProfile.
type SalonInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessInfoID uint            `gorm:"uniqueIndex;not null" json:"business_info_id"`
	BusinessInfo   BusinessProfile `gorm:"foreignKey:BusinessInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SalonName string `gorm:"size:100" json:"salon_name"`
	Address   string `gorm:"size:255" json:"address"`
	Phone     string `gorm:"size:20" json:"phone"`

	BusinessHours WeekSchedule `gorm:"type:jsonb" json:"business_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
