package models

import "time"

// MobileServiceInfo holds mobile-professional fields, 1:1 with BusinessProfile.
type MobileServiceInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessInfoID uint            `gorm:"uniqueIndex;not null" json:"business_info_id"`
	BusinessInfo   BusinessProfile `gorm:"foreignKey:BusinessInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DisplayName string `gorm:"size:100" json:"display_name"`
	ServiceArea string `gorm:"size:255" json:"service_area"`
	Phone       string `gorm:"size:20" json:"phone"`

	BusinessHours WeekSchedule `gorm:"type:jsonb" json:"business_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
