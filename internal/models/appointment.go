package models

import "time"

// Appointment is a client booking. Service is free text, not a foreign key
// into the Service catalog.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessInfoID uint            `gorm:"index;not null" json:"business_info_id"`
	BusinessInfo   BusinessProfile `gorm:"foreignKey:BusinessInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Service string   `gorm:"size:100;not null" json:"service"`
	Price   *float64 `json:"price"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
