package models

import "time"

var Currencies = []string{"USD", "EUR", "GBP", "ILS"}

// Service is a catalog entry offered by a business. Deactivating hides it
// from booking without deleting history.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessInfoID uint            `gorm:"index;not null" json:"business_info_id"`
	BusinessInfo   BusinessProfile `gorm:"foreignKey:BusinessInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"size:255" json:"description"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	Price           float64 `gorm:"not null" json:"price"`
	Currency        string  `gorm:"size:3;not null" json:"currency"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidCurrency(c string) bool {
	for _, v := range Currencies {
		if v == c {
			return true
		}
	}
	return false
}
