package models

import "time"

// ScheduleException overrides working hours for one date, a date span, or a
// recurring weekday. Dates and times are naive business-local strings
// (YYYY-MM-DD / HH:MM). Exactly one of the two modes holds per row:
// full-day (both times nil) or timed (both times set).
type ScheduleException struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessInfoID uint            `gorm:"index;not null" json:"business_info_id"`
	BusinessInfo   BusinessProfile `gorm:"foreignKey:BusinessInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title string `gorm:"size:100;not null" json:"title"`
	Type  string `gorm:"size:20;not null" json:"type"`

	Date    string  `gorm:"size:10;not null" json:"date"`
	EndDate *string `gorm:"size:10" json:"end_date"`

	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`

	IsFullDay bool `gorm:"default:true" json:"is_full_day"`

	Recurring    bool `gorm:"default:false" json:"recurring"`
	RecurringDay *int `json:"recurring_day"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
