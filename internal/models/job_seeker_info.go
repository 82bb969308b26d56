package models

import "time"

// JobSeekerInfo holds job-seeker fields, 1:1 with BusinessProfile.
// This category has no working-hours concept.
type JobSeekerInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessInfoID uint            `gorm:"uniqueIndex;not null" json:"business_info_id"`
	BusinessInfo   BusinessProfile `gorm:"foreignKey:BusinessInfoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DesiredPosition string `gorm:"size:100" json:"desired_position"`
	ExperienceYears int    `json:"experience_years"`
	Bio             string `gorm:"size:1000" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
