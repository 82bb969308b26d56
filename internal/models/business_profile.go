package models

import "time"

const (
	CategorySalonOwner    = "salon_owner"
	CategoryMobileService = "mobile_service"
	CategoryJobSeeker     = "job_seeker"
)

var BusinessCategories = []string{
	CategorySalonOwner,
	CategoryMobileService,
	CategoryJobSeeker,
}

var ProfessionalTypes = []string{
	"barber",
	"hairdresser",
	"makeup",
	"nails",
	"massage",
	"esthetician",
	"other",
}

// BusinessProfile is the tenant root. Every appointment, exception and
// service row is scoped to its ID (business_info_id in the wire format).
type BusinessProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BusinessCategory    string `gorm:"size:30;not null" json:"business_category"`
	ProfessionalType    string `gorm:"size:30" json:"professional_type"`
	OnboardingCompleted bool   `gorm:"default:false" json:"onboarding_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidCategory(c string) bool {
	for _, v := range BusinessCategories {
		if v == c {
			return true
		}
	}
	return false
}

func IsValidProfessionalType(p string) bool {
	for _, v := range ProfessionalTypes {
		if v == p {
			return true
		}
	}
	return false
}

// HasWorkingHours reports whether the category carries a weekly schedule.
// Job seekers have no physical or mobile presence, so no hours concept.
func HasWorkingHours(category string) bool {
	return category == CategorySalonOwner || category == CategoryMobileService
}
