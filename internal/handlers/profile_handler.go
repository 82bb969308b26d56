package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/models"
	"github.com/glowbook/salon-booking-api/internal/tenant"
)

type ProfileHandler struct {
	db       *gorm.DB
	resolver *tenant.Resolver
	log      zerolog.Logger
}

func NewProfileHandler(db *gorm.DB, resolver *tenant.Resolver, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{db: db, resolver: resolver, log: log}
}

// --------- Requests ---------

type UpsertProfileRequest struct {
	BusinessCategory    string `json:"business_category" binding:"required"`
	ProfessionalType    string `json:"professional_type"`
	OnboardingCompleted *bool  `json:"onboarding_completed"`

	// Salon owner fields
	SalonName string `json:"salon_name"`
	Address   string `json:"address"`

	// Mobile service fields
	DisplayName string `json:"display_name"`
	ServiceArea string `json:"service_area"`

	// Job seeker fields
	DesiredPosition string `json:"desired_position"`
	ExperienceYears int    `json:"experience_years"`
	Bio             string `json:"bio"`

	Phone string `json:"phone"`
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	externalID := c.MustGet(middleware.ContextExternalID).(string)

	profile, ok := h.lookup(c, externalID)
	if !ok {
		return
	}

	resp := gin.H{"profile": profile}
	switch profile.BusinessCategory {
	case models.CategorySalonOwner:
		var info models.SalonInfo
		if err := h.db.Where("business_info_id = ?", profile.ID).First(&info).Error; err == nil {
			resp["salon_info"] = info
		}
	case models.CategoryMobileService:
		var info models.MobileServiceInfo
		if err := h.db.Where("business_info_id = ?", profile.ID).First(&info).Error; err == nil {
			resp["mobile_service_info"] = info
		}
	case models.CategoryJobSeeker:
		var info models.JobSeekerInfo
		if err := h.db.Where("business_info_id = ?", profile.ID).First(&info).Error; err == nil {
			resp["job_seeker_info"] = info
		}
	}

	httpresp.OK(c, resp)
}

// Upsert creates or updates the profile plus its category satellite, keyed
// on the user id. The tenant cache is invalidated afterwards.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	externalID := c.MustGet(middleware.ContextExternalID).(string)

	var user models.User
	if err := h.db.Where("clerk_id = ?", externalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		h.log.Error().Err(err).Str("route", "profile.upsert").Msg("user lookup failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	if user.Role == nil || *user.Role != models.RoleBusiness {
		httperr.Forbidden(c, "Business role required")
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "business_category is required")
		return
	}

	if !models.IsValidCategory(req.BusinessCategory) {
		httperr.BadRequestWithHint(c, "Invalid business category", models.BusinessCategories)
		return
	}
	if req.ProfessionalType != "" && !models.IsValidProfessionalType(req.ProfessionalType) {
		httperr.BadRequestWithHint(c, "Invalid professional type", models.ProfessionalTypes)
		return
	}

	profile := models.BusinessProfile{
		UserID:           user.ID,
		BusinessCategory: req.BusinessCategory,
		ProfessionalType: req.ProfessionalType,
	}
	if req.OnboardingCompleted != nil {
		profile.OnboardingCompleted = *req.OnboardingCompleted
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"business_category", "professional_type", "onboarding_completed", "updated_at",
				}),
			}).
			Create(&profile).Error; err != nil {
			return err
		}

		// Re-read to get the id on the conflict path.
		if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			return err
		}

		return h.upsertSatellite(tx, &profile, &req)
	})
	if err != nil {
		h.log.Error().Err(err).Str("route", "profile.upsert").Msg("upsert failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	h.resolver.Invalidate(externalID)

	httpresp.OK(c, gin.H{"profile": profile})
}

func (h *ProfileHandler) upsertSatellite(tx *gorm.DB, profile *models.BusinessProfile, req *UpsertProfileRequest) error {
	switch profile.BusinessCategory {
	case models.CategorySalonOwner:
		info := models.SalonInfo{
			BusinessInfoID: profile.ID,
			SalonName:      req.SalonName,
			Address:        req.Address,
			Phone:          req.Phone,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_info_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"salon_name", "address", "phone", "updated_at",
			}),
		}).Create(&info).Error

	case models.CategoryMobileService:
		info := models.MobileServiceInfo{
			BusinessInfoID: profile.ID,
			DisplayName:    req.DisplayName,
			ServiceArea:    req.ServiceArea,
			Phone:          req.Phone,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_info_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "service_area", "phone", "updated_at",
			}),
		}).Create(&info).Error

	case models.CategoryJobSeeker:
		info := models.JobSeekerInfo{
			BusinessInfoID:  profile.ID,
			DesiredPosition: req.DesiredPosition,
			ExperienceYears: req.ExperienceYears,
			Bio:             req.Bio,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_info_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"desired_position", "experience_years", "bio", "updated_at",
			}),
		}).Create(&info).Error
	}
	return nil
}

// lookup resolves the caller's profile, writing the error response itself
// when that fails.
func (h *ProfileHandler) lookup(c *gin.Context, externalID string) (*models.BusinessProfile, bool) {
	var user models.User
	if err := h.db.Where("clerk_id = ?", externalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return nil, false
		}
		h.log.Error().Err(err).Str("route", "profile.get").Msg("user lookup failed")
		httperr.Internal(c, "Internal server error")
		return nil, false
	}

	var profile models.BusinessProfile
	if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Business not found")
			return nil, false
		}
		h.log.Error().Err(err).Str("route", "profile.get").Msg("profile lookup failed")
		httperr.Internal(c, "Internal server error")
		return nil, false
	}

	return &profile, true
}
