package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/models"
	"github.com/glowbook/salon-booking-api/internal/tenant"
)

type MeHandler struct {
	db       *gorm.DB
	resolver *tenant.Resolver
	log      zerolog.Logger
}

func NewMeHandler(db *gorm.DB, resolver *tenant.Resolver, log zerolog.Logger) *MeHandler {
	return &MeHandler{db: db, resolver: resolver, log: log}
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	externalID := c.MustGet(middleware.ContextExternalID).(string)

	var user models.User
	if err := h.db.Where("clerk_id = ?", externalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		h.log.Error().Err(err).Str("route", "me").Msg("lookup failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	resp := gin.H{"user": user}

	var profile models.BusinessProfile
	if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		resp["profile"] = profile
	}

	httpresp.OK(c, resp)
}

// AssignRole sets the user's role exactly once. Repeating the same role is
// a no-op; a different role is rejected.
func (h *MeHandler) AssignRole(c *gin.Context) {
	externalID := c.MustGet(middleware.ContextExternalID).(string)

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "role is required")
		return
	}

	if req.Role != models.RoleBusiness && req.Role != models.RoleUser {
		httperr.BadRequestWithHint(c, "Invalid role", []string{models.RoleBusiness, models.RoleUser})
		return
	}

	var user models.User
	if err := h.db.Where("clerk_id = ?", externalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		h.log.Error().Err(err).Str("route", "auth.role").Msg("lookup failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	if user.Role != nil {
		if *user.Role == req.Role {
			httpresp.OK(c, gin.H{"success": true, "user": user})
			return
		}
		httperr.BadRequest(c, "Role already assigned")
		return
	}

	if err := h.db.Model(&user).Update("role", req.Role).Error; err != nil {
		h.log.Error().Err(err).Str("route", "auth.role").Msg("update failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	h.resolver.Invalidate(externalID)

	httpresp.OK(c, gin.H{"success": true, "user": user})
}
