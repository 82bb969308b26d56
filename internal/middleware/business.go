package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/tenant"
)

const ContextBusiness = "businessContext"

// BusinessContext resolves the tenant scope for the authenticated user and
// stores it (possibly nil) on the request. Listing routes degrade to empty
// results on a nil context; everything else goes through RequireBusiness.
func BusinessContext(resolver *tenant.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID := c.MustGet(ContextExternalID).(string)

		bc, err := resolver.Resolve(c.Request.Context(), externalID)
		if err != nil {
			httperr.Internal(c, "Internal server error")
			c.Abort()
			return
		}

		if bc != nil {
			c.Set(ContextBusiness, bc)
		}
		c.Next()
	}
}

// RequireBusiness rejects requests without a resolved business context.
// 404 rather than 403, so the response does not leak whether a business
// exists for someone else.
func RequireBusiness() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextBusiness); !ok {
			httperr.NotFound(c, "Business not found")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Business returns the resolved context, nil on degrading routes.
func Business(c *gin.Context) *tenant.Context {
	if v, ok := c.Get(ContextBusiness); ok {
		return v.(*tenant.Context)
	}
	return nil
}
