package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/identity"
)

const (
	ContextExternalID = "externalUserID"

	// Session cookie set by the identity provider's frontend SDK. Bearer
	// tokens are accepted as a fallback on every route.
	sessionCookie = "__session"
)

// Authenticate resolves the request identity via session cookie first, then
// the Authorization header. Verification failures never propagate; the
// request is answered with a generic 401.
func Authenticate(verifier identity.Verifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			httperr.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		sub, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("token verification failed")
			httperr.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextExternalID, sub)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
