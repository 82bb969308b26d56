package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/httpresp"
	"github.com/glowbook/salon-booking-api/internal/models"
)

// WebhookHandler ingests identity-provider events. user.created inserts the
// local User row (role unassigned); everything else is acknowledged and
// ignored. Delivery is at-least-once, the insert is idempotent per
// external id.
type WebhookHandler struct {
	db     *gorm.DB
	secret string
	log    zerolog.Logger
}

func NewWebhookHandler(db *gorm.DB, secret string, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{db: db, secret: secret, log: log}
}

type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"data"`
}

const signatureTolerance = 5 * time.Minute

func (h *WebhookHandler) HandleIdentityEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.BadRequest(c, "Unreadable body")
		return
	}

	if !h.verifySignature(c, body) {
		httperr.Unauthorized(c, "Invalid webhook signature")
		return
	}

	var ev identityEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		httperr.BadRequest(c, "Invalid event payload")
		return
	}

	if ev.Type != "user.created" {
		httpresp.Success(c)
		return
	}

	if ev.Data.ID == "" {
		httperr.BadRequest(c, "Missing user id")
		return
	}

	user := models.User{
		ClerkID: ev.Data.ID,
		Email:   ev.Data.Email,
	}
	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clerk_id"}},
			DoNothing: true,
		}).
		Create(&user).Error; err != nil {
		h.log.Error().Err(err).Str("route", "webhooks.identity").Msg("user insert failed")
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.Success(c)
}

// verifySignature checks the provider's HMAC-SHA256 scheme: the signed
// content is "<id>.<timestamp>.<body>", the header carries space-separated
// "v1,<base64>" entries.
func (h *WebhookHandler) verifySignature(c *gin.Context, body []byte) bool {
	msgID := c.GetHeader("webhook-id")
	timestamp := c.GetHeader("webhook-timestamp")
	signatures := c.GetHeader("webhook-signature")
	if msgID == "" || timestamp == "" || signatures == "" {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	if d := time.Since(time.Unix(ts, 0)); d > signatureTolerance || d < -signatureTolerance {
		return false
	}

	secret := strings.TrimPrefix(h.secret, "whsec_")
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		key = []byte(secret)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, sig := range strings.Fields(signatures) {
		parts := strings.SplitN(sig, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(parts[1]), []byte(expected)) {
			return true
		}
	}
	return false
}
