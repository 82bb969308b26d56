package tenant

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking-api/internal/models"
)

// Context is the resolved business scope for a request: every downstream
// query filters on BusinessID.
type Context struct {
	UserID     uint
	BusinessID uint
	Category   string
}

// Resolver maps an external user id to its business context. Lookups hit a
// short-lived in-process cache; profile upserts invalidate it.
type Resolver struct {
	db    *gorm.DB
	cache *gocache.Cache
}

func NewResolver(db *gorm.DB, ttl time.Duration) *Resolver {
	return &Resolver{
		db:    db,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Resolve returns nil (not an error) when the user is missing, has no
// business role, or has no profile yet. Datastore failures are errors.
func (r *Resolver) Resolve(ctx context.Context, externalID string) (*Context, error) {
	if v, ok := r.cache.Get(externalID); ok {
		bc := v.(Context)
		return &bc, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("clerk_id = ?", externalID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if user.Role == nil || *user.Role != models.RoleBusiness {
		return nil, nil
	}

	var profile models.BusinessProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	bc := Context{
		UserID:     user.ID,
		BusinessID: profile.ID,
		Category:   profile.BusinessCategory,
	}
	r.cache.SetDefault(externalID, bc)

	return &bc, nil
}

// Invalidate drops the cached context after a profile or role change.
func (r *Resolver) Invalidate(externalID string) {
	r.cache.Delete(externalID)
}
