package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/models"
)

// SessionRepository keeps per-visitor product maps (the anonymous cart and the
// staff quote builder) keyed by session id.
type SessionRepository interface {
	GetItems(ctx context.Context, sessionID, part string) (models.CartItems, error)
	SaveItems(ctx context.Context, sessionID, part string, items models.CartItems) error
	Clear(ctx context.Context, sessionID string, parts ...string) error
}

type sessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSessionRepo(c cache.Cache, ttl time.Duration) SessionRepository {
	return &sessionRepository{cache: c, ttl: ttl}
}

// GetItems never returns a nil map; an unknown session reads as empty.
func (r *sessionRepository) GetItems(ctx context.Context, sessionID, part string) (models.CartItems, error) {
	items := models.CartItems{}

	if sessionID == "" {
		return items, nil
	}

	key := cache.SessionKey(sessionID, part)

	found, err := r.cache.Get(ctx, key, &items)
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", part, err)
	}

	if !found || items == nil {
		return models.CartItems{}, nil
	}

	// sliding expiry: an active visitor keeps their session
	if err := r.cache.Touch(ctx, key, r.ttl); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *sessionRepository) SaveItems(ctx context.Context, sessionID, part string, items models.CartItems) error {
	if items == nil {
		items = models.CartItems{}
	}

	if err := r.cache.Set(ctx, cache.SessionKey(sessionID, part), items, r.ttl); err != nil {
		return fmt.Errorf("saving session %s: %w", part, err)
	}

	return nil
}

func (r *sessionRepository) Clear(ctx context.Context, sessionID string, parts ...string) error {
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		keys = append(keys, cache.SessionKey(sessionID, part))
	}

	return r.cache.Delete(ctx, keys...)
}
