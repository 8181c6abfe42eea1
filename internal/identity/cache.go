package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

// TokenCache is the subset of the store cache used here.
type TokenCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedProvider fronts another provider with a token cache so each token
// hits the upstream at most once per TTL. Tokens are hashed before use as
// cache keys; the raw token never reaches Redis.
type CachedProvider struct {
	inner  Provider
	cache  TokenCache
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCachedProvider(inner Provider, cache TokenCache, ttl time.Duration, logger *zap.SugaredLogger) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

var _ Provider = (*CachedProvider)(nil)

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "mp:identity:" + hex.EncodeToString(sum[:])
}

func (p *CachedProvider) Resolve(ctx context.Context, token string) (*Identity, error) {
	key := tokenKey(token)

	var cached Identity
	if err := p.cache.Get(ctx, key, &cached); err == nil && cached.ExternalID != "" {
		return &cached, nil
	}

	id, err := p.inner.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, id, p.ttl); err != nil && p.logger != nil {
		p.logger.Warnw("Identity cache set failed", "error", err)
	}
	return id, nil
}
