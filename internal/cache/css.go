// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// css.go provides a Valkey-backed cache for compiled theme stylesheets
// (L2). Compilation is deterministic, so a stylesheet is keyed by theme
// id plus a digest of the override document and stays valid until the
// theme itself changes.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// cssKeyPrefix is the Valkey key prefix for compiled stylesheets.
	cssKeyPrefix = "css:"

	// DefaultCSSTTL is how long a compiled stylesheet stays cached.
	// Longer than previews: compilation output only changes when the
	// theme or its overrides do, and both are part of the key.
	DefaultCSSTTL = time.Hour
)

// CSSCache manages compiled theme CSS in Valkey.
type CSSCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCSSCache creates a stylesheet cache backed by the given Valkey
// client. A nil client yields a cache whose operations are no-ops.
func NewCSSCache(client *redis.Client, ttl time.Duration) *CSSCache {
	if ttl == 0 {
		ttl = DefaultCSSTTL
	}
	return &CSSCache{client: client, ttl: ttl}
}

// CSSKey builds the cache key for one compiled stylesheet: theme id plus
// a digest of the raw override JSON (zero digest for no overrides).
func CSSKey(themeID uuid.UUID, overrides []byte) string {
	return fmt.Sprintf("%s:%x", themeID, xxhash.Sum64(overrides))
}

// Get retrieves a compiled stylesheet. Returns false on miss or when no
// client is configured.
func (cc *CSSCache) Get(ctx context.Context, key string) (string, bool) {
	if cc.client == nil {
		return "", false
	}
	val, err := cc.client.Get(ctx, cssKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("css cache get error", "key", key, "error", err)
		return "", false
	}
	slog.Debug("css cache hit", "key", key)
	return val, true
}

// Set stores a compiled stylesheet with the configured TTL.
func (cc *CSSCache) Set(ctx context.Context, key, css string) {
	if cc.client == nil {
		return
	}
	if err := cc.client.Set(ctx, cssKeyPrefix+key, css, cc.ttl).Err(); err != nil {
		slog.Warn("css cache set error", "key", key, "error", err)
	}
}

// InvalidateTheme removes every compiled variant of one theme. Called
// when a theme definition is re-registered.
func (cc *CSSCache) InvalidateTheme(ctx context.Context, themeID uuid.UUID) {
	deletePrefix(ctx, cc.client, fmt.Sprintf("%s%s:*", cssKeyPrefix, themeID))
}
