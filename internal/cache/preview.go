// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache for rendered preview HTML
// (L2). A preview is keyed by funnel, viewport and a hash of the
// customization document, so any edit naturally produces a fresh key and
// stale entries age out via TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"funnelpress/internal/models"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached previews.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 5 * time.Minute
)

// PreviewCache manages rendered preview HTML in Valkey.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey
// client. A nil client yields a cache whose operations are no-ops.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// PreviewKey builds the cache key for one render: funnel, viewport and a
// digest of the customization document.
func PreviewKey(funnelID uuid.UUID, viewport models.Viewport, doc *models.CustomizationState) string {
	var digest uint64
	if doc != nil {
		if raw, err := json.Marshal(doc); err == nil {
			digest = xxhash.Sum64(raw)
		}
	}
	return fmt.Sprintf("%s:%s:%x", funnelID, viewport, digest)
}

// Get retrieves cached preview HTML. Returns false on miss or when no
// client is configured.
func (pc *PreviewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if pc.client == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, previewKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "key", key)
	return val, true
}

// Set stores rendered preview HTML with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, key string, html []byte) {
	if pc.client == nil {
		return
	}
	if err := pc.client.Set(ctx, previewKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "key", key, "error", err)
	}
}

// InvalidateFunnel removes every cached preview of one funnel. Called
// when the funnel's content or customization document is saved.
func (pc *PreviewCache) InvalidateFunnel(ctx context.Context, funnelID uuid.UUID) {
	deletePrefix(ctx, pc.client, fmt.Sprintf("%s%s:*", previewKeyPrefix, funnelID))
}

// InvalidateAll removes all cached previews. Used when a template or
// theme changes, since any preview could be affected.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) {
	deletePrefix(ctx, pc.client, previewKeyPrefix+"*")
}

// deletePrefix scans for keys matching the pattern and deletes them in
// batches.
func deletePrefix(ctx context.Context, client *redis.Client, pattern string) {
	if client == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("cache scan error", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("cache bulk delete error", "pattern", pattern, "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
