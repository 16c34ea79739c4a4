package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// rawResponseTTL bounds how long an unparsed completion response is kept for
// replay after a persistence failure.
const rawResponseTTL = 24 * time.Hour

// AnalysisCache stores raw completion responses in Redis keyed by request
// fingerprint. A completion call is paid for once: if persistence fails, the
// next identical request replays the cached text instead of calling the
// model again.
type AnalysisCache struct {
	redis  *redis.Client
	logger *slog.Logger
}

// NewAnalysisCache creates an AnalysisCache backed by the given client.
func NewAnalysisCache(client *redis.Client, logger *slog.Logger) *AnalysisCache {
	return &AnalysisCache{redis: client, logger: logger}
}

// Fingerprint derives the cache key for an analysis request from the exact
// prompt and image payload.
func Fingerprint(prompt, imageBase64 string) string {
	h := sha256.New()
	h.Write([]byte(prompt))
	h.Write([]byte{0})
	h.Write([]byte(imageBase64))
	return "analysis:raw:" + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached raw response for key, if any.
func (c *AnalysisCache) Get(ctx context.Context, key string) (string, bool) {
	raw, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("analysis cache read failed", "err", err)
		}
		return "", false
	}
	return raw, true
}

// Set stores the raw response for key.
func (c *AnalysisCache) Set(ctx context.Context, key, raw string) {
	if err := c.redis.Set(ctx, key, raw, rawResponseTTL).Err(); err != nil {
		c.logger.Warn("analysis cache write failed", "err", err)
	}
}

// Delete evicts key once its record has been persisted.
func (c *AnalysisCache) Delete(ctx context.Context, key string) {
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("analysis cache delete failed", "err", err)
	}
}
