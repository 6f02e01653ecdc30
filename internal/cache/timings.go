package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
)

const (
	DefaultPrefix = "athan:timings:"
	DefaultTTL    = 6 * time.Hour
)

// TimingsCache decorates an aladhan.Fetcher with a Redis lookaside cache.
// Redis failures are logged and the request falls through to next.
type TimingsCache struct {
	client redis.UniversalClient
	next   aladhan.Fetcher
	ttl    time.Duration
	prefix string
}

var _ aladhan.Fetcher = (*TimingsCache)(nil)

func NewTimingsCache(client redis.UniversalClient, next aladhan.Fetcher, ttl time.Duration) *TimingsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TimingsCache{
		client: client,
		next:   next,
		ttl:    ttl,
		prefix: DefaultPrefix,
	}
}

func (c *TimingsCache) FetchByCity(ctx context.Context, date time.Time, q aladhan.CityQuery) (*aladhan.Response, error) {
	key := c.key(date, q)

	if resp, ok := c.get(ctx, key); ok {
		return resp, nil
	}

	resp, err := c.next.FetchByCity(ctx, date, q)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, resp)
	return resp, nil
}

func (c *TimingsCache) key(date time.Time, q aladhan.CityQuery) string {
	return c.prefix + strings.Join([]string{
		date.Format("2006-01-02"),
		strings.ToLower(q.Country),
		strings.ToLower(q.City),
		fmt.Sprint(q.Method),
		fmt.Sprint(q.School),
		fmt.Sprint(q.LatitudeAdjustment),
		q.Tune,
	}, ":")
}

func (c *TimingsCache) get(ctx context.Context, key string) (*aladhan.Response, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timings cache read failed")
		return nil, false
	}

	var resp aladhan.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return nil, false
	}
	return &resp, true
}

func (c *TimingsCache) set(ctx context.Context, key string, resp *aladhan.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timings cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timings cache write failed")
	}
}
