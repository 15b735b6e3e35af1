package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"psy-match/internal/domain"
	"psy-match/internal/metrics"
)

// RankingCache guarda rankings ya calculados por clave de perfil.
// Las implementaciones son fail-open: un error equivale a un miss.
type RankingCache interface {
	Get(ctx context.Context, key string) ([]domain.SpecialistMatch, bool)
	Set(ctx context.Context, key string, matches []domain.SpecialistMatch)
}

const (
	defaultRankingCacheTTL = time.Minute
	rankingCachePrefix     = "rank:"
	redisCacheTimeout      = 500 * time.Millisecond
)

type memoryRankingCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	items     map[string]memoryRankingEntry
	lastSweep time.Time
}

type memoryRankingEntry struct {
	matches   []domain.SpecialistMatch
	expiresAt time.Time
}

// NewMemoryRankingCache es el cache en proceso usado cuando no hay Redis.
func NewMemoryRankingCache(ttl time.Duration) RankingCache {
	if ttl <= 0 {
		ttl = defaultRankingCacheTTL
	}
	return &memoryRankingCache{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]memoryRankingEntry),
	}
}

func (c *memoryRankingCache) Get(_ context.Context, key string) ([]domain.SpecialistMatch, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return cloneMatches(e.matches), true
}

func (c *memoryRankingCache) Set(_ context.Context, key string, matches []domain.SpecialistMatch) {
	if strings.TrimSpace(key) == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.sweepLocked(now)
	c.items[key] = memoryRankingEntry{
		matches:   cloneMatches(matches),
		expiresAt: now.Add(c.ttl),
	}
}

// sweepLocked borra las entradas vencidas, como mucho una vez por TTL.
// Asi el cache queda acotado a lo escrito en las ultimas dos ventanas.
func (c *memoryRankingCache) sweepLocked(now time.Time) {
	if now.Sub(c.lastSweep) < c.ttl {
		return
	}
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
	c.lastSweep = now
}

// cloneMatches copia tambien los slices y mapas de cada match.
func cloneMatches(in []domain.SpecialistMatch) []domain.SpecialistMatch {
	out := make([]domain.SpecialistMatch, len(in))
	copy(out, in)
	for i := range out {
		if in[i].Specializations != nil {
			out[i].Specializations = append([]string(nil), in[i].Specializations...)
		}
		if in[i].Criteria != nil {
			criteria := make(map[string]float64, len(in[i].Criteria))
			for k, v := range in[i].Criteria {
				criteria[k] = v
			}
			out[i].Criteria = criteria
		}
	}
	return out
}

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisRankingCache struct {
	client  redisKVClient
	ttl     time.Duration
	prefix  string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewRedisRankingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) RankingCache {
	if client == nil {
		return nil
	}
	return newRedisRankingCache(client, ttl, logger, m)
}

func newRedisRankingCache(client redisKVClient, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *redisRankingCache {
	if ttl <= 0 {
		ttl = defaultRankingCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisRankingCache{
		client:  client,
		ttl:     ttl,
		prefix:  rankingCachePrefix,
		logger:  logger,
		metrics: m,
	}
}

func (c *redisRankingCache) Get(ctx context.Context, key string) ([]domain.SpecialistMatch, bool) {
	if c == nil || c.client == nil || strings.TrimSpace(key) == "" {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("ranking cache get failed", zap.String("key", key), zap.Error(err))
		c.metrics.ObserveCache(metrics.CacheError)
		return nil, false
	}

	var matches []domain.SpecialistMatch
	if err := json.Unmarshal(raw, &matches); err != nil {
		c.logger.Warn("ranking cache entry corrupted", zap.String("key", key), zap.Error(err))
		c.metrics.ObserveCache(metrics.CacheError)
		return nil, false
	}
	return matches, true
}

func (c *redisRankingCache) Set(ctx context.Context, key string, matches []domain.SpecialistMatch) {
	if c == nil || c.client == nil || strings.TrimSpace(key) == "" {
		return
	}
	payload, err := json.Marshal(matches)
	if err != nil {
		c.logger.Warn("ranking cache encode failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()
	if err := c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("ranking cache set failed", zap.String("key", key), zap.Error(err))
		c.metrics.ObserveCache(metrics.CacheError)
	}
}
