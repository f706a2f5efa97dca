// Package cache keeps fetched Al Adhan days in Redis so restarts and
// refreshes within a day do not hit the API again.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/five82/prayerclock/internal/aladhan"
)

const (
	// DefaultTTL bounds how long a fetched day is served from cache.
	DefaultTTL = 24 * time.Hour

	keyPrefix = "prayerclock:day:"
)

// Config contains cache configuration.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration

	// DisableOnError turns the cache off after the first Redis failure.
	DisableOnError bool
}

// Cache is a Redis-backed day cache. A nil or disabled Cache is valid and
// behaves as permanently empty.
type Cache struct {
	client *redis.Client
	logger zerolog.Logger
	config Config

	mu       sync.RWMutex
	disabled bool
}

// New connects to Redis. An empty address or a failed ping returns a
// disabled cache rather than an error.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) *Cache {
	logger = logger.With().Str("component", "cache").Logger()
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		logger.Debug().Msg("no redis address configured, running without cache")
		return &Cache{logger: logger, config: cfg, disabled: true}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unavailable, running without cache")
		_ = client.Close()
		return &Cache{logger: logger, config: cfg, disabled: true}
	}

	logger.Info().Str("addr", cfg.Addr).Msg("redis cache initialized")
	return &Cache{client: client, logger: logger, config: cfg}
}

// Key builds the cache key for a day and location.
func Key(q aladhan.Query) string {
	return keyPrefix + strings.Join([]string{
		q.Date.Format("2006-01-02"),
		normalize(q.Country),
		normalize(q.City),
		strconv.Itoa(q.Method),
	}, ":")
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// IsAvailable reports whether the cache is operational.
func (c *Cache) IsAvailable() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.disabled && c.client != nil
}

// Get returns the cached day for q. A miss, a disabled cache and a corrupt
// entry all report false.
func (c *Cache) Get(ctx context.Context, q aladhan.Query) (*aladhan.Day, bool) {
	if !c.IsAvailable() {
		return nil, false
	}
	key := Key(q)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.handleError(err, "get")
		return nil, false
	}
	var day aladhan.Day
	if err := json.Unmarshal(data, &day); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		return nil, false
	}
	return &day, true
}

// Set stores day under q with the configured TTL.
func (c *Cache) Set(ctx context.Context, q aladhan.Query, day *aladhan.Day) error {
	if !c.IsAvailable() || day == nil {
		return nil
	}
	data, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, Key(q), data, c.config.TTL).Err(); err != nil {
		c.handleError(err, "set")
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Cache) handleError(err error, operation string) {
	c.logger.Debug().Err(err).Str("operation", operation).Msg("cache operation failed")
	if !c.config.DisableOnError {
		return
	}
	c.mu.Lock()
	c.disabled = true
	c.mu.Unlock()
	c.logger.Warn().Msg("disabling cache due to redis error")
}
