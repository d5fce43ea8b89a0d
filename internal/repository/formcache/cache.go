package formcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/db"
	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
)

var cacheKeyPrefix = domain.KeyPrefix + "form:"

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 6 * time.Hour

// store is the consumer interface for the form cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Cache keeps the ephemeral storage of in-progress forms between round trips,
// keyed by form build id.
type Cache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a form cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(s store, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: s, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// NewBuildID returns the id of a freshly rendered form.
func (c *Cache) NewBuildID() string {
	return uuid.NewString()
}

// Load returns the storage of buildID. An unknown or expired build yields an
// empty storage, so the form restarts from the committed set.
func (c *Cache) Load(ctx context.Context, buildID string) (form.Storage, error) {
	key, err := cacheKey(buildID)
	if err != nil {
		return nil, err
	}

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			c.incCache("miss")
			return form.Storage{}, nil
		}
		return nil, fmt.Errorf("load form %s: %w", buildID, err)
	}
	c.incCache("hit")

	storage := form.Storage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &storage); err != nil {
			c.logger.Warn("Failed to parse cached form storage", zap.String("build_id", buildID), zap.Error(err))
			return form.Storage{}, nil
		}
	}

	if err := c.store.Expire(ctx, key, c.ttl); err != nil {
		c.logger.Warn("Failed to refresh form storage TTL", zap.String("build_id", buildID), zap.Error(err))
	}
	return storage, nil
}

// Save stores the storage of buildID for the configured TTL.
func (c *Cache) Save(ctx context.Context, buildID string, storage form.Storage) error {
	key, err := cacheKey(buildID)
	if err != nil {
		return err
	}
	if storage == nil {
		storage = form.Storage{}
	}
	data, err := json.Marshal(storage)
	if err != nil {
		return fmt.Errorf("encode form storage: %w", err)
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		return fmt.Errorf("save form %s: %w", buildID, err)
	}
	return nil
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey rejects build ids that are not UUIDs so clients cannot address other keys.
func cacheKey(buildID string) (string, error) {
	if _, err := uuid.Parse(buildID); err != nil {
		return "", fmt.Errorf("%w: invalid form build id", domain.ErrInvalidInput)
	}
	return cacheKeyPrefix + buildID, nil
}
