package facetlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/facetlist/internal/db"
	dbRedis "github.com/kailas-cloud/facetlist/internal/db/redis"
	bundlerepo "github.com/kailas-cloud/facetlist/internal/repository/bundle"
	itemrepo "github.com/kailas-cloud/facetlist/internal/repository/item"
	searchrepo "github.com/kailas-cloud/facetlist/internal/repository/search"
	facetuc "github.com/kailas-cloud/facetlist/internal/usecase/facet"
	healthuc "github.com/kailas-cloud/facetlist/internal/usecase/health"
	itemuc "github.com/kailas-cloud/facetlist/internal/usecase/item"
	"github.com/kailas-cloud/facetlist/internal/usecase/listexec"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the facetlist SDK entry point.
type Client struct {
	store     db.Store
	itemSvc   itemUseCase
	lists     listUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client, connects to the database and creates the search index
// of every registered source that does not have one yet.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("facetlist: database address required (use WithValkey or WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("facetlist: database not ready: %w", err)
	}

	c, err := wireClient(ctx, store, cfg, obs)
	if err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("facetlist: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("facetlist: unknown driver %q", cfg.driver)
	}
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	facets, err := facetuc.New(facetDefinitions(cfg.sources))
	if err != nil {
		return nil, fmt.Errorf("facetlist: %w", err)
	}
	searchRepo, err := searchrepo.New(store, sourceDefinitions(cfg.sources))
	if err != nil {
		return nil, fmt.Errorf("facetlist: %w", err)
	}
	ensureIndexes := searchRepo.EnsureIndexes
	if cfg.rebuildIndexes {
		ensureIndexes = searchRepo.RebuildIndexes
	}
	if err := ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("facetlist: %w", err)
	}

	bundleRepo := bundlerepo.New(store)
	itemSvc := itemuc.New(itemrepo.New(store), bundleRepo, searchRepo, facets)
	lists := listexec.New(searchRepo, bundleRepo,
		listexec.WithPageSize(cfg.pageSize),
		listexec.WithQueryAlterer(facets),
	)

	return &Client{
		store:     store,
		itemSvc:   itemSvc,
		lists:     lists,
		healthSvc: healthuc.New(store, store, searchRepo.IndexNames()...),
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Items returns the item service.
func (c *Client) Items() *ItemService {
	return &ItemService{items: c.itemSvc, lists: c.lists, obs: c.obs}
}

// Bundles returns the bundle metadata service.
func (c *Client) Bundles() *BundleService {
	return &BundleService{items: c.itemSvc, obs: c.obs}
}
