package item

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// MaxTitleLength is the maximum item title length.
const MaxTitleLength = 255

// ListConfig is the list attached to an item: which source it lists and the
// filters the editor pinned on it.
type ListConfig struct {
	sourceEntityType string
	sourceBundle     string
	presetFilters    preset.Set
}

// NewListConfig creates a list configuration. A nil set becomes empty.
func NewListConfig(entityType, bundle string, filters preset.Set) ListConfig {
	if filters == nil {
		filters = preset.Set{}
	}
	return ListConfig{sourceEntityType: entityType, sourceBundle: bundle, presetFilters: filters}
}

// SourceEntityType returns the entity type of the listed source.
func (c ListConfig) SourceEntityType() string { return c.sourceEntityType }

// SourceBundle returns the bundle of the listed source.
func (c ListConfig) SourceBundle() string { return c.sourceBundle }

// PresetFilters returns a copy of the pinned filters.
func (c ListConfig) PresetFilters() preset.Set {
	if c.presetFilters == nil {
		return preset.Set{}
	}
	return c.presetFilters.Clone()
}

// IsConfigured reports whether a source is selected.
func (c ListConfig) IsConfigured() bool {
	return c.sourceEntityType != "" && c.sourceBundle != ""
}

// WithPresetFilters returns a copy holding filters.
func (c ListConfig) WithPresetFilters(filters preset.Set) ListConfig {
	c.presetFilters = filters.Clone()
	return c
}

// Item is a content item that may carry a list.
type Item struct {
	id         string
	entityType string
	bundle     string
	title      string
	list       ListConfig
	createdAt  int64
	revision   int
}

// New validates and creates an Item with a fresh id.
func New(entityType, bundle, title string, list ListConfig) (Item, error) {
	if entityType == "" {
		return Item{}, fmt.Errorf("entity type is required")
	}
	if bundle == "" {
		return Item{}, fmt.Errorf("bundle is required")
	}
	if len(title) > MaxTitleLength {
		return Item{}, fmt.Errorf("title too long (max %d chars)", MaxTitleLength)
	}
	if (list.sourceEntityType == "") != (list.sourceBundle == "") {
		return Item{}, fmt.Errorf("list source needs both entity type and bundle")
	}
	return Item{
		id:         uuid.NewString(),
		entityType: entityType,
		bundle:     bundle,
		title:      title,
		list:       list,
		createdAt:  time.Now().UnixMilli(),
		revision:   1,
	}, nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(
	id, entityType, bundle, title string, list ListConfig,
	createdAt int64, revision int,
) Item {
	return Item{
		id:         id,
		entityType: entityType,
		bundle:     bundle,
		title:      title,
		list:       list,
		createdAt:  createdAt,
		revision:   revision,
	}
}

// ID returns the stable unique identifier.
func (i Item) ID() string { return i.id }

// EntityType returns the item's own entity type.
func (i Item) EntityType() string { return i.entityType }

// Bundle returns the item's own bundle.
func (i Item) Bundle() string { return i.bundle }

// Title returns the item title.
func (i Item) Title() string { return i.title }

// List returns the attached list configuration.
func (i Item) List() ListConfig { return i.list }

// CreatedAt returns the creation timestamp (unix millis).
func (i Item) CreatedAt() int64 { return i.createdAt }

// Revision returns the optimistic concurrency version.
func (i Item) Revision() int { return i.revision }

// WithPresetFilters returns the next revision of the item holding filters.
func (i Item) WithPresetFilters(filters preset.Set) Item {
	i.list = i.list.WithPresetFilters(filters)
	i.revision++
	return i
}
