package bundle

import (
	"fmt"

	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
)

// DefaultSort is the bundle-level sort applied to lists of its items.
type DefaultSort struct {
	Field     string
	Direction listsource.Direction
}

// Bundle is the metadata of an (entity type, bundle) pair.
type Bundle struct {
	entityType  string
	name        string
	defaultSort *DefaultSort
}

// New validates and creates a Bundle. sort may be nil.
func New(entityType, name string, sort *DefaultSort) (Bundle, error) {
	if entityType == "" {
		return Bundle{}, fmt.Errorf("entity type is required")
	}
	if name == "" {
		return Bundle{}, fmt.Errorf("bundle name is required")
	}
	if sort != nil {
		if sort.Field == "" {
			return Bundle{}, fmt.Errorf("default sort field is required")
		}
		dir, err := listsource.ParseDirection(string(sort.Direction))
		if err != nil {
			return Bundle{}, err
		}
		sort = &DefaultSort{Field: sort.Field, Direction: dir}
	}
	return Bundle{entityType: entityType, name: name, defaultSort: sort}, nil
}

// Reconstruct creates a Bundle without validation (storage hydration).
func Reconstruct(entityType, name string, sort *DefaultSort) Bundle {
	return Bundle{entityType: entityType, name: name, defaultSort: sort}
}

// EntityType returns the entity type the bundle belongs to.
func (b Bundle) EntityType() string { return b.entityType }

// Name returns the bundle name.
func (b Bundle) Name() string { return b.name }

// DefaultSort returns the configured sort, nil when unset.
func (b Bundle) DefaultSort() *DefaultSort { return b.defaultSort }

// Sort translates the default sort into the single-entry mapping the query
// builder expects. Empty when unset.
func (b Bundle) Sort() listsource.Sort {
	if b.defaultSort == nil || b.defaultSort.Field == "" {
		return listsource.Sort{}
	}
	return listsource.Sort{b.defaultSort.Field: b.defaultSort.Direction}
}
