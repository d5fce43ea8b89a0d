package item

import (
	"encoding/json"
	"fmt"
	"strconv"

	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// itemToHash converts a domain Item to a map for HSET.
func itemToHash(it domitem.Item) (map[string]string, error) {
	filtersJSON, err := json.Marshal(it.List().PresetFilters())
	if err != nil {
		return nil, fmt.Errorf("marshal preset filters: %w", err)
	}
	return map[string]string{
		"id":                 it.ID(),
		"entity_type":        it.EntityType(),
		"bundle":             it.Bundle(),
		"title":              it.Title(),
		"source_entity_type": it.List().SourceEntityType(),
		"source_bundle":      it.List().SourceBundle(),
		"preset_filters":     string(filtersJSON),
		"created_at":         strconv.FormatInt(it.CreatedAt(), 10),
		"revision":           strconv.Itoa(it.Revision()),
	}, nil
}

// itemFromHash hydrates a domain Item from an HGETALL result map.
func itemFromHash(m map[string]string) (domitem.Item, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return domitem.Item{}, fmt.Errorf("invalid created_at: %w", err)
	}

	filters := preset.Set{}
	if raw := m["preset_filters"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			return domitem.Item{}, fmt.Errorf("unmarshal preset filters: %w", err)
		}
	}

	revision := 1
	if revStr, ok := m["revision"]; ok && revStr != "" {
		if parsed, err := strconv.Atoi(revStr); err == nil {
			revision = parsed
		}
	}

	list := domitem.NewListConfig(m["source_entity_type"], m["source_bundle"], filters)
	return domitem.Reconstruct(m["id"], m["entity_type"], m["bundle"], m["title"], list, createdAt, revision), nil
}
