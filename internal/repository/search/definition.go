package search

import (
	"fmt"

	"github.com/kailas-cloud/facetlist/internal/db"
	"github.com/kailas-cloud/facetlist/internal/domain"
)

// FieldType is the index type of a source field.
type FieldType string

const (
	// FieldTag is an exact-match field; multiple values are comma separated.
	FieldTag FieldType = "tag"
	// FieldNumeric is a numeric field, dates are stored as unix seconds.
	FieldNumeric FieldType = "numeric"
	// FieldText is a full-text field.
	FieldText FieldType = "text"
)

// Field is one indexed hash field of a source.
type Field struct {
	Name     string
	Type     FieldType
	Sortable bool
}

// FacetField binds a facet id to the field it filters.
type FacetField struct {
	Field string
	Range bool // date range facet over a numeric field
}

// SourceDefinition describes a list source backed by an FT index over hashes.
type SourceDefinition struct {
	SearchID   string
	EntityType string
	Bundle     string
	Prefix     string // key prefix of the indexed hashes; derived when empty
	Fields     []Field
	Facets     map[string]FacetField
}

// IndexName returns the FT index of the source.
func (d SourceDefinition) IndexName() string {
	return fmt.Sprintf("%s%s:idx", domain.KeyPrefix, d.SearchID)
}

// KeyPrefix returns the key prefix of the indexed hashes.
func (d SourceDefinition) KeyPrefix() string {
	if d.Prefix != "" {
		return d.Prefix
	}
	return fmt.Sprintf("%sentity:%s:%s:", domain.KeyPrefix, d.EntityType, d.Bundle)
}

func (d SourceDefinition) validate() error {
	if d.SearchID == "" {
		return fmt.Errorf("source search id is required")
	}
	if !db.IsValidIdentifier(d.SearchID) {
		return fmt.Errorf("source %q: search id contains invalid characters", d.SearchID)
	}
	if d.EntityType == "" || d.Bundle == "" {
		return fmt.Errorf("source %s: entity type and bundle are required", d.SearchID)
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("source %s: at least one field is required", d.SearchID)
	}

	types := make(map[string]FieldType, len(d.Fields))
	for _, f := range d.Fields {
		types[f.Name] = f.Type
	}
	for id, ff := range d.Facets {
		typ, ok := types[ff.Field]
		if !ok {
			return fmt.Errorf("source %s facet %s: unknown field %q", d.SearchID, id, ff.Field)
		}
		if ff.Range && typ != FieldNumeric {
			return fmt.Errorf("source %s facet %s: range facets need a numeric field", d.SearchID, id)
		}
		if !ff.Range && typ != FieldTag {
			return fmt.Errorf("source %s facet %s: value facets need a tag field", d.SearchID, id)
		}
	}
	return nil
}

// fieldNames lists the hash fields returned with every row, in definition order.
func (d SourceDefinition) fieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// index builds the FT.CREATE definition of the source.
func (d SourceDefinition) index() (*db.IndexDefinition, error) {
	b := db.NewIndex(d.IndexName()).Prefix(d.KeyPrefix())
	for _, f := range d.Fields {
		switch f.Type {
		case FieldTag:
			b.TagWithOpts(f.Name, ",", false)
		case FieldNumeric:
			b.Numeric(f.Name)
		case FieldText:
			b.Text(f.Name)
		default:
			return nil, fmt.Errorf("field %s: unknown type %q", f.Name, f.Type)
		}
		if f.Sortable {
			b.Sortable()
		}
	}
	return b.Build()
}
