package db

import (
	"strings"
	"testing"
)

func TestIndexBuilder_ListSource(t *testing.T) {
	idx := NewIndex("facetlist:idx:article_list").
		Prefix("facetlist:doc:node:article:").
		Tag("status").
		TagWithOpts("tags", ",", false).
		Numeric("created").Sortable().
		Text("title").Sortable().
		MustBuild()

	if idx.StorageType != StorageHash {
		t.Errorf("storage = %q, want HASH", idx.StorageType)
	}
	if len(idx.Fields) != 4 {
		t.Fatalf("fields count = %d, want 4", len(idx.Fields))
	}
	if idx.Fields[0].Sortable || idx.Fields[1].Sortable {
		t.Error("tag fields must not be sortable")
	}
	if !idx.Fields[2].Sortable || idx.Fields[2].Type != IndexFieldNumeric {
		t.Errorf("field[2] = %+v, want sortable NUMERIC", idx.Fields[2])
	}
	if idx.Fields[1].TagSeparator != "," {
		t.Errorf("separator = %q, want ,", idx.Fields[1].TagSeparator)
	}
}

func TestIndexBuilder_SortableWithoutField(t *testing.T) {
	b := NewIndex("idx").Sortable()
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for index without fields")
	}
}

func TestIndexBuilder_MultiplePrefixes(t *testing.T) {
	idx := NewIndex("multi-idx").
		Prefix("a:", "b:", "c:").
		Tag("x").
		MustBuild()

	if len(idx.Prefixes) != 3 {
		t.Errorf("prefix count = %d, want 3", len(idx.Prefixes))
	}
}

func TestIndexBuilder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder func() (*IndexDefinition, error)
		wantErr string
	}{
		{
			name: "empty name",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("").Tag("x").Build()
			},
			wantErr: "index name is required",
		},
		{
			name: "no fields",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").Build()
			},
			wantErr: "at least one field",
		},
		{
			name: "sortable tag",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").Tag("status").Sortable().Build()
			},
			wantErr: "cannot be sortable",
		},
		{
			name: "invalid characters",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx with spaces").Tag("x").Build()
			},
			wantErr: "invalid characters",
		},
		{
			name: "duplicate field",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").Tag("x").Numeric("x").Build()
			},
			wantErr: "duplicate field name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestIndexBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewIndex("").MustBuild()
}

func TestIndexDefinition_String(t *testing.T) {
	idx := NewIndex("my-idx").
		Prefix("doc:").
		Tag("cat").
		Numeric("created").Sortable().
		MustBuild()

	want := "FT.CREATE my-idx ON HASH PREFIX doc: SCHEMA cat TAG created NUMERIC SORTABLE"
	if got := idx.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIndexBuilder_Alias(t *testing.T) {
	idx := &IndexDefinition{
		Name:     "alias-idx",
		Prefixes: []string{"a:"},
		Fields: []IndexField{
			{Name: "field_created", Alias: "created", Type: IndexFieldNumeric},
			{Name: "created", Type: IndexFieldNumeric},
		},
	}

	if err := idx.Validate(); err == nil {
		t.Fatal("expected alias to collide with field name")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	for s, want := range map[string]bool{
		"facetlist:idx:articles": true,
		"a-b_c":                  true,
		"":                       false,
		"has space":              false,
		"semi;colon":             false,
	} {
		if got := IsValidIdentifier(s); got != want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", s, got, want)
		}
	}
}
