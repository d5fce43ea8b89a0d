package facet

// ProcessorDefinition configures one processor attached to a facet.
type ProcessorDefinition struct {
	ID     string
	Stages []string // overrides the processor's own stages when non-empty
}

// Definition describes a facet of a source; facets are rebuilt from it on every pass.
type Definition struct {
	ID         string
	Label      string
	Field      string
	Widget     string
	Labels     map[string]string
	Processors []ProcessorDefinition
}
