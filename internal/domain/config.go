package domain

// KeyPrefix namespaces every key the service writes to the database.
const KeyPrefix = "facetlist:"

// ListConfig holds internal list execution settings, not exposed to clients.
type ListConfig struct {
	PageSize       int
	EditSampleSize int // rows sampled to offer filter options while editing
	FormCacheTTL   int // seconds
}

// DefaultListConfig returns the defaults used when nothing is configured.
func DefaultListConfig() ListConfig {
	return ListConfig{
		PageSize:       10,
		EditSampleSize: 1000,
		FormCacheTTL:   6 * 60 * 60,
	}
}
