package facetlist

import "github.com/kailas-cloud/facetlist/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound               = domain.ErrNotFound
	ErrAlreadyExists          = domain.ErrAlreadyExists
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrFacetNotFound          = domain.ErrFacetNotFound
	ErrListNotConfigured      = domain.ErrListNotConfigured
	ErrProcessorMisconfigured = domain.ErrProcessorMisconfigured
	ErrRevisionConflict       = domain.ErrRevisionConflict
)

// RevisionConflictError carries the current revision of an item whose
// preset filters were saved against a stale one. Use errors.As() to read it.
type RevisionConflictError = domain.RevisionConflictError
