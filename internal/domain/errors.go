package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput signals a request that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFacetNotFound signals a filter key that no facet of the list source exposes.
	ErrFacetNotFound = errors.New("facet not found")
	// ErrListNotConfigured signals an item without a usable list source.
	ErrListNotConfigured = errors.New("list not configured")
	// ErrProcessorMisconfigured signals a processor that claims the build stage
	// without implementing the build capability. Never recovered from.
	ErrProcessorMisconfigured = errors.New("processor misconfigured")
	// ErrRevisionConflict signals an optimistic locking conflict.
	ErrRevisionConflict = errors.New("revision conflict")
)

// ProcessorError wraps ErrProcessorMisconfigured with the offending facet and processor.
type ProcessorError struct {
	FacetID     string
	ProcessorID string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("%s: processor %q on facet %q declares build stage without build capability",
		ErrProcessorMisconfigured.Error(), e.ProcessorID, e.FacetID)
}

func (e *ProcessorError) Unwrap() error { return ErrProcessorMisconfigured }

// NewProcessorError creates a misconfigured processor error.
func NewProcessorError(facetID, processorID string) error {
	return &ProcessorError{FacetID: facetID, ProcessorID: processorID}
}

// RevisionConflictError wraps ErrRevisionConflict with the current resource revision.
type RevisionConflictError struct {
	CurrentRevision int
}

func (e *RevisionConflictError) Error() string {
	return fmt.Sprintf("%s: current revision is %d", ErrRevisionConflict.Error(), e.CurrentRevision)
}

func (e *RevisionConflictError) Unwrap() error { return ErrRevisionConflict }

// NewRevisionConflict creates a revision conflict error.
func NewRevisionConflict(currentRevision int) error {
	return &RevisionConflictError{CurrentRevision: currentRevision}
}
