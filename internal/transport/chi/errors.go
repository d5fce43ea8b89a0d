package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain"
	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		revisionConflictHandler,
		sentinelHandler(domain.ErrProcessorMisconfigured,
			http.StatusInternalServerError, gen.ErrorResponseCodeProcessorMisconfigured),
		sentinelHandler(domain.ErrFacetNotFound, http.StatusBadRequest, gen.ErrorResponseCodeFacetNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, gen.ErrorResponseCodeItemNotFound),
		sentinelHandler(domain.ErrAlreadyExists,
			http.StatusConflict, gen.ErrorResponseCodeItemAlreadyExists),
		sentinelHandler(domain.ErrListNotConfigured,
			http.StatusUnprocessableEntity, gen.ErrorResponseCodeListNotConfigured),
		sentinelHandler(domain.ErrInvalidInput,
			http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
// Validation errors carry their own text, it never contains backend details.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrProcessorMisconfigured,
		domain.ErrFacetNotFound,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrRevisionConflict,
		domain.ErrListNotConfigured,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// revisionConflictHandler handles ErrRevisionConflict with ETag header and extra fields.
func revisionConflictHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrRevisionConflict) {
		return false
	}
	var rce *domain.RevisionConflictError
	if errors.As(err, &rce) {
		w.Header().Set("ETag", strconv.Quote(strconv.Itoa(rce.CurrentRevision)))
		writeJSON(w, http.StatusConflict, gen.RevisionConflictResponse{
			Code:            gen.RevisionConflictResponseCodeRevisionConflict,
			Message:         msg,
			CurrentRevision: rce.CurrentRevision,
		})
		return true
	}
	writeError(w, http.StatusConflict, gen.ErrorResponseCodeRevisionConflict, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	if errors.Is(err, domain.ErrProcessorMisconfigured) {
		s.logger.Error("misconfigured facet processor", zap.Error(err))
	} else {
		s.logger.Warn("domain error", zap.Error(err))
	}
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}
