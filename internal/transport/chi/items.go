package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
)

// CreateItem handles POST /api/v1/items.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateItemJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	title := ""
	if req.Title != nil {
		title = *req.Title
	}

	it, err := s.items.Create(r.Context(), req.EntityType, req.Bundle, title, listConfigFromDTO(req.List))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itemToDTO(it))
}

// ListItems handles GET /api/v1/items.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request, params gen.ListItemsParams) {
	limit := 0
	if params.Limit != nil {
		if *params.Limit < 0 {
			writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "limit must be non-negative")
			return
		}
		limit = *params.Limit
	}
	cursor := ""
	if params.Cursor != nil {
		cursor = *params.Cursor
	}

	items, next, err := s.items.List(r.Context(), cursor, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := gen.ItemListResponse{Items: make([]gen.Item, len(items)), HasMore: next != ""}
	if next != "" {
		resp.NextCursor = &next
	}
	for i, it := range items {
		resp.Items[i] = itemToDTO(it)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetItem handles GET /api/v1/items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request, id gen.ItemID) {
	it, err := s.items.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.Header().Set("ETag", strconv.Quote(strconv.Itoa(it.Revision())))
	writeJSON(w, http.StatusOK, itemToDTO(it))
}

// DeleteItem handles DELETE /api/v1/items/{id}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request, id gen.ItemID) {
	if err := s.items.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SavePresetFilters handles PUT /api/v1/items/{id}/preset-filters.
// A revision in the body wins over If-Match.
func (s *Server) SavePresetFilters(
	w http.ResponseWriter, r *http.Request, id gen.ItemID, params gen.SavePresetFiltersParams,
) {
	var req gen.SavePresetFiltersJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	revision := 0
	switch {
	case req.Revision != nil:
		revision = *req.Revision
	case params.IfMatch != nil:
		revision = revisionFromIfMatch(*params.IfMatch)
	}

	it, err := s.items.SavePresetFilters(r.Context(), id, req.Filters, revision)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.Header().Set("ETag", strconv.Quote(strconv.Itoa(it.Revision())))
	writeJSON(w, http.StatusOK, itemToDTO(it))
}

// PutBundle handles PUT /api/v1/bundles/{entity_type}/{bundle}.
func (s *Server) PutBundle(w http.ResponseWriter, r *http.Request, entityType string, bundleName string) {
	var req gen.PutBundleJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	b, err := s.items.PutBundle(r.Context(), entityType, bundleName, defaultSortFromDTO(req.DefaultSort))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundleToDTO(b))
}

// GetBundle handles GET /api/v1/bundles/{entity_type}/{bundle}.
func (s *Server) GetBundle(w http.ResponseWriter, r *http.Request, entityType string, bundleName string) {
	b, err := s.items.GetBundle(r.Context(), entityType, bundleName)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundleToDTO(b))
}

// revisionFromIfMatch reads an If-Match revision, 0 when malformed.
func revisionFromIfMatch(raw string) int {
	if unq, err := strconv.Unquote(raw); err == nil {
		raw = unq
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
