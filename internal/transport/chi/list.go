package chi

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	"github.com/kailas-cloud/facetlist/internal/logger"
	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
)

// multiValueSeparator splits several values of one facet in a filter parameter.
const multiValueSeparator = "||"

// ExecuteList handles GET /api/v1/items/{id}/list. Rows and pager are both read
// through the list executor; the request memo keeps it to one backend query.
func (s *Server) ExecuteList(w http.ResponseWriter, r *http.Request, id gen.ItemID, params gen.ExecuteListParams) {
	page := 0
	if params.Page != nil {
		page = *params.Page
	}
	if page < 0 {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "page must be non-negative")
		return
	}

	live := parseFilters(r.Context(), params.F)
	ctx := execution.NewContextWithRequest(r.Context(), execution.Request{Page: page, Filters: live})
	r = r.WithContext(ctx)

	it, err := s.items.Get(ctx, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, ok, err := s.listRows(r, it, live)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, gen.ErrorResponseCodeListNotConfigured, "item has no list")
		return
	}
	pager, _, err := s.listPager(r, it)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	resp.Pager = pager
	writeJSON(w, http.StatusOK, resp)
}

// CountList handles GET /api/v1/items/{id}/list/count.
func (s *Server) CountList(w http.ResponseWriter, r *http.Request, id gen.ItemID, params gen.CountListParams) {
	ctx := execution.NewContextWithRequest(r.Context(), execution.Request{
		Filters: parseFilters(r.Context(), params.F),
	})

	it, err := s.items.Get(ctx, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	total, ok, err := s.lists.CountList(ctx, it)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, gen.ErrorResponseCodeListNotConfigured, "item has no list")
		return
	}
	writeJSON(w, http.StatusOK, gen.ListCountResponse{Total: total})
}

func (s *Server) listRows(r *http.Request, it domitem.Item, live preset.Set) (gen.ListResponse, bool, error) {
	res, ok, err := s.lists.ExecuteList(r.Context(), it)
	if err != nil || !ok {
		return gen.ListResponse{}, ok, err
	}
	resp := listResultToDTO(res)
	if s.facets != nil {
		controls, active, err := s.facets.Controls(r.Context(), res, live)
		if err != nil {
			return gen.ListResponse{}, false, err
		}
		resp.Facets = elementsToDTO(controls)
		if len(active) > 0 {
			resp.ActiveFilters = active
		}
	}
	return resp, true, nil
}

func (s *Server) listPager(r *http.Request, it domitem.Item) (gen.Pager, bool, error) {
	res, ok, err := s.lists.ExecuteList(r.Context(), it)
	if err != nil || !ok {
		return gen.Pager{}, ok, err
	}
	return pagerToDTO(res.Pager()), true, nil
}

// parseFilters turns "key:v1||v2" parameters into a set. Malformed entries are skipped.
func parseFilters(ctx context.Context, raw *gen.Filter) preset.Set {
	out := preset.Set{}
	if raw == nil {
		return out
	}
	for _, f := range *raw {
		key, values, ok := strings.Cut(f, ":")
		if !ok || key == "" || values == "" {
			logger.FromContext(ctx).Debug("skip malformed list filter", zap.String("filter", f))
			continue
		}
		for _, v := range strings.Split(values, multiValueSeparator) {
			if v != "" {
				out[key] = append(out[key], v)
			}
		}
	}
	return out
}
