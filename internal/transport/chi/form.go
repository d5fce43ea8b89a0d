package chi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	"github.com/kailas-cloud/facetlist/internal/logger"
	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
	"github.com/kailas-cloud/facetlist/internal/usecase/presetfilter"
)

// DefaultFormKey scopes the builder when the client does not name one.
const DefaultFormKey = "list"

// callbacks are the ajax callbacks that refresh only the builder wrapper.
var callbacks = map[string]struct{}{
	preset.TriggerSet:         {},
	preset.TriggerRemove:      {},
	presetfilter.CallbackEdit: {},
}

// formEnvelope is the part of an url-encoded round trip that is not a
// submitted value.
type formEnvelope struct {
	FormBuildID    string `schema:"form_build_id"`
	FormKey        string `schema:"form_key"`
	TriggerName    string `schema:"_triggering_element_name"`
	TriggerFormKey string `schema:"_triggering_element_form_key"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

var envelopeFields = map[string]struct{}{
	"form_build_id":                {},
	"form_key":                     {},
	"_triggering_element_name":     {},
	"_triggering_element_form_key": {},
}

// PresetFilterForm handles POST /api/v1/items/{id}/preset-filters/form.
// It renders the whole builder and honors a trigger sent in the body.
func (s *Server) PresetFilterForm(w http.ResponseWriter, r *http.Request, id gen.ItemID) {
	s.roundTrip(w, r, id, "")
}

// PresetFilterCallback handles POST /api/v1/items/{id}/preset-filters/form/{callback}.
// The callback name is the trigger and the reply holds only the builder wrapper.
func (s *Server) PresetFilterCallback(w http.ResponseWriter, r *http.Request, id gen.ItemID, callback string) {
	if _, ok := callbacks[callback]; !ok {
		writeError(w, http.StatusNotFound, gen.ErrorResponseCodeBadRequest, "unknown callback "+callback)
		return
	}
	s.roundTrip(w, r, id, callback)
}

func (s *Server) roundTrip(w http.ResponseWriter, r *http.Request, id, callback string) {
	ctx := r.Context()

	req, err := decodeFormRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	formKey := DefaultFormKey
	if req.FormKey != nil && *req.FormKey != "" {
		formKey = *req.FormKey
	}

	it, err := s.items.Get(ctx, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	src, available, err := s.items.Source(ctx, it)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	buildID := ""
	if req.FormBuildId != nil {
		buildID = *req.FormBuildId
	}
	storage := form.Storage{}
	if buildID == "" {
		buildID = s.forms.NewBuildID()
	} else if storage, err = s.forms.Load(ctx, buildID); err != nil {
		s.handleDomainError(w, err)
		return
	}

	trigger := formTriggerFromDTO(req.Trigger, formKey)
	if callback != "" {
		trigger = form.Trigger{Name: callback, FormKey: formKey}
	}
	state := form.NewState(url.Values(req.Values), trigger, storage)

	root := &form.Element{Type: form.TypeContainer}
	el, err := s.filters.BuildDefaultFilters(ctx, root, state, formKey, src, available, it.List().PresetFilters())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if el == nil {
		el = root
	}

	if err := s.forms.Save(ctx, buildID, state.Storage()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	current := preset.Set{}
	if _, err := state.Storage().Load(presetfilter.StorageKey(formKey), &current); err != nil {
		logger.FromContext(ctx).Warn("decode current filters", zap.Error(err))
	}

	if callback != "" {
		if wrapper := presetfilter.Wrapper(el, formKey); wrapper != nil {
			el = wrapper
		}
	}
	writeJSON(w, http.StatusOK, gen.FormResponse{
		FormBuildId: buildID,
		FormKey:     formKey,
		Element:     *el,
		Filters:     current,
	})
}

// decodeFormRequest reads a JSON or url-encoded round trip. An empty body
// is a first render.
func decodeFormRequest(r *http.Request) (gen.FormRequest, error) {
	var req gen.FormRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	var env formEnvelope
	if err := decoder.Decode(&env, r.PostForm); err != nil {
		return req, err
	}
	req.Values = make(map[string][]string, len(r.PostForm))
	for k, v := range r.PostForm {
		if _, ok := envelopeFields[k]; !ok {
			req.Values[k] = v
		}
	}
	if env.FormBuildID != "" {
		req.FormBuildId = &env.FormBuildID
	}
	if env.FormKey != "" {
		req.FormKey = &env.FormKey
	}
	if env.TriggerName != "" {
		req.Trigger = &gen.FormTrigger{Name: env.TriggerName}
		if env.TriggerFormKey != "" {
			req.Trigger.FormKey = &env.TriggerFormKey
		}
	}
	return req, nil
}
