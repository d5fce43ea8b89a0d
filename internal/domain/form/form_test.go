package form

import (
	"net/url"
	"testing"
)

func TestElement_Find(t *testing.T) {
	root := &Element{Type: TypeContainer}
	wrapper := root.Add(&Element{Type: TypeFieldset, Key: "preset"})
	wrapper.Add(&Element{Type: TypeSelect, Key: "add_new"})

	if got := root.Find("preset", "add_new"); got == nil || got.Type != TypeSelect {
		t.Errorf("Find() = %+v", got)
	}
	if got := root.Find("preset", "missing", "deeper"); got != nil {
		t.Errorf("Find() on missing path = %+v, want nil", got)
	}
	var nilEl *Element
	if nilEl.Child("x") != nil {
		t.Error("nil element must have no children")
	}
}

func TestName(t *testing.T) {
	if got := Name("list", "preset", "status"); got != "list.preset.status" {
		t.Errorf("Name() = %q", got)
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	s := Storage{}
	if err := s.Put("filters", map[string][]string{"tags": {"go"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got map[string][]string
	ok, err := s.Load("filters", &got)
	if err != nil || !ok {
		t.Fatalf("load = %v, %v", ok, err)
	}
	if got["tags"][0] != "go" {
		t.Errorf("loaded %v", got)
	}

	if ok, err := s.Load("missing", &got); ok || err != nil {
		t.Errorf("load missing = %v, %v", ok, err)
	}

	s["broken"] = []byte("{")
	if _, err := s.Load("broken", &got); err == nil {
		t.Error("expected decode error")
	}
}

func TestNewState(t *testing.T) {
	st := NewState(nil, Trigger{Name: "set-default-filter", FormKey: "list"}, nil)
	if st.Storage() == nil {
		t.Fatal("storage must not be nil")
	}
	if st.Value("x") != "" || st.Values("x") != nil {
		t.Error("empty state must have no values")
	}
	if st.Trigger().FormKey != "list" {
		t.Errorf("trigger = %+v", st.Trigger())
	}

	st = NewState(url.Values{"tags": {"go", "redis"}}, Trigger{}, Storage{})
	if st.Value("tags") != "go" || len(st.Values("tags")) != 2 {
		t.Errorf("values = %v", st.Values("tags"))
	}
}
