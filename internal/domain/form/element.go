// Package form holds the minimal render tree and round-trip state exchanged
// with the UI layer.
package form

import "strings"

// Type is the kind of a rendered element.
type Type string

// Element types.
const (
	TypeContainer  Type = "container"
	TypeFieldset   Type = "fieldset"
	TypeHidden     Type = "hidden"
	TypeTable      Type = "table"
	TypeSelect     Type = "select"
	TypeCheckboxes Type = "checkboxes"
	TypeDate       Type = "date"
	TypeSubmit     Type = "submit"
	TypeMarkup     Type = "markup"
)

// Option is one choice of a select or checkboxes element.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

// Ajax binds an element to a round trip that refreshes another element.
type Ajax struct {
	Callback string `json:"callback"`
	Wrapper  string `json:"wrapper"`
	Event    string `json:"event,omitempty"`
}

// Element is a node of the render tree.
type Element struct {
	Type     Type       `json:"type"`
	Key      string     `json:"key,omitempty"`
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name,omitempty"`
	Title    string     `json:"title,omitempty"`
	Value    []string   `json:"value,omitempty"`
	Options  []Option   `json:"options,omitempty"`
	Header   []string   `json:"header,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Empty    string     `json:"empty,omitempty"`
	Ajax     *Ajax      `json:"ajax,omitempty"`
	Children []*Element `json:"children,omitempty"`
}

// Add appends child and returns it.
func (e *Element) Add(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Child returns the direct child with the given key.
func (e *Element) Child(key string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Find walks keys from e and returns the element at the end of the path.
func (e *Element) Find(keys ...string) *Element {
	cur := e
	for _, k := range keys {
		cur = cur.Child(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Name joins element keys into a submitted value name ("a.b.c").
func Name(parts ...string) string {
	return strings.Join(parts, ".")
}
