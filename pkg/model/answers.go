package model

import "fmt"

// AnswerSet maps field names to collected values, remembering insertion
// order. The zero value is ready to use.
type AnswerSet struct {
	order  []string
	values map[string]string
}

// NewAnswerSet seeds a set from name/value pairs, in order.
func NewAnswerSet(pairs ...string) AnswerSet {
	var set AnswerSet
	for i := 0; i+1 < len(pairs); i += 2 {
		_ = set.Set(pairs[i], pairs[i+1])
	}
	return set
}

// Set records an answer. Accepted answers are final, so recording the same
// name twice fails with ErrAnswerExists.
func (a *AnswerSet) Set(name, value string) error {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[name]; exists {
		return fmt.Errorf("%w: %s", ErrAnswerExists, name)
	}
	a.values[name] = value
	a.order = append(a.order, name)
	return nil
}

// Get returns the answer recorded for name.
func (a AnswerSet) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Len reports how many answers were recorded.
func (a AnswerSet) Len() int {
	return len(a.order)
}

// Names lists answered field names in the order they were recorded.
func (a AnswerSet) Names() []string {
	return append([]string(nil), a.order...)
}

// Bindings copies the answers into a map suitable for template rendering.
func (a AnswerSet) Bindings() map[string]any {
	out := make(map[string]any, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}
