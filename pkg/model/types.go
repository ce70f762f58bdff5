package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a field variant as it appears in configuration files.
type Kind string

const (
	KindInput  Kind = "input"
	KindSelect Kind = "select"
)

// SelectDelimiter separates the machine value from the visible label on each
// picker line. Option names must not contain it.
const SelectDelimiter = "\x1f"

// FieldSpec carries the attributes shared by every field kind.
type FieldSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Prompt      string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// Field is implemented by InputField and SelectField only.
type Field interface {
	Spec() FieldSpec
	Kind() Kind
	sealed()
}

// InputField collects free text.
type InputField struct {
	FieldSpec
}

// Spec returns the shared attributes.
func (f InputField) Spec() FieldSpec { return f.FieldSpec }

// Kind reports KindInput.
func (InputField) Kind() Kind { return KindInput }

func (InputField) sealed() {}

// SelectField collects one of Options by name.
type SelectField struct {
	FieldSpec
	Options []Option `json:"options" yaml:"options"`
}

// Spec returns the shared attributes.
func (f SelectField) Spec() FieldSpec { return f.FieldSpec }

// Kind reports KindSelect.
func (SelectField) Kind() Kind { return KindSelect }

func (SelectField) sealed() {}

// Lookup reports whether name is one of the field's option names.
func (f SelectField) Lookup(name string) (Option, bool) {
	for _, opt := range f.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Option is a single choice of a SelectField.
type Option struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Selection is the picker-ready rendering of an Option. Text is what the user
// sees, Value is what gets stored in the AnswerSet.
type Selection struct {
	Text  string
	Value string
}

// Form is the static schema of one run: the ordered fields and the template
// their answers are rendered into.
type Form struct {
	Fields   []Field
	Template string
}

// FieldNames lists every declared field name in declaration order.
func (f Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		if field == nil {
			continue
		}
		names = append(names, field.Spec().Name)
	}
	return names
}

// Validate checks the invariants the prompt engine relies on. The NUL byte is
// reserved as the preview sentinel, so it may not appear in the template or in
// any option text.
func (f Form) Validate() error {
	if strings.ContainsRune(f.Template, 0) {
		return errors.New("model: template contains a NUL byte")
	}

	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		if field == nil {
			return &UnknownFieldKindError{Field: fmt.Sprintf("#%d", i)}
		}
		spec := field.Spec()
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return fmt.Errorf("model: field #%d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("model: duplicate field %q", name)
		}
		seen[name] = struct{}{}

		switch typed := field.(type) {
		case InputField:
		case SelectField:
			for _, opt := range typed.Options {
				if opt.Name == "" {
					return fmt.Errorf("model: field %q has an option with an empty name", name)
				}
				if strings.Contains(opt.Name, SelectDelimiter) || strings.ContainsRune(opt.Name, 0) || strings.ContainsRune(opt.Name, '\n') {
					return fmt.Errorf("model: field %q option %q contains a reserved character", name, opt.Name)
				}
				if strings.ContainsRune(opt.Description, 0) {
					return fmt.Errorf("model: field %q option %q description contains a NUL byte", name, opt.Name)
				}
			}
		default:
			return &UnknownFieldKindError{Field: name, Kind: string(field.Kind())}
		}
	}
	return nil
}
