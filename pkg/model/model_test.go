package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-commitizen/pkg/model"
)

func TestAnswerSet_PreservesOrderAndRefusesRevision(t *testing.T) {
	var set model.AnswerSet
	for _, pair := range [][2]string{{"prefix", "fix"}, {"scope", ""}, {"subject", "x"}} {
		if err := set.Set(pair[0], pair[1]); err != nil {
			t.Fatalf("set %s: %v", pair[0], err)
		}
	}

	if diff := cmp.Diff([]string{"prefix", "scope", "subject"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	err := set.Set("prefix", "feat")
	if !errors.Is(err, model.ErrAnswerExists) {
		t.Fatalf("expected ErrAnswerExists, got %v", err)
	}
	if got, _ := set.Get("prefix"); got != "fix" {
		t.Fatalf("answer revised to %q", got)
	}

	want := map[string]any{"prefix": "fix", "scope": "", "subject": "x"}
	if diff := cmp.Diff(want, set.Bindings()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_FieldNames(t *testing.T) {
	form := model.Form{Fields: []model.Field{
		model.SelectField{FieldSpec: model.FieldSpec{Name: "prefix"}},
		model.InputField{FieldSpec: model.FieldSpec{Name: "subject"}},
	}}
	if diff := cmp.Diff([]string{"prefix", "subject"}, form.FieldNames()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_Validate(t *testing.T) {
	cases := []struct {
		name    string
		form    model.Form
		wantErr string
	}{
		{
			name: "valid",
			form: model.Form{Fields: []model.Field{
				model.InputField{FieldSpec: model.FieldSpec{Name: "subject"}},
				model.SelectField{FieldSpec: model.FieldSpec{Name: "prefix"}, Options: []model.Option{{Name: "fix"}}},
			}},
		},
		{
			name:    "duplicate name",
			form:    model.Form{Fields: []model.Field{model.InputField{FieldSpec: model.FieldSpec{Name: "a"}}, model.InputField{FieldSpec: model.FieldSpec{Name: "a"}}}},
			wantErr: "duplicate field",
		},
		{
			name:    "empty name",
			form:    model.Form{Fields: []model.Field{model.InputField{}}},
			wantErr: "empty name",
		},
		{
			name:    "nul in template",
			form:    model.Form{Template: "a\x00b"},
			wantErr: "NUL",
		},
		{
			name: "delimiter in option",
			form: model.Form{Fields: []model.Field{
				model.SelectField{FieldSpec: model.FieldSpec{Name: "prefix"}, Options: []model.Option{{Name: "a" + model.SelectDelimiter + "b"}}},
			}},
			wantErr: "reserved character",
		},
		{
			name:    "nil field",
			form:    model.Form{Fields: []model.Field{nil}},
			wantErr: "unknown form",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSelectField_Lookup(t *testing.T) {
	field := model.SelectField{Options: []model.Option{{Name: "feat"}, {Name: "fix", Description: "A bug fix"}}}
	opt, ok := field.Lookup("fix")
	if !ok || opt.Description != "A bug fix" {
		t.Fatalf("lookup fix: %+v %v", opt, ok)
	}
	if _, ok := field.Lookup(""); ok {
		t.Fatalf("empty name should not match")
	}
}

func TestUnknownFieldKindError_Message(t *testing.T) {
	err := &model.UnknownFieldKindError{Field: "scope", Kind: "textarea"}
	if got, want := err.Error(), "unknown form textarea at item scope"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
