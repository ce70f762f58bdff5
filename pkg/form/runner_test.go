package form_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/goliatone/go-commitizen/internal/config"
	"github.com/goliatone/go-commitizen/pkg/form"
	"github.com/goliatone/go-commitizen/pkg/model"
	"github.com/goliatone/go-commitizen/pkg/picker"
	"github.com/goliatone/go-commitizen/pkg/prompt"
	"github.com/goliatone/go-commitizen/pkg/render/template/gotemplate"
)

type countingRenderer struct {
	inner *gotemplate.Engine
	calls int
}

func (c *countingRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	c.calls++
	return c.inner.RenderString(templateContent, data, out...)
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return engine
}

func newPrompts(t *testing.T, driver picker.Driver) *prompt.Engine {
	t.Helper()
	engine, err := prompt.New(driver, newEngine(t), prompt.WithStatus(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new prompt engine: %v", err)
	}
	return engine
}

type scriptedDriver struct {
	outcomes []picker.Outcome
	runs     int
}

func (s *scriptedDriver) Run(context.Context, picker.Options, []string) (picker.Outcome, error) {
	if s.runs >= len(s.outcomes) {
		return picker.Outcome{}, errors.New("no outcome scripted")
	}
	out := s.outcomes[s.runs]
	s.runs++
	return out, nil
}

func selected(value string) picker.Outcome {
	return picker.Outcome{Status: picker.Success, Output: value + model.SelectDelimiter + value + "\n"}
}

func typed(value string) picker.Outcome {
	if value == "" {
		return picker.Outcome{Status: picker.EmptySelection, Output: "\n"}
	}
	return picker.Outcome{Status: picker.EmptySelection, Output: value + "\n"}
}

func newRunner(t *testing.T, outcomes []picker.Outcome) (*form.Runner, *countingRenderer, *scriptedDriver) {
	t.Helper()
	driver := &scriptedDriver{outcomes: outcomes}
	renderer := &countingRenderer{inner: newEngine(t)}
	runner, err := form.New(newPrompts(t, driver), renderer)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return runner, renderer, driver
}

func runDefault(t *testing.T, runner *form.Runner) string {
	t.Helper()
	message, ok, err := runner.Run(context.Background(), config.DefaultForm())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ok {
		t.Fatalf("run unexpectedly cancelled")
	}
	return message
}

func TestRun_DefaultForm(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []picker.Outcome
		want     string
	}{
		{
			name:     "without scope",
			outcomes: []picker.Outcome{selected("fix"), typed(""), typed("correct off-by-one"), typed(""), typed(""), typed("")},
			want:     "fix: correct off-by-one",
		},
		{
			name:     "with scope",
			outcomes: []picker.Outcome{selected("fix"), typed("parser"), typed("correct off-by-one"), typed(""), typed(""), typed("")},
			want:     "fix(parser): correct off-by-one",
		},
		{
			name: "all sections",
			outcomes: []picker.Outcome{
				selected("feat"),
				typed("cli"),
				typed("add print mode"),
				typed("prints instead of committing"),
				typed("drops -n"),
				typed("#42"),
			},
			want: "feat(cli): add print mode\n\nprints instead of committing\n\nBREAKING CHANGE: drops -n\n\n#42",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner, renderer, _ := newRunner(t, tc.outcomes)

			if got := runDefault(t, runner); got != tc.want {
				t.Fatalf("message mismatch\nwant: %q\n got: %q", tc.want, got)
			}
			if renderer.calls != 1 {
				t.Fatalf("expected one final render, got %d", renderer.calls)
			}
		})
	}
}

func TestRun_CancelledSubjectSkipsRendering(t *testing.T) {
	runner, renderer, driver := newRunner(t, []picker.Outcome{
		selected("fix"),
		typed(""),
		{Status: picker.Aborted},
	})

	message, ok, err := runner.Run(context.Background(), config.DefaultForm())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if ok || message != "" {
		t.Fatalf("expected cancellation, got %q ok=%v", message, ok)
	}
	if renderer.calls != 0 {
		t.Fatalf("template rendered %d times after cancel", renderer.calls)
	}
	if driver.runs != 3 {
		t.Fatalf("no prompt may follow a cancelled one, got %d runs", driver.runs)
	}
}

// bogusField embeds a real variant but is its own type, so the runner
// cannot dispatch it.
type bogusField struct{ model.InputField }

func (bogusField) Kind() model.Kind { return model.Kind("checkbox") }

func TestRun_UnknownKind(t *testing.T) {
	runner, renderer, driver := newRunner(t, []picker.Outcome{typed("x")})

	f := model.Form{
		Fields: []model.Field{
			model.InputField{FieldSpec: model.FieldSpec{Name: "subject"}},
			bogusField{model.InputField{FieldSpec: model.FieldSpec{Name: "flags"}}},
		},
		Template: "{{ subject }}",
	}
	_, ok, err := runner.Run(context.Background(), f)
	if ok {
		t.Fatalf("unknown kind must not complete the form")
	}

	var kindErr *model.UnknownFieldKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("expected UnknownFieldKindError, got %v", err)
	}
	if kindErr.Field != "flags" || kindErr.Kind != "checkbox" {
		t.Fatalf("unexpected error fields %+v", kindErr)
	}
	if renderer.calls != 0 || driver.runs != 1 {
		t.Fatalf("renders=%d runs=%d, want 0 and 1", renderer.calls, driver.runs)
	}
}

func TestRun_NilField(t *testing.T) {
	runner, _, driver := newRunner(t, nil)

	_, _, err := runner.Run(context.Background(), model.Form{Fields: []model.Field{nil}, Template: "x"})
	var kindErr *model.UnknownFieldKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("expected UnknownFieldKindError, got %v", err)
	}
	if kindErr.Field != "#0" {
		t.Fatalf("field %q", kindErr.Field)
	}
	if driver.runs != 0 {
		t.Fatalf("picker ran %d times", driver.runs)
	}
}

func TestRun_DriverErrorStopsWalk(t *testing.T) {
	runs := 0
	engine := newPrompts(t, picker.DriverFunc(func(context.Context, picker.Options, []string) (picker.Outcome, error) {
		runs++
		return picker.Outcome{}, picker.ErrUnavailable
	}))
	runner, err := form.New(engine, newEngine(t))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	_, ok, err := runner.Run(context.Background(), config.DefaultForm())
	if ok || !errors.Is(err, picker.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got ok=%v err=%v", ok, err)
	}
	if runs != 1 {
		t.Fatalf("expected one picker run, got %d", runs)
	}
}

type failingRenderer struct{}

func (failingRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", errors.New("boom")
}

func TestRun_RenderErrorIsWrapped(t *testing.T) {
	engine := newPrompts(t, &scriptedDriver{outcomes: []picker.Outcome{typed("x")}})
	runner, err := form.New(engine, failingRenderer{})
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	f := model.Form{
		Fields:   []model.Field{model.InputField{FieldSpec: model.FieldSpec{Name: "subject"}}},
		Template: "{{ subject }}",
	}
	_, ok, err := runner.Run(context.Background(), f)
	if ok || err == nil {
		t.Fatalf("expected render failure, got ok=%v err=%v", ok, err)
	}
	if got := err.Error(); got != "form: render message: boom" {
		t.Fatalf("error %q", got)
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	if _, err := form.New(nil, newEngine(t)); err == nil {
		t.Fatalf("expected error for nil prompt engine")
	}
	if _, err := form.New(newPrompts(t, &scriptedDriver{}), nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
