// Package prompt asks for one form field at a time through a picker.Driver.
// Each prompt prints the field description on the status stream, opens the
// picker with a live preview of the message, enforces the required rule by
// re-opening the picker, and reports cancellation through its ok result.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/goliatone/go-commitizen/pkg/model"
	"github.com/goliatone/go-commitizen/pkg/picker"
	"github.com/goliatone/go-commitizen/pkg/preview"
	"github.com/goliatone/go-commitizen/pkg/render/template"
)

// Engine prompts for individual fields.
type Engine struct {
	driver       picker.Driver
	renderer     template.StringRenderer
	statusWriter io.Writer
	status       *termenv.Output
	height       int
	theme        Theme
	logger       *zap.Logger
}

// New constructs an Engine. The renderer is used for previews only.
func New(driver picker.Driver, renderer template.StringRenderer, options ...Option) (*Engine, error) {
	if driver == nil {
		return nil, errors.New("prompt: picker driver is nil")
	}
	if renderer == nil {
		return nil, errors.New("prompt: renderer is nil")
	}

	e := &Engine{
		driver:       driver,
		renderer:     renderer,
		statusWriter: os.Stderr,
		height:       DefaultHeight,
		theme:        DefaultTheme,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.status = termenv.NewOutput(e.statusWriter)

	return e, nil
}

// Input asks for free text. ok is false when the user cancelled.
func (e *Engine) Input(ctx context.Context, field model.InputField, answers model.AnswerSet, form model.Form) (string, bool, error) {
	spec := field.Spec()
	e.describe(spec.Description)

	pv, err := preview.Build(e.renderer, form, answers, spec.Name, preview.QueryPlaceholder)
	if err != nil {
		return "", false, err
	}

	opts := picker.Options{
		Height:        e.height,
		PrintQuery:    true,
		Prompt:        spec.Prompt,
		Preview:       pv.Command,
		PreviewWindow: previewWindow(pv.Lines),
	}
	return e.ask(ctx, spec, opts, nil, firstLine)
}

// Select asks for one of the field's options and returns its name. ok is
// false when the user cancelled.
func (e *Engine) Select(ctx context.Context, field model.SelectField, answers model.AnswerSet, form model.Form) (string, bool, error) {
	spec := field.Spec()
	e.describe(spec.Description)

	pv, err := preview.Build(e.renderer, form, answers, spec.Name, preview.SelectionPlaceholder)
	if err != nil {
		return "", false, err
	}

	selections := Selections(field.Options)
	corpus := make([]string, len(selections))
	for i, sel := range selections {
		corpus[i] = sel.Value + model.SelectDelimiter + sel.Text
	}

	opts := picker.Options{
		Height:        e.height,
		Cycle:         true,
		Prompt:        spec.Prompt,
		Preview:       pv.Command,
		PreviewWindow: previewWindow(pv.Lines),
		Delimiter:     model.SelectDelimiter,
		WithNth:       2,
	}

	parse := func(output string) string {
		value, _, _ := strings.Cut(firstLine(output), model.SelectDelimiter)
		if _, ok := field.Lookup(value); !ok {
			return ""
		}
		return value
	}
	return e.ask(ctx, spec, opts, corpus, parse)
}

func (e *Engine) ask(ctx context.Context, spec model.FieldSpec, opts picker.Options, corpus []string, parse func(string) string) (string, bool, error) {
	for first := true; ; first = false {
		outcome, err := e.driver.Run(ctx, opts, corpus)
		if err != nil {
			return "", false, fmt.Errorf("prompt %s: %w", spec.Name, err)
		}
		if outcome.Status == picker.Aborted {
			e.logger.Debug("prompt cancelled", zap.String("field", spec.Name))
			return "", false, nil
		}

		value := parse(outcome.Output)
		if value != "" || !spec.Required {
			e.accept(value)
			return value, true, nil
		}

		e.logger.Debug("required value missing", zap.String("field", spec.Name), zap.Bool("first", first))
		if first {
			e.fail(fmt.Sprintf("%s is required", spec.Name))
		}
	}
}

func (e *Engine) describe(description string) {
	prefix := e.status.String(e.theme.DescriptionPrefix).Foreground(termenv.ANSIGreen)
	fmt.Fprintf(e.status, "%s %s\n", prefix, description)
}

func (e *Engine) fail(message string) {
	fmt.Fprintln(e.status, e.status.String(e.theme.ErrorPrefix+" "+message).Foreground(termenv.ANSIRed))
}

func (e *Engine) accept(value string) {
	if value == "" {
		return
	}
	fmt.Fprintln(e.status, e.status.String(value).Foreground(termenv.ANSIBlue))
}

func previewWindow(lines int) string {
	return "down," + strconv.Itoa(lines)
}

func firstLine(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	return line
}
