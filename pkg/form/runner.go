// Package form walks a model.Form field by field, collects the answers and
// renders the final message. A cancelled prompt stops the walk immediately and
// nothing is rendered.
package form

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-commitizen/pkg/model"
	"github.com/goliatone/go-commitizen/pkg/render/template"
)

// Prompter asks for a single field. ok is false when the user cancelled.
type Prompter interface {
	Input(ctx context.Context, field model.InputField, answers model.AnswerSet, form model.Form) (string, bool, error)
	Select(ctx context.Context, field model.SelectField, answers model.AnswerSet, form model.Form) (string, bool, error)
}

// Option customises the runner.
type Option func(*Runner)

// WithLogger attaches a debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner drives the prompts of a form in declaration order.
type Runner struct {
	prompter Prompter
	renderer template.StringRenderer
	logger   *zap.Logger
}

// New constructs a Runner.
func New(prompter Prompter, renderer template.StringRenderer, options ...Option) (*Runner, error) {
	if prompter == nil {
		return nil, errors.New("form: prompter is nil")
	}
	if renderer == nil {
		return nil, errors.New("form: renderer is nil")
	}
	r := &Runner{
		prompter: prompter,
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Run prompts for every field and returns the rendered message. ok is false
// when the user cancelled one of the prompts; the message is then empty and
// the template was never rendered.
func (r *Runner) Run(ctx context.Context, form model.Form) (string, bool, error) {
	if ctx == nil {
		return "", false, errors.New("form: context is required")
	}

	var answers model.AnswerSet
	for i, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}

		var (
			value string
			ok    bool
			err   error
		)
		switch typed := field.(type) {
		case model.InputField:
			value, ok, err = r.prompter.Input(ctx, typed, answers, form)
		case model.SelectField:
			value, ok, err = r.prompter.Select(ctx, typed, answers, form)
		default:
			return "", false, unknownKind(i, field)
		}
		if err != nil {
			return "", false, err
		}
		if !ok {
			r.logger.Debug("form cancelled", zap.String("field", field.Spec().Name), zap.Int("answered", answers.Len()))
			return "", false, nil
		}

		if err := answers.Set(field.Spec().Name, value); err != nil {
			return "", false, fmt.Errorf("form: %w", err)
		}
	}

	message, err := r.renderer.RenderString(form.Template, answers.Bindings())
	if err != nil {
		return "", false, fmt.Errorf("form: render message: %w", err)
	}
	return message, true, nil
}

func unknownKind(index int, field model.Field) error {
	if field == nil {
		return &model.UnknownFieldKindError{Field: fmt.Sprintf("#%d", index)}
	}
	return &model.UnknownFieldKindError{Field: field.Spec().Name, Kind: string(field.Kind())}
}
