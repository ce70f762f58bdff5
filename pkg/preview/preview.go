// Package preview renders the live message preview shown next to each picker
// prompt. The template is rendered with the answers collected so far, every
// unanswered field bound to the empty string, and the field being edited bound
// to a sentinel. The result is wrapped in a shell command for fzf's --preview
// flag in which the sentinel becomes fzf's own placeholder, underlined, so the
// user sees their input land in the message as they type.
package preview

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/muesli/termenv"

	"github.com/goliatone/go-commitizen/pkg/model"
	"github.com/goliatone/go-commitizen/pkg/render/template"
)

// Sentinel marks the field being edited in the rendered preview. NUL cannot
// be typed into the picker, cannot appear in a process argument, and is
// rejected in templates and option text by model.Form.Validate.
const Sentinel = "\x00"

// fzf placeholders substituted into the preview command.
const (
	QueryPlaceholder     = "{q}"
	SelectionPlaceholder = "{+1}"
)

// printCommand prints its argument literally; printf's format is fixed so the
// rendered text is never interpreted.
const printCommand = "command printf '%s' "

// fzfPlaceholder matches the brace expressions fzf expands inside --preview:
// {}, {q}, {1}, {-1}, {2..}, {1,3}, {+sf1..-2}, {*}, {n}, the {q:1} query
// slices and the {fzf:query} family.
var fzfPlaceholder = regexp.MustCompile(`\{(?:[+*sfnr]*(?:-?\d+(?:\.\.-?\d*)?(?:,-?\d+(?:\.\.-?\d*)?)*)?|q(?::s?-?\d*(?:\.\.-?\d*)?)?|fzf:[a-z-]+)\}`)

// Result is one rendered preview.
type Result struct {
	Command string
	Lines   int
}

// Build renders the preview for the field named current. placeholder is the
// fzf expression that stands in for the user's live input (QueryPlaceholder
// for free text, SelectionPlaceholder for a choice).
func Build(renderer template.StringRenderer, form model.Form, answers model.AnswerSet, current, placeholder string) (Result, error) {
	if renderer == nil {
		return Result{}, errors.New("preview: renderer is nil")
	}

	bindings := make(map[string]any, len(form.Fields))
	for _, name := range form.FieldNames() {
		bindings[name] = ""
	}
	for _, name := range answers.Names() {
		value, _ := answers.Get(name)
		bindings[name] = strings.ReplaceAll(value, Sentinel, "")
	}
	bindings[current] = Sentinel

	text, err := renderer.RenderString(form.Template, bindings)
	if err != nil {
		return Result{}, fmt.Errorf("preview: render: %w", err)
	}

	escaped := fzfPlaceholder.ReplaceAllStringFunc(quote(text), func(m string) string { return `\` + m })
	escaped = strings.ReplaceAll(escaped, Sentinel, marker(placeholder))

	return Result{
		Command: printCommand + escaped,
		Lines:   strings.Count(text, "\n") + 1,
	}, nil
}

// quote wraps s as a single shell word in single quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// marker closes the surrounding quote, lets fzf expand placeholder unquoted
// (fzf quotes the substituted value itself) and reopens the quote. The ANSI
// underline codes stay inside the quoted parts.
func marker(placeholder string) string {
	return termenv.ANSI.String("'" + placeholder + "'").Underline().String()
}
