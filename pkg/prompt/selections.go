package prompt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/goliatone/go-commitizen/pkg/model"
)

// Selections renders options as picker lines: names padded to a common
// display width followed by the description in cyan. The picker runs with
// --ansi, so the color codes are always emitted.
func Selections(options []model.Option) []model.Selection {
	width := 0
	for _, opt := range options {
		if w := runewidth.StringWidth(opt.Name); w > width {
			width = w
		}
	}

	flatten := strings.NewReplacer(model.SelectDelimiter, " ", "\n", " ", "\r", "")

	out := make([]model.Selection, len(options))
	for i, opt := range options {
		description := flatten.Replace(opt.Description)
		out[i] = model.Selection{
			Text:  runewidth.FillRight(opt.Name, width) + " " + termenv.ANSI.String(description).Foreground(termenv.ANSICyan).String(),
			Value: opt.Name,
		}
	}
	return out
}
