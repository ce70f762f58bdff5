package picker

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type askFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

// Survey emulates the fzf contract with in-process survey prompts. It ignores
// preview settings. Free-text sessions (nil corpus or PrintQuery) return the
// typed text followed by a newline; selection sessions return the chosen
// corpus line unchanged, so delimiter-encoded values survive the round trip.
type Survey struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
	ask askFunc
}

var _ Driver = (*Survey)(nil)

// NewSurvey constructs a survey driver bound to the given stdio. Nil streams
// default to os.Stdin and os.Stderr so stdout stays free for the rendered
// message.
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Survey{in: in, out: out, err: errOut, ask: survey.AskOne}
}

// Run prompts once and maps interrupts to Aborted.
func (d *Survey) Run(ctx context.Context, opts Options, corpus []string) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errors.New("picker: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	stdio := survey.WithStdio(d.in, d.out, d.err)
	message := surveyMessage(opts)

	if corpus == nil || opts.PrintQuery {
		var out string
		prompt := &survey.Input{Message: message}
		if err := d.ask(prompt, &out, stdio); err != nil {
			return translateSurveyErr(err)
		}
		return Outcome{Status: Success, Output: out + "\n"}, nil
	}

	if len(corpus) == 0 {
		return Outcome{Status: EmptySelection}, nil
	}

	displays := make([]string, len(corpus))
	for i, line := range corpus {
		displays[i] = displayField(line, opts.Delimiter, opts.WithNth)
	}

	var out string
	prompt := &survey.Select{
		Message: message,
		Options: displays,
	}
	if opts.Height > 0 {
		prompt.PageSize = opts.Height
	}
	if err := d.ask(prompt, &out, stdio); err != nil {
		return translateSurveyErr(err)
	}

	idx := indexOf(displays, out)
	if idx < 0 {
		return Outcome{Status: EmptySelection}, nil
	}
	return Outcome{Status: Success, Output: corpus[idx] + "\n"}, nil
}

func surveyMessage(opts Options) string {
	if msg := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(opts.Prompt), ">")); msg != "" {
		return msg
	}
	return strings.TrimSpace(opts.Header)
}

// displayField applies fzf's --with-nth selection for a plain string
// delimiter: field n and everything after it.
func displayField(line, delimiter string, n int) string {
	if delimiter == "" || n <= 1 {
		return line
	}
	parts := strings.SplitN(line, delimiter, n)
	if len(parts) < n {
		return line
	}
	return parts[n-1]
}

func translateSurveyErr(err error) (Outcome, error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return Outcome{Status: Aborted}, nil
	}
	return Outcome{}, err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
