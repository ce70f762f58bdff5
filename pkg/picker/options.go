package picker

import (
	"context"
	"strconv"
)

// Exit codes of the fzf contract.
const (
	ExitCodeSuccess = 0
	ExitCodeEmpty   = 1
	ExitCodeAbort   = 130
)

// ExitStatus is the normalised result of one picker invocation.
type ExitStatus int

const (
	// Success means the user confirmed a selection or query.
	Success ExitStatus = iota
	// EmptySelection means the user confirmed with nothing matching.
	EmptySelection
	// Aborted means the user cancelled (Esc, Ctrl-C).
	Aborted
)

func (s ExitStatus) String() string {
	switch s {
	case Success:
		return "success"
	case EmptySelection:
		return "empty"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Outcome carries the exit status and the picker's stdout verbatim.
type Outcome struct {
	Status ExitStatus
	Output string
}

// Options mirrors the subset of fzf flags the prompt engine uses. Every field
// is optional: the zero value means the flag is not passed and fzf keeps its
// own default.
type Options struct {
	Delimiter     string
	WithNth       int
	Height        int
	Bind          string
	Preview       string
	PreviewWindow string
	Header        string
	Prompt        string
	Cycle         bool
	PrintQuery    bool
}

// Driver runs one picker session. A nil corpus means free-text mode: a single
// blank line is fed so the picker acts as a line editor.
type Driver interface {
	Run(ctx context.Context, opts Options, corpus []string) (Outcome, error)
}

// DriverFunc adapts a function into a Driver.
type DriverFunc func(ctx context.Context, opts Options, corpus []string) (Outcome, error)

// Run calls the underlying function.
func (fn DriverFunc) Run(ctx context.Context, opts Options, corpus []string) (Outcome, error) {
	return fn(ctx, opts, corpus)
}

// BuildArgs renders opts as fzf command-line arguments.
func BuildArgs(opts Options) []string {
	args := []string{"--ansi", "--reverse", "--border=none"}

	if opts.Delimiter != "" {
		args = append(args, "--delimiter", opts.Delimiter)
	}
	if opts.WithNth > 0 {
		args = append(args, "--with-nth", strconv.Itoa(opts.WithNth))
	}
	if opts.Height > 0 {
		args = append(args, "--height", strconv.Itoa(opts.Height))
	}
	if opts.Bind != "" {
		args = append(args, "--bind", opts.Bind)
	}
	if opts.Preview != "" {
		args = append(args, "--preview", opts.Preview)
	}
	if opts.PreviewWindow != "" {
		args = append(args, "--preview-window", opts.PreviewWindow)
	}
	if opts.Header != "" {
		args = append(args, "--header", opts.Header)
	}
	if opts.Prompt != "" {
		args = append(args, "--prompt", opts.Prompt)
	}
	if opts.Cycle {
		args = append(args, "--cycle")
	}
	if opts.PrintQuery {
		args = append(args, "--print-query")
	}
	return args
}

func statusForCode(code int) (ExitStatus, bool) {
	switch code {
	case ExitCodeSuccess:
		return Success, true
	case ExitCodeEmpty:
		return EmptySelection, true
	case ExitCodeAbort:
		return Aborted, true
	default:
		return 0, false
	}
}
