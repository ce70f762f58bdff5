package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// DefaultCommand is the picker executable used when none is configured.
const DefaultCommand = "fzf"

// defaultOptsEnv is fzf's user-global options variable. It is forced empty so
// personal settings cannot change the prompt layout.
const defaultOptsEnv = "FZF_DEFAULT_OPTS"

// FZFOption configures the FZF driver.
type FZFOption func(*FZF)

// WithCommand sets the picker command line, e.g. "fzf" or "fzf-tmux -p 80%".
// The string is split with shell word rules; extra words are passed before
// the generated flags.
func WithCommand(command string) FZFOption {
	return func(f *FZF) {
		f.rawCommand = strings.TrimSpace(command)
	}
}

// WithEnv sets the base environment of the subprocess.
func WithEnv(env []string) FZFOption {
	return func(f *FZF) {
		f.env = append([]string(nil), env...)
	}
}

// WithStderr sets where the picker draws its interface.
func WithStderr(w io.Writer) FZFOption {
	return func(f *FZF) {
		if w != nil {
			f.stderr = w
		}
	}
}

// WithLogger attaches a logger for per-invocation debug output.
func WithLogger(logger *zap.Logger) FZFOption {
	return func(f *FZF) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// FZF runs the fzf binary.
type FZF struct {
	rawCommand string
	command    []string
	env        []string
	stderr     io.Writer
	logger     *zap.Logger
}

var _ Driver = (*FZF)(nil)

// NewFZF constructs an fzf driver. The environment defaults to the current
// process environment when WithEnv is not supplied.
func NewFZF(options ...FZFOption) (*FZF, error) {
	f := &FZF{
		rawCommand: DefaultCommand,
		stderr:     os.Stderr,
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	if f.rawCommand == "" {
		f.rawCommand = DefaultCommand
	}
	words, err := shellquote.Split(f.rawCommand)
	if err != nil {
		return nil, fmt.Errorf("picker: parse command %q: %w", f.rawCommand, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("picker: empty command %q", f.rawCommand)
	}
	f.command = words

	if f.env == nil {
		f.env = os.Environ()
	}
	return f, nil
}

// Command returns the resolved executable and its leading arguments.
func (f *FZF) Command() []string {
	return append([]string(nil), f.command...)
}

// Run executes one picker session and waits for it to exit.
func (f *FZF) Run(ctx context.Context, opts Options, corpus []string) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errors.New("picker: context is required")
	}

	args := append(append([]string(nil), f.command[1:]...), BuildArgs(opts)...)

	cmd := exec.CommandContext(ctx, f.command[0], args...)
	cmd.Env = append(append([]string(nil), f.env...), defaultOptsEnv+"=")
	cmd.Stdin = strings.NewReader(corpusInput(corpus))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = f.stderr

	f.logger.Debug("picker start",
		zap.String("command", f.command[0]),
		zap.Strings("args", args),
		zap.Int("corpus_lines", len(corpus)),
	)

	err := cmd.Run()
	output := stdout.String()
	if err == nil {
		f.logger.Debug("picker exit", zap.Int("code", ExitCodeSuccess))
		return Outcome{Status: Success, Output: output}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Outcome{}, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		f.logger.Debug("picker exit", zap.Int("code", code))
		status, ok := statusForCode(code)
		if !ok {
			return Outcome{Output: output}, &ExitError{Code: code}
		}
		return Outcome{Status: status, Output: output}, nil
	}

	return Outcome{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, f.command[0], err)
}

func corpusInput(corpus []string) string {
	if corpus == nil {
		return "\n"
	}
	return strings.Join(corpus, "\n")
}
