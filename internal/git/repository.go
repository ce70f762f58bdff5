// Package git runs the git executable for the few repository queries the
// commit flow needs. Every call maps the process result to a bool; a failed
// or unlaunchable process reports false.
package git

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// Option customises a Repository.
type Option func(*Repository)

// WithBinary overrides the git executable.
func WithBinary(path string) Option {
	return func(r *Repository) {
		if path != "" {
			r.binary = path
		}
	}
}

// WithDir sets the working directory git runs in.
func WithDir(dir string) Option {
	return func(r *Repository) {
		r.dir = dir
	}
}

// WithEnv sets the environment git runs with.
func WithEnv(env []string) Option {
	return func(r *Repository) {
		r.env = append([]string(nil), env...)
	}
}

// WithStdio sets the streams git commit inherits.
func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(r *Repository) {
		r.stdin = in
		r.stdout = out
		r.stderr = errOut
	}
}

// WithLogger attaches a debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Repository is a git working tree.
type Repository struct {
	binary string
	dir    string
	env    []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// New constructs a Repository. The environment defaults to the current
// process environment and commit output goes to the process streams.
func New(options ...Option) *Repository {
	r := &Repository{
		binary: DefaultBinary,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.env == nil {
		r.env = os.Environ()
	}
	return r
}

// IsInsideRepository reports whether the working directory is inside a git
// work tree.
func (r *Repository) IsInsideRepository(ctx context.Context) bool {
	cmd := r.command(ctx, "rev-parse")
	cmd.Stderr = io.Discard
	return r.run(cmd)
}

// IsClean reports whether nothing is staged.
func (r *Repository) IsClean(ctx context.Context) bool {
	cmd := r.command(ctx, "diff", "--cached", "--quiet")
	cmd.Stderr = io.Discard
	return r.run(cmd)
}

// Commit records the staged changes with message. extraArgs are appended
// verbatim after the message.
func (r *Repository) Commit(ctx context.Context, message string, extraArgs []string) bool {
	args := append([]string{"commit", "-m", message}, extraArgs...)
	cmd := r.command(ctx, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return r.run(cmd)
}

func (r *Repository) command(ctx context.Context, args ...string) *exec.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir
	cmd.Env = r.env
	return cmd
}

func (r *Repository) run(cmd *exec.Cmd) bool {
	err := cmd.Run()
	if err == nil {
		r.logger.Debug("git succeeded", zap.Strings("args", cmd.Args[1:]))
		return true
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		r.logger.Debug("git failed", zap.Strings("args", cmd.Args[1:]), zap.Int("status", exitErr.ExitCode()))
		return false
	}
	r.logger.Warn("git could not run", zap.String("binary", r.binary), zap.Error(err))
	return false
}
