// Package cli wires the repository checks, the configuration and the form
// runner into the commit flow behind the commitizen command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/goliatone/go-commitizen/internal/config"
	"github.com/goliatone/go-commitizen/pkg/model"
)

var (
	// ErrNotARepository is returned outside a git work tree.
	ErrNotARepository = errors.New("not a git repository (or any of the parent directories)")
	// ErrNothingToCommit is returned when nothing is staged and no flag
	// allows an empty commit.
	ErrNothingToCommit = errors.New(`nothing added to commit (use "git add")`)
	// ErrCommitFailed is returned when git commit exits non-zero. git has
	// already explained why on stderr.
	ErrCommitFailed = errors.New("git commit failed")
	// ErrCancelled is returned when the user aborted a prompt.
	ErrCancelled = errors.New("cancelled")
)

// Repository is the version control backend.
type Repository interface {
	IsInsideRepository(ctx context.Context) bool
	IsClean(ctx context.Context) bool
	Commit(ctx context.Context, message string, extraArgs []string) bool
}

// ConfigSource produces the configuration of one run.
type ConfigSource interface {
	Load() (config.Config, error)
}

// FormRunner prompts for every field of a form and renders the message.
type FormRunner interface {
	Run(ctx context.Context, form model.Form) (string, bool, error)
}

// RunnerFactory builds the form runner once the configuration is known.
type RunnerFactory func(cfg config.Config) (FormRunner, error)

// Request captures the command line of one invocation.
type Request struct {
	// Print writes the message to stdout instead of committing.
	Print bool
	// Check refuses to run when nothing is staged.
	Check bool
	// Args are passed through to git commit.
	Args []string
}

// Option customises the App.
type Option func(*App)

// WithStdout sets where print mode writes the message.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.stdout = w
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// App runs the commit flow.
type App struct {
	repo    Repository
	configs ConfigSource
	runners RunnerFactory
	stdout  io.Writer
	logger  *zap.Logger
}

// New constructs an App.
func New(repo Repository, configs ConfigSource, runners RunnerFactory, options ...Option) (*App, error) {
	if repo == nil {
		return nil, errors.New("cli: repository is nil")
	}
	if configs == nil {
		return nil, errors.New("cli: config source is nil")
	}
	if runners == nil {
		return nil, errors.New("cli: runner factory is nil")
	}
	a := &App{
		repo:    repo,
		configs: configs,
		runners: runners,
		stdout:  os.Stdout,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a, nil
}

// Execute checks the repository, collects the message and commits or prints
// it. A cancelled prompt yields ErrCancelled and nothing is committed.
func (a *App) Execute(ctx context.Context, req Request) error {
	if !a.repo.IsInsideRepository(ctx) {
		return ErrNotARepository
	}

	if a.requiresStagedChanges(req) && a.repo.IsClean(ctx) {
		return ErrNothingToCommit
	}

	cfg, err := a.configs.Load()
	if err != nil {
		return err
	}

	runner, err := a.runners(cfg)
	if err != nil {
		return err
	}

	message, ok, err := runner.Run(ctx, cfg.Form)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	if req.Print {
		if _, err := fmt.Fprintln(a.stdout, message); err != nil {
			return fmt.Errorf("cli: write message: %w", err)
		}
		return nil
	}

	a.logger.Debug("committing", zap.Strings("args", req.Args))
	if !a.repo.Commit(ctx, message, req.Args) {
		return ErrCommitFailed
	}
	return nil
}

func (a *App) requiresStagedChanges(req Request) bool {
	if !req.Check {
		return false
	}
	return !slices.Contains(req.Args, "--allow-empty") && !slices.Contains(req.Args, "--amend")
}
