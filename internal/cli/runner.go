package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-commitizen/internal/config"
	"github.com/goliatone/go-commitizen/pkg/form"
	"github.com/goliatone/go-commitizen/pkg/picker"
	"github.com/goliatone/go-commitizen/pkg/prompt"
	"github.com/goliatone/go-commitizen/pkg/render/template/gotemplate"
)

// Streams are the terminal the prompts talk to. Stdout is deliberately absent:
// it only ever carries the printed message.
type Streams struct {
	Stdin  *os.File
	Stderr *os.File
}

// NewRunnerFactory returns the RunnerFactory used by the command. env is the
// picker subprocess environment.
func NewRunnerFactory(streams Streams, env []string, logger *zap.Logger) RunnerFactory {
	if streams.Stdin == nil {
		streams.Stdin = os.Stdin
	}
	if streams.Stderr == nil {
		streams.Stderr = os.Stderr
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(cfg config.Config) (FormRunner, error) {
		renderer, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.Dir()),
			gotemplate.WithGlobalData(globalData(cfg.Globals)),
		)
		if err != nil {
			return nil, err
		}

		driver, err := newDriver(cfg.Picker, streams, env, logger)
		if err != nil {
			return nil, err
		}

		engine, err := prompt.New(driver, renderer,
			prompt.WithStatus(streams.Stderr),
			prompt.WithHeight(cfg.Picker.Height),
			prompt.WithLogger(logger.Named("prompt")),
		)
		if err != nil {
			return nil, err
		}

		return form.New(engine, renderer, form.WithLogger(logger.Named("form")))
	}
}

func globalData(globals map[string]string) map[string]any {
	out := make(map[string]any, len(globals))
	for key, value := range globals {
		out[key] = value
	}
	return out
}

func newDriver(cfg config.Picker, streams Streams, env []string, logger *zap.Logger) (picker.Driver, error) {
	switch cfg.Backend {
	case config.BackendSurvey:
		logger.Debug("using survey picker")
		return picker.NewSurvey(streams.Stdin, streams.Stderr, io.Writer(streams.Stderr)), nil
	case config.BackendFZF, "":
		driver, err := picker.NewFZF(
			picker.WithCommand(cfg.Command),
			picker.WithEnv(env),
			picker.WithStderr(streams.Stderr),
			picker.WithLogger(logger.Named("picker")),
		)
		if err != nil {
			return nil, err
		}
		logger.Debug("using fzf picker", zap.Strings("command", driver.Command()))
		return driver, nil
	default:
		return nil, fmt.Errorf("cli: unknown picker backend %q", cfg.Backend)
	}
}
