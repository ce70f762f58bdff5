// Command commitizen builds a conventional commit message through fzf prompts
// and commits it, or prints it with --print.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-commitizen/internal/cli"
	"github.com/goliatone/go-commitizen/internal/config"
	"github.com/goliatone/go-commitizen/internal/git"
	"github.com/goliatone/go-commitizen/internal/logging"
)

const appName = "commitizen"

type options struct {
	print      bool
	noCheck    bool
	configPath string
	verbose    bool
}

func main() {
	// Interrupts belong to the picker and git, which report them through their
	// exit status. Catching SIGINT here keeps the process alive to map it.
	signal.Notify(make(chan os.Signal, 1), os.Interrupt)

	err := rootCmd().ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, cli.ErrCancelled) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeForError(err))
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName + " [--] [args...]",
		Short: "Commitizen client",
		Long: `Builds a commit message from a configurable form and commits it.

Arguments after -- are passed to git commit unchanged. --allow-empty and
--amend among them skip the staged changes check.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "Display the commit message instead of committing")
	cmd.Flags().BoolVar(&opts.noCheck, "no-check", false, "Skip the staged changes check")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML or JSON)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	return cmd
}

func run(ctx context.Context, opts options, args []string) error {
	logger := logging.New(os.Stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	env := os.Environ()
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	repo := git.New(
		git.WithDir(wd),
		git.WithEnv(env),
		git.WithLogger(logger.Named("git")),
	)
	loader := config.NewLoader(
		config.WithPath(opts.configPath),
		config.WithGetenv(os.Getenv),
		config.WithLogger(logger.Named("config")),
	)
	runners := cli.NewRunnerFactory(cli.Streams{Stdin: os.Stdin, Stderr: os.Stderr}, env, logger)

	app, err := cli.New(repo, loader, runners, cli.WithStdout(os.Stdout), cli.WithLogger(logger))
	if err != nil {
		return err
	}

	err = app.Execute(ctx, cli.Request{
		Print: opts.print,
		Check: !opts.noCheck,
		Args:  args,
	})
	if errors.Is(err, cli.ErrCancelled) {
		return withExitCode(err, exitCancelled)
	}
	return err
}
