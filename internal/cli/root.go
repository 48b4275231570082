// Package cli defines Cobra command definitions for the eqtutor CLI.
// This file contains the root command, version flag, and shared setup.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eqtutor/eqtutor/internal/config"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/tui"
	"github.com/eqtutor/eqtutor/internal/tui/app"
	"github.com/eqtutor/eqtutor/internal/ui"
)

var (
	dirFlag string
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "eqtutor [equation]",
	Short: "First-degree equation tutor",
	Long: `eqtutor solves equations of the form ax + b = c and lets you check
your own answer. Without arguments it opens an interactive terminal UI.
With an equation argument it prints the solution and exits.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			if err := tui.NewFallbackRunner(env.logger, printerFor(cmd)).Run(args[0]); err != nil {
				if errors.Is(err, tui.ErrEquationRequired) {
					return err
				}
				return reported(err)
			}
			return nil
		}

		// Without a terminal, Run prints guidance instead of the UI.
		return tui.Run(app.New(env.cfg, env.root, env.logger), cmd.OutOrStdout())
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var r *reportedError
		if !errors.As(err, &r) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportedError wraps an error the command has already shown to the user.
// Execute exits non-zero without printing it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", ".", "Directory holding .eqtutor/ and an optional .env")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}

// environment is what every command needs after startup.
type environment struct {
	root   string
	cfg    *config.Config
	logger log.Appender
}

// setup loads .env, the config file and the event log for dirFlag.
func setup() (*environment, error) {
	root, err := filepath.Abs(dirFlag)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}

	// A missing .env is normal; variables may come from the environment.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	var logger log.Appender = log.Nop{}
	if cfg.Log.Enabled {
		l, err := log.NewLogger(root)
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
		logger = l
	}

	return &environment{root: root, cfg: cfg, logger: logger}, nil
}

// printerFor returns a Printer writing to cmd's output, with colour only
// when that output is the real stdout.
func printerFor(cmd *cobra.Command) *ui.Printer {
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		return ui.NewPrinter()
	}
	return ui.NewPlainPrinter(out)
}

// logWarn reports a failed log write without failing the command.
func logWarn(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(w, ui.LogWarningText(err))
	}
}
