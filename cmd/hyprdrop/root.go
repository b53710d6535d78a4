package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hyprdrop/internal/apps"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	command    string
	identifier string
	args       []string
	background bool
	debug      bool
	configPath string
}

// runError marks failures that happened after the arguments were accepted.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func newRootCmd(runFn func(context.Context, options) error) *cobra.Command {
	var (
		opts    options
		rawArgs string
	)

	cmd := &cobra.Command{
		Use:   "hyprdrop COMMAND -i IDENTIFIER",
		Short: "Toggle a dropdown window on Hyprland",
		Long: "Launches COMMAND as a dropdown tagged with IDENTIFIER, or toggles the existing window " +
			"between the current workspace and a special workspace.\n\n" +
			"Applications with dedicated support: " + strings.Join(apps.Known(), ", ") + ".",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.identifier) == "" {
				return fmt.Errorf("identifier must not be empty")
			}
			if strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("command must not be empty")
			}
			opts.command = args[0]
			opts.args = apps.SplitArgs(rawArgs)
			if err := runFn(cmd.Context(), opts); err != nil {
				return &runError{err: err}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.identifier, "identifier", "i", "", "class or title used to identify the window")
	flags.StringVarP(&rawArgs, "args", "a", "", "comma-separated arguments passed to the launched command")
	flags.BoolVarP(&opts.background, "background", "b", false, "launch the window hidden in the special workspace")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging and failure notifications")
	flags.StringVar(&opts.configPath, "config", "", "path to config file (YAML or TOML)")
	_ = cmd.MarkFlagRequired("identifier")

	return cmd
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var re *runError
	if errors.As(err, &re) {
		return exitFailure
	}
	fmt.Fprintf(os.Stderr, "Error: %v\nRun 'hyprdrop --help' for usage.\n", err)
	return exitUsage
}
