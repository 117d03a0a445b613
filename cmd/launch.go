package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"rush/core/launcher"
)

// launchCmd rebuilds rush and replaces the current process with the fresh
// binary. Flag parsing is disabled so every argument after "launch" reaches
// the new process untouched.
var launchCmd = &cobra.Command{
	Use:   "launch [ARG]...",
	Short: "Rebuild rush and replace this process with the result.",
	Long: `launch runs a release-mode build of the project into a fixed scratch
directory and then execs the produced binary, forwarding all remaining
arguments verbatim. It interprets no flags of its own; set
RUSH_LAUNCH_PROJECT or RUSH_LAUNCH_OUTPUT to override the project root or
the build output directory.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		projectDir, err := resolveProjectDir()
		if err != nil {
			return err
		}

		l := launcher.New(projectDir, os.Getenv("RUSH_LAUNCH_OUTPUT"))
		l.Stdout = cmd.OutOrStdout()
		l.Stderr = cmd.ErrOrStderr()

		if err := l.Launch(cmd.Context(), args); err != nil {
			// The build tool already wrote its own diagnostics; only surface
			// errors it couldn't have reported.
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			os.Exit(launcher.ExitCode(err))
		}
		return nil
	},
}

func resolveProjectDir() (string, error) {
	if dir := os.Getenv("RUSH_LAUNCH_PROJECT"); dir != "" {
		return dir, nil
	}

	if exe, err := os.Executable(); err == nil {
		if dir, err := launcher.FindProjectRoot(filepath.Dir(exe)); err == nil {
			return dir, nil
		}
	}

	// Fall back to the caller's directory, the common case under go run.
	return launcher.FindProjectRoot(".")
}

func init() {
	rootCmd.AddCommand(launchCmd)
}
