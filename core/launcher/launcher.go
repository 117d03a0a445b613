// Package launcher builds rush in release mode and hands the running
// process over to the fresh binary.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	// DefaultOutputDir is the fixed scratch directory builds land in. It is
	// deliberately outside the project tree and never cleaned up.
	DefaultOutputDir = "/tmp/rush-build"

	// BinaryName is the artifact name inside the output directory.
	BinaryName = "rush"
)

// ErrNoProject is returned when no go.mod can be found above the start
// directory.
var ErrNoProject = errors.New("no go.mod found in any parent directory")

// Launcher compiles the project and replaces the current process image with
// the produced binary. There is no retry and no locking: concurrent launches
// sharing an output directory race on the artifact.
type Launcher struct {
	// ProjectDir is the module root the build runs in.
	ProjectDir string
	// OutputDir receives the build artifact.
	OutputDir string

	// Stdout and Stderr are attached to the build child so the build tool's
	// own diagnostics pass through unchanged.
	Stdout io.Writer
	Stderr io.Writer

	// goTool names the build tool binary, overridable in tests.
	goTool string
	// execve performs the process image replacement, overridable in tests.
	execve func(argv0 string, argv []string, envv []string) error
}

// New creates a launcher for the given module root. An empty outputDir
// selects DefaultOutputDir.
func New(projectDir, outputDir string) *Launcher {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	return &Launcher{
		ProjectDir: projectDir,
		OutputDir:  outputDir,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		goTool:     "go",
		execve:     execImage,
	}
}

// Artifact returns the path the build writes the binary to.
func (l *Launcher) Artifact() string {
	return filepath.Join(l.OutputDir, BinaryName)
}

// Build compiles the project in release mode into the output directory. The
// working directory is set on the child only, so the launcher's own
// directory is untouched once the build finishes.
func (l *Launcher) Build(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, l.goTool,
		"build", "-trimpath", "-ldflags", "-s -w", "-o", l.Artifact(), ".")
	cmd.Dir = l.ProjectDir
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	return cmd.Run()
}

// Exec replaces the current process image with the artifact, forwarding args
// verbatim. It returns only on failure; on success the new process keeps
// this one's pid, streams and exit-status reporting.
func (l *Launcher) Exec(args []string) error {
	artifact := l.Artifact()

	info, err := os.Stat(artifact)
	if err != nil {
		return err
	}
	if info.Mode()&0111 == 0 {
		return fmt.Errorf("%s: not executable", artifact)
	}

	argv := append([]string{artifact}, args...)
	return l.execve(artifact, argv, os.Environ())
}

// Launch builds and then execs, stopping at the first failure.
func (l *Launcher) Launch(ctx context.Context, args []string) error {
	if err := l.Build(ctx); err != nil {
		return err
	}
	return l.Exec(args)
}

// ExitCode maps a Launch error to the status the launcher process should
// exit with, preserving the build tool's own exit code when there is one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

// FindProjectRoot ascends from start until it finds a directory containing
// go.mod.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}
