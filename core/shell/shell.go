// Package shell implements the rush read-eval loop: tokenize a line, run
// builtins in-process and everything else from $PATH.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/abiosoft/readline"
	"github.com/spf13/afero"

	"rush/builtins"
	"rush/core/config"
)

const (
	EnvHome     = "HOME"
	EnvPath     = "PATH"
	EnvPrompt   = "PS1"
	EnvUser     = "USER"
	EnvHostname = "HOSTNAME"

	DefaultPrompt = `\u@\h:\w\$ `
)

// Shell holds the interpreter state shared across commands.
type Shell struct {
	configuration *config.Configuration
	fs            afero.Fs

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	interactive bool
	readline    *readline.Instance

	lastStatus int
	exited     bool
}

// Options configures the streams and filesystem a Shell runs against.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Fs backs $PATH lookups; defaults to the real filesystem.
	Fs afero.Fs

	// Interactive enables the prompt, motd and line editing.
	Interactive bool
}

// New creates a shell. The readline instance is created lazily by Run so
// batch invocations never touch the terminal.
func New(configuration *config.Configuration, opts Options) *Shell {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	return &Shell{
		configuration: configuration,
		fs:            opts.Fs,
		stdin:         opts.Stdin,
		stdout:        opts.Stdout,
		stderr:        opts.Stderr,
		interactive:   opts.Interactive,
	}
}

func (s *Shell) initReadline() error {
	if s.readline != nil {
		return nil
	}

	interactive := s.interactive
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(s.stdin),
		Stdout:      s.stdout,
		Stderr:      s.stderr,
		HistoryFile: s.configuration.HistoryPath(),
		FuncIsTerminal: func() bool {
			return interactive
		},
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	s.readline = rl
	return nil
}

// Run drives the interactive read-eval loop until exit or end of input. The
// returned status is that of the last command.
func (s *Shell) Run() (int, error) {
	if err := s.initReadline(); err != nil {
		return 1, err
	}

	if s.interactive && s.configuration.Motd != "" {
		fmt.Fprintln(s.stdout, s.configuration.Motd)
	}

	for {
		s.readline.SetPrompt(s.Prompt())
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			return s.lastStatus, nil

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return 1, err

		case strings.TrimSpace(line) == "":
			continue

		default:
			status := s.RunCommand(line)
			if s.exited {
				return status, nil
			}
		}
	}
}

// RunScript executes input a line at a time, stopping at exit or EOF.
func (s *Shell) RunScript(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		status := s.RunCommand(scanner.Text())
		if s.exited {
			return status
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(s.stderr, err)
		return 1
	}
	return s.lastStatus
}

// RunCommand tokenizes and runs a single command line, returning its exit
// status. Blank lines leave the previous status in place.
func (s *Shell) RunCommand(line string) int {
	argv, err := Tokenize(line)
	switch {
	case errors.Is(err, ErrNop):
		return s.lastStatus
	case err != nil:
		fmt.Fprintln(s.stderr, err)
		s.lastStatus = 1
		return s.lastStatus
	}

	for i, tok := range argv {
		argv[i] = os.ExpandEnv(tok)
	}

	s.lastStatus = s.dispatch(argv)
	return s.lastStatus
}

// Exited reports whether an exit command ended the session.
func (s *Shell) Exited() bool {
	return s.exited
}

func (s *Shell) dispatch(argv []string) int {
	name := argv[0]

	// exit terminates the whole session; the loop owns the teardown.
	if name == "exit" {
		s.exited = true
		return 0
	}

	if fn, ok := builtins.All[name]; ok {
		return fn(&builtins.Invocation{
			Args:     argv,
			Stdin:    s.stdin,
			Stdout:   s.stdout,
			Stderr:   s.stderr,
			LookPath: s.lookPath,
		})
	}

	execPath, err := s.lookPath(name)
	switch {
	case errors.Is(err, ErrNotFound):
		fmt.Fprintf(s.stderr, "%s: command not found\n", name)
		return 127
	case err != nil:
		fmt.Fprintf(s.stderr, "%s: %v\n", name, err)
		return 126
	}

	return s.runExternal(execPath, argv)
}

func (s *Shell) lookPath(name string) (string, error) {
	return LookPath(s.fs, s.pathEnv(), name)
}

func (s *Shell) pathEnv() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	return s.configuration.Path
}

// runExternal runs a resolved executable as a real child process with the
// shell's streams and waits for it.
func (s *Shell) runExternal(execPath string, argv []string) int {
	cmd := exec.Command(execPath)
	cmd.Args = argv
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitStatus(exitErr)
	default:
		fmt.Fprintf(s.stderr, "%s: %v\n", argv[0], err)
		return 126
	}
}

// exitStatus encodes a child's exit the way shells report it: the exit code,
// or 128+signal when the child was killed.
func exitStatus(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}

// Close releases the readline instance if Run created one.
func (s *Shell) Close() error {
	if s.readline == nil {
		return nil
	}
	return s.readline.Close()
}
