// Package builtins holds the commands rush runs in-process.
package builtins

import (
	"fmt"
	"io"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"
)

// Func is the entry point of a shell builtin. It behaves like a process
// main: argv in, exit status out.
type Func func(inv *Invocation) int

// Invocation carries everything a builtin needs from the shell.
type Invocation struct {
	// Args holds the argument vector, Args[0] being the builtin name.
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// LookPath resolves a name on the search path; used by type.
	LookPath func(name string) (string, error)
}

// All maps builtin names to implementations. exit is absent because the
// shell loop owns session termination.
var All = make(map[string]Func)

func register(name string, fn Func) {
	All[name] = fn
}

// IsBuiltin reports whether name names a shell builtin, exit included.
func IsBuiltin(name string) bool {
	name = strings.TrimSpace(name)
	if name == "exit" {
		return true
	}
	_, ok := All[name]
	return ok
}

// Names returns the sorted builtin names, exit included.
func Names() []string {
	names := []string{"exit"}
	for name := range All {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin wraps flag parsing and help output shared by every builtin.
type Builtin struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags    *getopt.Set
	showHelp *bool
}

// Flags gets the command's flag set.
func (b *Builtin) Flags() *getopt.Set {
	if b.flags == nil {
		b.flags = getopt.New()
	}

	return b.flags
}

// PrintHelp writes help for the command to the given writer.
func (b *Builtin) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, b.Use)
	fmt.Fprintln(w, b.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	b.Flags().PrintOptions(w)
}

// Run parses flags and, on success, calls the callback.
func (b *Builtin) Run(inv *Invocation, callback func() int) int {
	opts := b.Flags()

	if b.showHelp == nil {
		b.showHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(inv.Args, nil); err != nil {
		fmt.Fprintf(inv.Stderr, "error: %s\n\n", err)
		b.PrintHelp(inv.Stderr)
		return 1
	}

	if *b.showHelp {
		b.PrintHelp(inv.Stdout)
		return 0
	}

	return callback()
}
