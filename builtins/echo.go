package builtins

import (
	"fmt"
)

// Echo implements the echo builtin.
func Echo(inv *Invocation) int {
	cmd := &Builtin{
		Use:   "echo [-n] [ARG] ...",
		Short: "Display a line of text.",
	}

	opts := cmd.Flags()
	noNewline := opts.Bool('n', "do not output the trailing newline")

	return cmd.Run(inv, func() int {
		w := inv.Stdout
		for i, arg := range opts.Args() {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, arg)
		}

		if !*noNewline {
			fmt.Fprintln(w)
		}

		return 0
	})
}

func init() {
	register("echo", Echo)
}
