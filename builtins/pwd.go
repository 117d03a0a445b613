package builtins

import (
	"fmt"
	"os"
)

// Pwd implements the pwd builtin.
func Pwd(inv *Invocation) int {
	cmd := &Builtin{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(inv, func() int {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(inv.Stderr, "pwd: %v\n", err)
			return 1
		}

		fmt.Fprintln(inv.Stdout, wd)
		return 0
	})
}

func init() {
	register("pwd", Pwd)
}
