package builtins

import (
	"fmt"
)

// Type implements the type builtin: report whether a name is a builtin or
// an executable on the search path.
func Type(inv *Invocation) int {
	cmd := &Builtin{
		Use:   "type NAME",
		Short: "Describe how a command name would be interpreted.",
	}

	return cmd.Run(inv, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(inv.Stderr, "type: missing argument")
			return 1
		}

		name := args[0]
		if IsBuiltin(name) {
			fmt.Fprintf(inv.Stdout, "%s is a shell builtin\n", name)
			return 0
		}

		if inv.LookPath != nil {
			if path, err := inv.LookPath(name); err == nil {
				fmt.Fprintf(inv.Stdout, "%s is %s\n", name, path)
				return 0
			}
		}

		fmt.Fprintf(inv.Stderr, "%s: not found\n", name)
		return 1
	})
}

func init() {
	register("type", Type)
}
