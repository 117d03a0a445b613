package builtins

import (
	"fmt"
	"os"
)

// Cd implements the cd builtin. With no argument or "~" it changes to the
// home directory.
func Cd(inv *Invocation) int {
	cmd := &Builtin{
		Use:   "cd [DIR]",
		Short: "Change the working directory.",
	}

	return cmd.Run(inv, func() int {
		args := cmd.Flags().Args()

		switch len(args) {
		case 0:
			return cdHome(inv)
		case 1:
			if args[0] == "~" {
				return cdHome(inv)
			}
			if err := os.Chdir(args[0]); err != nil {
				fmt.Fprintf(inv.Stderr, "cd: %s: No such file or directory\n", args[0])
				return 1
			}
			return 0
		default:
			fmt.Fprintln(inv.Stderr, "cd: too many arguments")
			return 1
		}
	})
}

func cdHome(inv *Invocation) int {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		fmt.Fprintln(inv.Stderr, "cd: failed to locate home directory")
		return 1
	}

	if err := os.Chdir(home); err != nil {
		fmt.Fprintf(inv.Stderr, "cd: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	register("cd", Cd)
}
