//go:build !unix

package launcher

import (
	"os"
	"os/exec"
)

// execImage approximates process image replacement where exec(2) is
// unavailable: run the artifact as a child with inherited streams and exit
// with its status.
func execImage(argv0 string, argv []string, envv []string) error {
	cmd := exec.Command(argv0, argv[1:]...)
	cmd.Env = envv
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
