//go:build unix

package launcher

import "golang.org/x/sys/unix"

// execImage replaces the current process image via exec(2).
func execImage(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
