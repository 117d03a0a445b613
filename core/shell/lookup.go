package shell

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a name matches no executable on the search
// path.
var ErrNotFound = errors.New("executable file not found on $PATH")

// LookPath resolves name against the colon-separated search path. Names
// containing a path separator are checked directly. A hit must exist and,
// on unix, carry an executable bit.
func LookPath(fsys afero.Fs, pathEnv, name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}

	if strings.Contains(name, "/") {
		if isExecutable(fsys, name) {
			return name, nil
		}
		return "", ErrNotFound
	}

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}

		full := filepath.Join(dir, name)
		if isExecutable(fsys, full) {
			return full, nil
		}
	}

	return "", ErrNotFound
}

func isExecutable(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		// No executable bit to check, existence is enough.
		return true
	}
	return info.Mode()&0111 != 0
}
