package shell

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte("#!/bin/sh\n"), 0755))
	require.NoError(t, fsys.Chmod(path, 0755))
}

func TestLookPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/bin/ls")

	got, err := LookPath(fsys, "/bin", "ls")
	require.NoError(t, err)
	assert.Equal(t, "/bin/ls", got)
}

func TestLookPath_searchOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/sbin/tool")
	writeExecutable(t, fsys, "/bin/tool")

	got, err := LookPath(fsys, "/sbin:/bin", "tool")
	require.NoError(t, err)
	assert.Equal(t, "/sbin/tool", got)
}

func TestLookPath_notExecutable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bin/data", []byte("plain"), 0644))
	require.NoError(t, fsys.Chmod("/bin/data", 0644))

	_, err := LookPath(fsys, "/bin", "data")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_directoryIsNoMatch(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/bin/subdir", 0755))

	_, err := LookPath(fsys, "/bin", "subdir")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_missing(t *testing.T) {
	_, err := LookPath(afero.NewMemMapFs(), "/bin:/usr/bin", "definitely_does_not_exist_12345")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_emptyPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/bin/ls")

	_, err := LookPath(fsys, "", "ls")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_emptyName(t *testing.T) {
	_, err := LookPath(afero.NewMemMapFs(), "/bin", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_explicitPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/opt/tool")

	got, err := LookPath(fsys, "/bin", "/opt/tool")
	require.NoError(t, err)
	assert.Equal(t, "/opt/tool", got)

	_, err = LookPath(fsys, "/bin", "/opt/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
