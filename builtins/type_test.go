package builtins

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotFound = errors.New("executable file not found on $PATH")

func fakeLookPath(known map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := known[name]; ok {
			return path, nil
		}
		return "", errNotFound
	}
}

func TestType(t *testing.T) {
	lookup := fakeLookPath(map[string]string{"ls": "/bin/ls"})

	cases := goldenTestSuite{
		"builtin":      {Args: []string{"type", "echo"}, LookPath: lookup},
		"exit-builtin": {Args: []string{"type", "exit"}, LookPath: lookup},
		"executable":   {Args: []string{"type", "ls"}, LookPath: lookup},
		"not-found":    {Args: []string{"type", "nonexistent"}, LookPath: lookup},
		"missing-arg":  {Args: []string{"type"}, LookPath: lookup},
	}

	cases.Run(t, Type)
}

func TestType_status(t *testing.T) {
	lookup := fakeLookPath(map[string]string{"ls": "/bin/ls"})

	cases := []struct {
		name   string
		args   []string
		status int
	}{
		{"builtin", []string{"type", "type"}, 0},
		{"executable", []string{"type", "ls"}, 0},
		{"unknown", []string{"type", "nonexistent123"}, 1},
		{"missing argument", []string{"type"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, status := run(Type, lookup, tc.args...)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestType_unknownNameInMessage(t *testing.T) {
	out, status := run(Type, fakeLookPath(nil), "type", "nonexistent123")
	assert.Equal(t, 1, status)
	assert.Contains(t, out, "nonexistent123")
	assert.Contains(t, out, "not found")
}

func TestType_noLookupStillReportsBuiltins(t *testing.T) {
	out, status := run(Type, nil, "type", "pwd")
	assert.Equal(t, 0, status)
	assert.Equal(t, "pwd is a shell builtin\n", out)
}
