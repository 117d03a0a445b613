package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"simple", "echo hello world", []string{"echo", "hello", "world"}},
		{"single token", "ls", []string{"ls"}},
		{"double quoted", `echo "hello world"`, []string{"echo", "hello world"}},
		{"single quoted", `echo 'hello world'`, []string{"echo", "hello world"}},
		{"repeated spaces", `echo "two  spaces"   and  some "mo re"`, []string{"echo", "two  spaces", "and", "some", "mo re"}},
		{"leading and trailing spaces", "   echo   hello   ", []string{"echo", "hello"}},
		{"empty quoted string", `echo ""`, []string{"echo", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.line)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestTokenize_unterminatedQuote(t *testing.T) {
	_, err := Tokenize(`echo "hello world`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
	assert.Equal(t, "error: unterminated quote", err.Error())
}

func TestTokenize_empty(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		_, err := Tokenize(line)
		assert.ErrorIs(t, err, ErrNop, "line %q", line)
	}
}
