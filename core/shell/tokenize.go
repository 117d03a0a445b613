package shell

import (
	"errors"

	shlex "github.com/anmitsu/go-shlex"
)

var (
	// ErrNop marks a line with nothing to run.
	ErrNop = errors.New("empty command")

	// ErrUnterminatedQuote is reported when a quote is opened and never
	// closed; the line is discarded.
	ErrUnterminatedQuote = errors.New("error: unterminated quote")
)

// Tokenize splits a command line into an argument vector. Quoting follows
// POSIX word splitting: single and double quotes group words, runs of
// whitespace separate them.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, ErrUnterminatedQuote
	}
	if len(tokens) == 0 {
		return nil, ErrNop
	}
	return tokens, nil
}
