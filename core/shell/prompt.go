package shell

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	colorUserHost = color.New(color.FgGreen, color.Bold)
	colorWorkdir  = color.New(color.FgBlue, color.Bold)
)

// Prompt expands the PS1 template: \u user, \h host, \w working directory
// with ~ contraction, \$ becomes # for root.
func (s *Shell) Prompt() string {
	prompt := os.Getenv(EnvPrompt)
	if prompt == "" {
		prompt = s.configuration.Prompt
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	user := os.Getenv(EnvUser)
	host, _ := os.Hostname()

	pwd, _ := os.Getwd()
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}

	prompt = strings.ReplaceAll(prompt, `\u`, s.paint(colorUserHost, user))
	prompt = strings.ReplaceAll(prompt, `\h`, s.paint(colorUserHost, host))
	prompt = strings.ReplaceAll(prompt, `\w`, s.paint(colorWorkdir, pwd))

	if os.Getuid() == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

func (s *Shell) paint(c *color.Color, v string) string {
	if s.interactive {
		return c.Sprint(v)
	}
	return v
}
