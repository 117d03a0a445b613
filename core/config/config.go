// Package config loads and validates the rush configuration.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up inside the config directory.
const ConfigurationName = "config.yaml"

type Configuration struct {
	// Prompt is the PS1 template shown before each command; \u, \h, \w and
	// \$ are expanded.
	Prompt string `json:"prompt"`

	// HistoryFile stores readline history; a leading ~ expands to the user
	// home. Empty disables persistent history.
	HistoryFile string `json:"history_file"`

	// Motd is printed once when an interactive session starts.
	Motd string `json:"motd"`

	// Path is the fallback search path used when $PATH is unset.
	Path string `json:"path" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the compiled-in configuration. A parse failure here is a
// programming error, so it panics.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// HistoryPath expands a leading ~ in HistoryFile.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}

	if strings.HasPrefix(c.HistoryFile, "~/") {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, c.HistoryFile[2:])
		}
	}

	return c.HistoryFile
}
