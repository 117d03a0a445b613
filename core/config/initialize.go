package config

import (
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into the directory. An
// existing configuration is left alone.
func Initialize(dir string, logger *log.Logger) error {
	path := filepath.Join(dir, ConfigurationName)

	if _, err := os.Stat(path); err == nil {
		logger.Printf("configuration already exists at %s", path)
		return nil
	}

	logger.Printf("creating %s", path)
	return os.WriteFile(path, defaultConfigData, 0600)
}
