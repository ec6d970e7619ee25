package config

import (
	"errors"
	"os"

	"github.com/go-ini/ini"
)

// Note: config and secrets are kept apart.
// Config is application configuration that can be stored in version control (bucket names, endpoints).
// Secrets like S3 access keys are read exclusively from environment variables.

// Loads config into the target struct from the given path - an INI file.
// The section is picked from the ENV variable (default section when ENV is unset).
// Don't put secrets in the INI file.
func LoadConfig[T any](path string, target *T) error {
	if target == nil {
		return errors.New("target cannot be nil")
	}

	file, err := ini.Load(path)
	if err != nil {
		return err
	}

	runMode := os.Getenv("ENV")

	if err := file.Section(runMode).MapTo(target); err != nil {
		return err
	}

	return nil
}
