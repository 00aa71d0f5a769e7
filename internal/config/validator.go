package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field values. An unset ENV_SCHEMA_VERSION is accepted; a
// set one must match.
func (c *Config) Validate() error {
	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgVersionMismatch, ExpectedEnvSchemaVersion, c.EnvSchemaVersion)
	}
	return validate.Struct(c)
}

// CheckFiles confirms the catalog files can be opened. An empty population
// path is allowed.
func (c *Config) CheckFiles() error {
	if err := checkReadable("ITEMS_PATH", c.ItemsPath); err != nil {
		return err
	}
	if c.PopulationPath == "" {
		return nil
	}
	return checkReadable("POPULATION_PATH", c.PopulationPath)
}

func checkReadable(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf(ErrMsgFileUnreadable, name, path, err)
	}
	return f.Close()
}

// Warnings returns non-fatal issues worth logging at startup.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DevMode && c.Environment == logger.EnvironmentProduction {
		warnings = append(warnings, WarnMsgDevModeInProd)
	}
	if c.Seed == 0 && c.Environment == logger.EnvironmentTest {
		warnings = append(warnings, WarnMsgUnseededInTests)
	}
	return warnings
}
