package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/csvkit/internal/config"
	"github.com/vvka-141/csvkit/internal/logging"
	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// resolveSettings loads .env, then the config file, then environment
// overrides, and validates the result.
// A missing ./csvkit.yaml is not an error; a missing --config file is.
func resolveSettings(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s: %w", configPath, csvkit.ErrNotFound)
		}
	} else {
		cfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, errors.Join(err, csvkit.ErrInvalidConfig))
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger for a command.
func newLogger(cmd *cobra.Command) csvkit.Logger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
