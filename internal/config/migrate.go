package config

import (
	"fmt"
	"os"

	"github.com/zbiljic/vconfig-go"

	"github.com/zbiljic/commitlint/internal/log"
)

// loadCreateMigrate loads existing config or creates new one, handling migrations
func loadCreateMigrate() (*Config, error) {
	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			logger := log.WithComponent("config")
			logger.Debug().Msg("no config file found, using defaults")
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	return loadMigrate(configPath)
}

// loadMigrate loads the config at path and upgrades it to the current version
func loadMigrate(configPath string) (*Config, error) {
	logger := log.WithComponent("config")

	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", configPath).Str("version", version).Msg("loading config")

	var config *Config

	switch version {
	case configVersionV0:
		old, err := vconfig.LoadConfig[configV0](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		logger.Info().Str("path", configPath).Msg("migrating config from version 0")
		config = old.migrateV0()
	case configVersionV1, "":
		// files written by hand often leave out the version
		config, err = vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		config.Version = configVersionV1
	default:
		return nil, errUnknownVersion(version)
	}

	if err := config.Validate(); err != nil {
		return nil, errInvalidConfig(configPath, err)
	}

	return config, nil
}
