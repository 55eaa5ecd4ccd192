// Package config resolves client settings from a .foine config file and
// FOINE_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the resolved client settings.
type Config interface {
	// ServerURL is the base URL of the REST service, including the /api
	// prefix.
	ServerURL() string
	// DataPath is the directory holding client state (the session slot).
	DataPath() string
}

// Load reads configuration with viper: a .foine file in the working
// directory (or FOINE_CONFIG_PATH), overridden by FOINE_SERVER and
// FOINE_PATH environment variables. A missing config file is fine;
// defaults point at a local development server.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("server", "http://localhost:8080/api")
	v.SetDefault("path", "~/.foine")
	v.SetConfigName(".foine") // .yaml is implicit
	v.SetEnvPrefix("FOINE")
	v.AutomaticEnv()

	if override := os.Getenv("FOINE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand data path: %w", err)
	}

	return &fileConfig{Server: v.GetString("server"), Path: path}, nil
}

type fileConfig struct {
	Server string `json:"server"`
	Path   string `json:"path"`
}

func (f *fileConfig) ServerURL() string {
	return f.Server
}

func (f *fileConfig) DataPath() string {
	return f.Path
}
