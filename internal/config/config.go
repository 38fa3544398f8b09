package config

import (
	"errors"
	"os"
	"pokerhands/internal/util"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = "config.yaml"

// Config provides configuration for the poker hands service
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`

	// MaxHands is the largest batch a single request may evaluate
	MaxHands int `yaml:"maxHands" envconfig:"max_hands"`

	// timeouts, in seconds
	ReadTimeout  int `yaml:"readTimeout" envconfig:"read_timeout"`
	WriteTimeout int `yaml:"writeTimeout" envconfig:"write_timeout"`

	Log struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

// ReadTimeoutDuration returns the read timeout as a duration
func (c Config) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the write timeout as a duration
func (c Config) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:         ":5000",
		MaxHands:     100,
		ReadTimeout:  5,
		WriteTimeout: 10,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file named by PH_CONFIG_FILE is read on top of the defaults. A missing
// config.yaml is not an error, but a missing file named explicitly is.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PH_CONFIG_FILE", defaultConfigFile)
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case errors.Is(err, os.ErrNotExist) && configFile == defaultConfigFile:
	default:
		return err
	}

	if err := envconfig.Process("ph", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
