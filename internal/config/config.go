// Package config loads demo runner settings from defaults, an optional config
// file, an optional .env file and LAMBDALAB_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/charmingruby/lambdalab/internal/logger"
)

const envPrefix = "LAMBDALAB"

// Config is the runner configuration.
type Config struct {
	Log  logger.Config `mapstructure:"log"`
	Demo DemoConfig    `mapstructure:"demo"`
}

// DemoConfig tunes the demonstrations.
type DemoConfig struct {
	// Seed feeds the random generator demo. Zero means seed from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// Options selects the optional sources Load reads.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load resolves the configuration. A missing EnvFile is ignored; a missing
// ConfigFile that was explicitly named is an error.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatConsole)
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
	v.SetDefault("demo.seed", 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("config file %s: %w", opts.ConfigFile, err)
		}
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.ApplyDefaults()
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
