package config

import (
	"errors"
	"fmt"
	"ggp/meta"
	"ggp/searcher"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Strategy     string        `mapstructure:"strategy"`
	MaxDepth     int           `mapstructure:"max_depth"`
	SafetyMargin time.Duration `mapstructure:"safety_margin"`
	MoveClock    time.Duration `mapstructure:"move_clock"`
	Games        int           `mapstructure:"games"`
	Goroutines   int           `mapstructure:"goroutines"`
	OutputDir    string        `mapstructure:"output_dir"`
	LogLevel     string        `mapstructure:"log_level"`
	Seed         uint64        `mapstructure:"seed"`
}

// Setup loads the configuration from cfgPath, if given, and from GGP_* environment variables,
// on top of the defaults.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("strategy", string(searcher.BreadthFirst))
	v.SetDefault("max_depth", meta.MAX_DEPTH)
	v.SetDefault("safety_margin", meta.SAFETY_MARGIN)
	v.SetDefault("move_clock", meta.MOVE_CLOCK)
	v.SetDefault("games", 10)
	v.SetDefault("goroutines", meta.GO_ROUTINES)
	v.SetDefault("output_dir", "experiments")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", 1)

	v.SetEnvPrefix("GGP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if _, err := searcher.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.SafetyMargin < 0 {
		return errors.New("safety_margin must not be negative")
	}
	if c.MoveClock < 0 {
		return errors.New("move_clock must not be negative")
	}
	if c.Games < 0 {
		return errors.New("games must not be negative")
	}
	return nil
}
