package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/benzea/skein-altivec/internal/model"
	"github.com/benzea/skein-altivec/internal/verify"
)

// appConfig is internal runtime configuration. Conversion output is
// fixed; config only tunes verification and the line scanner.
type appConfig struct {
	Algorithm    string `mapstructure:"algorithm"`
	Jobs         int    `mapstructure:"jobs"`
	ReportFormat string `mapstructure:"report-format"`
	NoColor      bool   `mapstructure:"no-color"`
	MaxLineSize  int    `mapstructure:"max-line-size"`
	ConfigPath   string `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("SKEINVEC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("algorithm", model.DefaultAlgorithm)
	v.SetDefault("jobs", model.DefaultJobs)
	v.SetDefault("report-format", model.DefaultReportFormat)
	v.SetDefault("no-color", false)
	v.SetDefault("max-line-size", model.DefaultMaxLineSize)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "skeinvec", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if !verify.Supported(cfg.Algorithm) {
		return cfg, fmt.Errorf("unknown algorithm %q (have %v)", cfg.Algorithm, verify.Algorithms())
	}
	switch cfg.ReportFormat {
	case "text", "json", "yaml":
	default:
		return cfg, fmt.Errorf("unknown report-format %q (expected text, json or yaml)", cfg.ReportFormat)
	}
	if cfg.Jobs <= 0 {
		return cfg, fmt.Errorf("invalid jobs: %d", cfg.Jobs)
	}
	if cfg.MaxLineSize <= 0 {
		return cfg, fmt.Errorf("invalid max-line-size: %d", cfg.MaxLineSize)
	}

	return cfg, nil
}
