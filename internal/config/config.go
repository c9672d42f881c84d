package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Scoring  ScoringConfig  `yaml:"scoring" mapstructure:"scoring"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Input    InputConfig    `yaml:"input" mapstructure:"input"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ScoringConfig selects the scoring strategy.
type ScoringConfig struct {
	Mode    string `yaml:"mode" mapstructure:"mode"`
	Explain bool   `yaml:"explain" mapstructure:"explain"`
}

// PipelineConfig toggles optional pipeline phases.
type PipelineConfig struct {
	Enrich bool `yaml:"enrich" mapstructure:"enrich"`
}

// InputConfig configures how lead files are read.
type InputConfig struct {
	// Delimiter forces a CSV delimiter. Empty means sniff from the header.
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	Charset   string `yaml:"charset" mapstructure:"charset"`
	Sheet     string `yaml:"sheet" mapstructure:"sheet"`
	TrimSpace bool   `yaml:"trim_space" mapstructure:"trim_space"`
}

// OutputConfig configures how scored leads are written.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// BatchConfig configures multi-file runs.
type BatchConfig struct {
	MaxConcurrentFiles int `yaml:"max_concurrent_files" mapstructure:"max_concurrent_files"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Output formats accepted by the score command.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatXLSX  = "xlsx"
)

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("scoring.mode", "rule")
	v.SetDefault("scoring.explain", false)
	v.SetDefault("pipeline.enrich", false)
	v.SetDefault("input.delimiter", "")
	v.SetDefault("input.charset", "auto")
	v.SetDefault("input.sheet", "")
	v.SetDefault("input.trim_space", true)
	v.SetDefault("output.format", FormatTable)
	v.SetDefault("batch.max_concurrent_files", 4)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks enumerated settings and bounds.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(strings.TrimSpace(c.Scoring.Mode)) {
	case "rule", "ml":
	default:
		errs = append(errs, "scoring.mode must be one of rule, ml")
	}

	switch c.Output.Format {
	case FormatTable, FormatCSV, FormatJSON, FormatXLSX:
	default:
		errs = append(errs, "output.format must be one of table, csv, json, xlsx")
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, "log.format must be json or console")
	}

	if d := c.Input.Delimiter; d != `\t` && len([]rune(d)) > 1 {
		errs = append(errs, "input.delimiter must be a single character")
	}

	if c.Batch.MaxConcurrentFiles < 1 || c.Batch.MaxConcurrentFiles > 32 {
		errs = append(errs, "batch.max_concurrent_files must be between 1 and 32")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter, or 0 to sniff.
func (c InputConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return 0
	}
	if c.Delimiter == `\t` {
		return '\t'
	}
	return []rune(c.Delimiter)[0]
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
