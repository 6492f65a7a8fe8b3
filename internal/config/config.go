// Package config loads server configuration from defaults, an optional
// config file and SHAPE_SERVE_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides, e.g.
// SHAPE_SERVE_ADDR or SHAPE_SERVE_LOG_LEVEL.
const EnvPrefix = "SHAPE_SERVE"

// Config holds the server configuration.
type Config struct {
	Addr           string        `mapstructure:"addr" json:"addr"`
	ReadBufferSize int           `mapstructure:"read_buffer_size" json:"read_buffer_size"`
	VersionGate    string        `mapstructure:"version_gate" json:"version_gate"`
	Log            LoggingConfig `mapstructure:"log" json:"log"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" json:"format"` // text, json
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:           "127.0.0.1:7878",
		ReadBufferSize: 8192,
		VersionGate:    "legacy",
		Log: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment apply; a path that does not exist is treated
// the same way. The file type follows the extension (yaml, json, toml).
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("addr", def.Addr)
	v.SetDefault("read_buffer_size", def.ReadBufferSize)
	v.SetDefault("version_gate", def.VersionGate)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Addr == "" {
		return &ConfigError{Field: "addr", Message: "must not be empty"}
	}
	if c.ReadBufferSize <= 0 {
		return &ConfigError{Field: "read_buffer_size", Message: "must be positive"}
	}
	switch c.VersionGate {
	case "legacy", "strict":
	default:
		return &ConfigError{Field: "version_gate", Message: "must be legacy or strict, got " + c.VersionGate}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "log.format", Message: "must be text or json, got " + c.Log.Format}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
