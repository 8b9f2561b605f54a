// Package config loads the server configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level server configuration.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `mapstructure:"listen_addr"`

	// DBPath is the SQLite database file path.
	DBPath string `mapstructure:"db_path"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed inserts sample data on startup when the database is empty.
	Seed bool `mapstructure:"seed"`
}

func defaultConfig() *Config {
	return &Config{
		ListenAddr: ":8080",
		DBPath:     "todo.db",
		LogLevel:   "info",
	}
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file is not an error: defaults apply, and any TODO_API_*
// environment variables still override them.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("db_path", "todo.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", false)

	v.SetEnvPrefix("TODO_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"listen_addr", "db_path", "log_level", "seed"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		switch err.(type) {
		case *os.PathError, viper.ConfigFileNotFoundError:
			// Missing file: defaults and env overrides apply.
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
