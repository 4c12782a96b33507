// Package config resolves almanac settings from flags, environment,
// an optional almanac.yaml file and built-in defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (ALMANAC_NOTES_FILE, ...).
const EnvPrefix = "ALMANAC"

type Config struct {
	NotesFile string `mapstructure:"notes_file"`
	TasksFile string `mapstructure:"tasks_file"`
	ReadOnly  bool   `mapstructure:"read_only"`
	Verbose   bool   `mapstructure:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		NotesFile: "notes.json",
		TasksFile: "tasks.json",
	}
}

// Paths searched for almanac.yaml when no explicit file is given.
func searchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "almanac"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "almanac"))
	}
	return paths
}

// Load builds the configuration. file, when set, must exist; otherwise
// almanac.yaml is looked up in the search paths and silently skipped when
// absent. flags may be nil; set flags take precedence over everything else.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("notes_file", def.NotesFile)
	v.SetDefault("tasks_file", def.TasksFile)
	v.SetDefault("read_only", def.ReadOnly)
	v.SetDefault("verbose", def.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"notes_file", "tasks_file", "read_only", "verbose"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("almanac")
		v.SetConfigType("yaml")
		for _, p := range searchPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.NotesFile) == "" {
		return fmt.Errorf("config: notes_file is required")
	}
	if strings.TrimSpace(c.TasksFile) == "" {
		return fmt.Errorf("config: tasks_file is required")
	}
	return nil
}
