package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// EnvPrefix is the prefix for environment overrides, e.g. HABITPLANT_THEME.
const EnvPrefix = "habitplant"

// Config holds user settings stored in ~/.habitplant/config.yaml.
type Config struct {
	DataFile       string `yaml:"data_file" json:"data_file" envconfig:"DATA_FILE"`
	Theme          string `yaml:"theme" json:"theme" envconfig:"THEME"`
	LogLevel       string `yaml:"log_level" json:"log_level" envconfig:"LOG_LEVEL"`
	RemindSchedule string `yaml:"remind_schedule" json:"remind_schedule" envconfig:"REMIND_SCHEDULE"`
	RecentDays     int    `yaml:"recent_days" json:"recent_days" envconfig:"RECENT_DAYS"`
}

// Dir returns the global habitplant directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".habitplant")
}

// Path returns the path to config.yaml.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.yaml")
}

// DefaultDataFile returns the default location of the habit collection.
func DefaultDataFile(homeDir string) string {
	return filepath.Join(Dir(homeDir), "habits.json")
}

// Default returns the configuration used when no file exists.
func Default(homeDir string) *Config {
	return &Config{
		DataFile:       DefaultDataFile(homeDir),
		Theme:          ThemeLight,
		LogLevel:       "warn",
		RemindSchedule: "0 20 * * *",
		RecentDays:     14,
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataFile, validation.Required),
		validation.Field(&c.Theme, validation.Required, validation.In(ThemeLight, ThemeDark)),
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.RemindSchedule, validation.Required, validation.By(validCron)),
		validation.Field(&c.RecentDays, validation.Required, validation.Min(1), validation.Max(60)),
	)
}

func validCron(value interface{}) error {
	s, _ := value.(string)
	if _, err := cron.ParseStandard(s); err != nil {
		return fmt.Errorf("invalid cron expression: %v", err)
	}
	return nil
}

// ReadFile reads config.yaml layered over the defaults, without applying
// environment overrides. Returns the defaults if the file does not exist.
func ReadFile(homeDir string) (*Config, error) {
	cfg := Default(homeDir)

	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", Path(homeDir), err)
	}
	return cfg, nil
}

// Load returns the effective configuration: defaults, then config.yaml,
// then HABITPLANT_* environment variables. The result is validated.
func Load(homeDir string) (*Config, error) {
	cfg, err := ReadFile(homeDir)
	if err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Write validates cfg and writes it to config.yaml, creating the directory if needed.
func Write(homeDir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// Keys returns the settable configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	a, ok := accessors[key]
	if !ok {
		return "", fmt.Errorf("unknown config key '%s'", key)
	}
	return a.get(c), nil
}

// Set assigns a configuration key from its string form. The change is not
// validated until Write.
func (c *Config) Set(key, value string) error {
	a, ok := accessors[key]
	if !ok {
		return fmt.Errorf("unknown config key '%s'", key)
	}
	return a.set(c, value)
}

type accessor struct {
	get func(*Config) string
	set func(*Config, string) error
}

var accessors = map[string]accessor{
	"data_file": {
		get: func(c *Config) string { return c.DataFile },
		set: func(c *Config, v string) error { c.DataFile = v; return nil },
	},
	"theme": {
		get: func(c *Config) string { return c.Theme },
		set: func(c *Config, v string) error { c.Theme = v; return nil },
	},
	"log_level": {
		get: func(c *Config) string { return c.LogLevel },
		set: func(c *Config, v string) error { c.LogLevel = v; return nil },
	},
	"remind_schedule": {
		get: func(c *Config) string { return c.RemindSchedule },
		set: func(c *Config, v string) error { c.RemindSchedule = v; return nil },
	},
	"recent_days": {
		get: func(c *Config) string { return strconv.Itoa(c.RecentDays) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid recent_days value %q: expected a number", v)
			}
			c.RecentDays = n
			return nil
		},
	},
}
