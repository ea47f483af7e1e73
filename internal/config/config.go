package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bindlepaper/tickerkit/internal/branding"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyBasePath      = "base_path"
	KeyReportBaseURL = "report_base_url"
	KeyInteractive   = "interactive"
	KeyLogLevel      = "log_level"
	KeyColor         = "color"
)

var knownKeys = map[string]string{
	KeyBasePath:      "project root containing the Tickers/ directory",
	KeyReportBaseURL: "prefix for initiation report links",
	KeyInteractive:   "prompt before reusing an existing ticker directory",
	KeyLogLevel:      "diagnostic log level (debug, info, warn, error)",
	KeyColor:         "colored status output",
}

// Dir returns the path to the config directory (~/.tickerkit/).
// TICKERKIT_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.tickerkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyBasePath, "")
	viper.SetDefault(KeyReportBaseURL, branding.ReportBaseURL())
	viper.SetDefault(KeyInteractive, true)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyColor, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown setting %q (known: %v)", key, Keys())
	}
	v, err := parseValue(key, value)
	if err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, v)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// parseValue converts a raw setting value to the type stored in the config
// file and rejects values the setting cannot hold.
func parseValue(key, value string) (any, error) {
	switch key {
	case KeyInteractive, KeyColor:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: use true or false", value, key)
		}
		return b, nil
	case KeyLogLevel:
		if _, err := zerolog.ParseLevel(strings.ToLower(value)); err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: use debug, info, warn or error", value, key)
		}
		return strings.ToLower(value), nil
	}
	return value, nil
}

// Keys returns the sorted list of recognized setting keys.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns the one-line description of a setting key.
func Describe(key string) string {
	return knownKeys[key]
}

// BasePath returns the configured project root, falling back to the
// current working directory.
func BasePath() (string, error) {
	if v := viper.GetString(KeyBasePath); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// ReportBaseURL returns the prefix used for initiation report links.
func ReportBaseURL() string {
	if v := viper.GetString(KeyReportBaseURL); v != "" {
		return v
	}
	return branding.ReportBaseURL()
}

// Interactive reports whether the existing-directory prompt is enabled.
// An unreadable value keeps the prompt on.
func Interactive() bool { return boolSetting(KeyInteractive, true) }

// LogLevel returns the configured diagnostic log level.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// ColorEnabled reports whether colored status output is enabled.
func ColorEnabled() bool { return boolSetting(KeyColor, true) }

func boolSetting(key string, fallback bool) bool {
	raw := viper.Get(key)
	b, err := cast.ToBoolE(raw)
	if err != nil {
		log.Warn().Str("key", key).Interface("value", raw).Bool("using", fallback).Msg("ignoring invalid boolean setting")
		return fallback
	}
	return b
}
