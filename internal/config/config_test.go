package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("TICKERKIT_HOME", home)
	return home
}

func TestDirHonorsHomeOverride(t *testing.T) {
	home := setupHome(t)
	if Dir() != home {
		t.Errorf("Dir() = %q, want %q", Dir(), home)
	}
	if FilePath() != filepath.Join(home, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := ReportBaseURL(); got != "https://bindlepaper.com/reports" {
		t.Errorf("ReportBaseURL() = %q", got)
	}
	if !Interactive() {
		t.Error("Interactive() should default to true")
	}
	if got := LogLevel(); got != "warn" {
		t.Errorf("LogLevel() = %q, want warn", got)
	}
	if !ColorEnabled() {
		t.Error("ColorEnabled() should default to true")
	}

	cwd, _ := os.Getwd()
	base, err := BasePath()
	if err != nil {
		t.Fatalf("BasePath() error: %v", err)
	}
	if base != cwd {
		t.Errorf("BasePath() = %q, want cwd %q", base, cwd)
	}
}

func TestSetPersistsAndReloads(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyBasePath, "/srv/research"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(KeyInteractive, "false"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "/srv/research") {
		t.Errorf("config file missing base_path:\n%s", data)
	}

	viper.Reset()
	Load()
	base, _ := BasePath()
	if base != "/srv/research" {
		t.Errorf("BasePath() after reload = %q", base)
	}
	if Interactive() {
		t.Error("Interactive() after reload should be false")
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	setupHome(t)
	Load()

	err := Set("mirror_url", "x")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown setting") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("TICKERKIT_REPORT_BASE_URL", "https://example.test/r")
	Load()

	if got := ReportBaseURL(); got != "https://example.test/r" {
		t.Errorf("ReportBaseURL() = %q, want env override", got)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("Keys() not sorted: %v", keys)
		}
	}
	if Describe(KeyColor) == "" {
		t.Error("Describe(color) should not be empty")
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyInteractive, "yes"},
		{KeyInteractive, "on"},
		{KeyColor, "maybe"},
		{KeyLogLevel, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			home := setupHome(t)
			Load()

			err := Set(tt.key, tt.value)
			if err == nil {
				t.Fatalf("Set(%s, %q) should fail", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), "invalid value") {
				t.Errorf("unexpected error: %v", err)
			}
			if _, err := os.Stat(filepath.Join(home, "config.yaml")); !os.IsNotExist(err) {
				t.Error("rejected value must not write the config file")
			}
			if !Interactive() || !ColorEnabled() {
				t.Error("rejected value must not change the settings")
			}
		})
	}
}

func TestSetStoresBooleans(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyColor, "FALSE"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "color: false\n") {
		t.Errorf("color should be written as a YAML boolean:\n%s", data)
	}
}

func TestInvalidBooleanKeepsDefaults(t *testing.T) {
	setupHome(t)
	t.Setenv("TICKERKIT_INTERACTIVE", "yes")
	t.Setenv("TICKERKIT_COLOR", "maybe")
	Load()

	if !Interactive() {
		t.Error("an unreadable interactive value must keep the prompt on")
	}
	if !ColorEnabled() {
		t.Error("an unreadable color value must keep color on")
	}
}
