package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "tickerkit" {
		t.Errorf("CLIName() = %q, want %q", got, "tickerkit")
	}
	if got := HomeDir(); got != ".tickerkit" {
		t.Errorf("HomeDir() = %q, want %q", got, ".tickerkit")
	}
	if got := ReportBaseURL(); got != "https://bindlepaper.com/reports" {
		t.Errorf("ReportBaseURL() = %q", got)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("base_path"); got != "TICKERKIT_BASE_PATH" {
		t.Errorf("EnvVar(base_path) = %q, want %q", got, "TICKERKIT_BASE_PATH")
	}
}
