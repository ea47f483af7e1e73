package reportconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://bindlepaper.com/reports"

func fieldsWith(issues []FieldIssue, s Severity) []string {
	var out []string
	for _, i := range issues {
		if i.Severity == s {
			out = append(out, i.Field)
		}
	}
	return out
}

func TestCheckInitiation_Defaults(t *testing.T) {
	issues := CheckInitiation(DefaultInitiation("AAPL"), "AAPL")

	assert.Empty(t, fieldsWith(issues, SeverityError), "fresh defaults must not have format errors")
	assert.Equal(t, 21, CountSeverity(issues, SeverityPlaceholder))
	assert.NotContains(t, fieldsWith(issues, SeverityPlaceholder), "ticker")
	assert.NotContains(t, fieldsWith(issues, SeverityPlaceholder), "report_saving.ticker")
}

func TestCheckUpdates_Defaults(t *testing.T) {
	issues := CheckUpdates(DefaultUpdates("AAPL", baseURL), "AAPL", baseURL)

	assert.Empty(t, fieldsWith(issues, SeverityError))
	assert.ElementsMatch(t, []string{
		"issue_number",
		"date",
		"title",
		"stock",
		"initiation_publish_date",
		"initiation_report_link",
		"price_at_publication",
		"recent_price",
		"target_price",
	}, fieldsWith(issues, SeverityPlaceholder))
}

func TestCheckInitiation_ValidFile(t *testing.T) {
	cfg, err := ParseInitiation(testPath("valid-initiation.yaml"))
	require.NoError(t, err)

	issues := CheckInitiation(cfg, "AZEK")
	assert.Empty(t, issues)
}

func TestCheckUpdates_ValidFile(t *testing.T) {
	cfg, err := ParseUpdates(testPath("valid-updates.yaml"))
	require.NoError(t, err)

	issues := CheckUpdates(cfg, "AZEK", baseURL)
	assert.Empty(t, issues)
}

func TestCheckInitiation_FormatErrors(t *testing.T) {
	cfg := DefaultInitiation("AAPL")
	cfg.IssueNumber = "forty"
	cfg.Date = "2026-01-15"
	cfg.TableDate = "02.30.2026"
	cfg.Ticker = "MSFT:US"
	cfg.CurrentTarget = "$100.00"
	cfg.Downside = "a lot"
	cfg.ReportSaving.Issue = "48"
	cfg.ReportSaving.Date = "13152026"
	cfg.Theme = ""

	issues := CheckInitiation(cfg, "AAPL")
	assert.ElementsMatch(t, []string{
		"issue_number",
		"date",
		"table_date",
		"ticker",
		"current_target",
		"downside",
		"report_saving.issue",
		"report_saving.date",
		"theme",
	}, fieldsWith(issues, SeverityError))
}

func TestCheckInitiation_OptionalTableDate(t *testing.T) {
	cfg := DefaultInitiation("AAPL")
	cfg.TableDate = ""
	for _, i := range CheckInitiation(cfg, "AAPL") {
		assert.NotEqual(t, "table_date", i.Field)
	}
}

func TestCheckUpdates_FormatErrors(t *testing.T) {
	cfg := DefaultUpdates("AAPL", baseURL)
	cfg.InitiationReportLink = "bindlepaper.com/reports/AAPL.pdf"
	cfg.PriceAtPublication = "-3.00"
	cfg.RecentPrice = "$1,234.50"
	cfg.TargetPrice = "sixty"
	cfg.UpdateNumber = "one"

	issues := CheckUpdates(cfg, "AAPL", baseURL)
	assert.ElementsMatch(t, []string{
		"initiation_report_link",
		"price_at_publication",
		"target_price",
		"update_number",
	}, fieldsWith(issues, SeverityError))
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      rule
		value   string
		wantErr bool
	}{
		{"date ok", validateDate, "01.15.2026", false},
		{"date leap day", validateDate, "02.29.2024", false},
		{"date not leap", validateDate, "02.29.2025", true},
		{"date wrong separator", validateDate, "01/15/2026", true},
		{"file date ok", validateFileDate, "01152026", false},
		{"file date bad month", validateFileDate, "13012026", true},
		{"ticker plain", validateTicker, "AAPL", false},
		{"ticker exchange", validateTicker, "AAPL:US", false},
		{"ticker lowercase", validateTicker, "aapl", true},
		{"ticker long exchange", validateTicker, "AAPL:USA", true},
		{"ticker share class", validateTicker, "BRK.B", false},
		{"percent with sign", validatePercentage, "25.0%", false},
		{"percent bare", validatePercentage, "12", false},
		{"percent text", validatePercentage, "n/a", true},
		{"price dollar commas", validatePrice, "$1,234.56", false},
		{"price bare", validatePrice, "52.30", false},
		{"price negative", validatePrice, "-1", true},
		{"url https", validateURL, "https://example.com/x.pdf", false},
		{"url ftp", validateURL, "ftp://example.com", true},
		{"current target", validateCurrentTarget, "$100.00 | $75.00", false},
		{"current target missing bar", validateCurrentTarget, "$100.00 $75.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckTemplateVersion(t *testing.T) {
	warn, err := CheckTemplateVersion(TemplateVersion)
	require.NoError(t, err)
	assert.Empty(t, warn)

	warn, err = CheckTemplateVersion("1.4.2")
	require.NoError(t, err)
	assert.Empty(t, warn)

	warn, err = CheckTemplateVersion("0.9.0")
	require.NoError(t, err)
	assert.Contains(t, warn, "not compatible")

	warn, err = CheckTemplateVersion("2.0.0")
	require.NoError(t, err)
	assert.Contains(t, warn, "not compatible")

	warn, err = CheckTemplateVersion("")
	require.NoError(t, err)
	assert.Contains(t, warn, "no template_version header")

	_, err = CheckTemplateVersion("latest")
	assert.Error(t, err)
}
