package reportconfig

import (
	"testing"
)

func TestParseInitiation(t *testing.T) {
	cfg, err := ParseInitiation(testPath("valid-initiation.yaml"))
	if err != nil {
		t.Fatalf("ParseInitiation error: %v", err)
	}

	if cfg.Ticker != "AZEK:US" {
		t.Errorf("Ticker = %q, want %q", cfg.Ticker, "AZEK:US")
	}
	if cfg.ReportSaving.Issue != "Issue48" {
		t.Errorf("ReportSaving.Issue = %q", cfg.ReportSaving.Issue)
	}
	if cfg.CompanyData["MARKET CAP"] != "$6.2B" {
		t.Errorf("CompanyData[MARKET CAP] = %q", cfg.CompanyData["MARKET CAP"])
	}
	if cfg.TradeData["DAYS TO COVER"] != "2.5" {
		t.Errorf("TradeData[DAYS TO COVER] = %q", cfg.TradeData["DAYS TO COVER"])
	}
}

func TestParseUpdates(t *testing.T) {
	cfg, err := ParseUpdates(testPath("valid-updates.yaml"))
	if err != nil {
		t.Fatalf("ParseUpdates error: %v", err)
	}
	if cfg.Stock != "The AZEK Company Inc. (AZEK)" {
		t.Errorf("Stock = %q", cfg.Stock)
	}
	if cfg.TargetPrice != "65.00" {
		t.Errorf("TargetPrice = %q", cfg.TargetPrice)
	}
}

func TestParse_NotFound(t *testing.T) {
	if _, err := ParseInitiation(testPath("missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHeaderVersion(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   string
		wantOK bool
	}{
		{"stamped", "# Ticker Configuration\n# template_version: 1.0.0\n\nissue_number: '00'\n", "1.0.0", true},
		{"blank lines before", "\n\n# template_version: 2.1.0\n", "2.1.0", true},
		{"no header", "issue_number: '00'\n", "", false},
		{"stamp after body ignored", "issue_number: '00'\n# template_version: 1.0.0\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HeaderVersion([]byte(tt.data))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("HeaderVersion() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReportFileName(t *testing.T) {
	cfg := &InitiationConfig{ReportSaving: ReportSaving{Ticker: "AZEK", Issue: "Issue48", Date: "01152026"}}
	if got := ReportFileName(cfg, "AZEK"); got != "AZEK.Issue48.01152026.pdf" {
		t.Errorf("ReportFileName() = %q", got)
	}

	cfg.ReportSaving.Date = ""
	if got := ReportFileName(cfg, "AZEK"); got != "AZEK_report.pdf" {
		t.Errorf("ReportFileName() with incomplete report_saving = %q", got)
	}
	if got := ReportFileName(nil, "AZEK"); got != "AZEK_report.pdf" {
		t.Errorf("ReportFileName(nil) = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	ini := DefaultInitiation("AAPL")
	if ini.Ticker != "AAPL:US" {
		t.Errorf("Ticker = %q", ini.Ticker)
	}
	if len(ini.CompanyData) != len(CompanyFields) || len(ini.TradeData) != len(TradeFields) {
		t.Error("default maps do not cover every field")
	}

	upd := DefaultUpdates("AAPL", baseURL+"/")
	if upd.Stock != "Company Name Inc. (AAPL)" {
		t.Errorf("Stock = %q", upd.Stock)
	}
	if upd.InitiationReportLink != "https://bindlepaper.com/reports/AAPL.Issue00.MMDDYYYY.pdf" {
		t.Errorf("InitiationReportLink = %q", upd.InitiationReportLink)
	}
}
