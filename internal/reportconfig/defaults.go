package reportconfig

import (
	"fmt"
	"strings"
)

// Placeholder sentinels written into freshly scaffolded configs.
const (
	PlaceholderNumber   = "00"
	PlaceholderDate     = "MM.DD.YYYY"
	PlaceholderFileDate = "MMDDYYYY"
	PlaceholderPrice    = "00.00"
	PlaceholderIssue    = "Issue00"
)

var companyDefaults = map[string]string{
	"SECTOR":          "Sector",
	"LOCATION":        "City, State",
	"MARKET CAP":      "$0.0B",
	"EV/EBITDA":       "0.0x",
	"TRAILING P/E":    "0.0x",
	"PROFIT MARGIN":   "0.0%",
	"TOTAL CASH/DEBT": "$0.0M / $0.0M",
	"52 WEEK RANGE":   "$00.00 - $00.00",
}

var tradeDefaults = map[string]string{
	"DAILY VOLUME":  "$0.0M",
	"DAYS TO COVER": "0.0",
	"SHARES SHORT":  "0.0%",
	"BORROW COST":   "0.0%",
}

// DefaultInitiation returns the Initiation config as the scaffolder writes it.
func DefaultInitiation(symbol string) *InitiationConfig {
	return &InitiationConfig{
		IssueNumber:   PlaceholderNumber,
		Date:          PlaceholderDate,
		TableDate:     PlaceholderDate,
		Theme:         "THEME",
		Ticker:        symbol + ":US",
		Timeframe:     "0-0 MONTHS",
		CurrentTarget: "$00.00 | $00.00",
		Downside:      "00.0%",
		ReportSaving: ReportSaving{
			Ticker: symbol,
			Issue:  PlaceholderIssue,
			Date:   PlaceholderFileDate,
		},
		CompanyData: copyMap(companyDefaults),
		TradeData:   copyMap(tradeDefaults),
	}
}

// DefaultUpdates returns the Updates config as the scaffolder writes it.
func DefaultUpdates(symbol, reportBaseURL string) *UpdatesConfig {
	return &UpdatesConfig{
		IssueNumber:           PlaceholderNumber,
		UpdateNumber:          "1",
		Date:                  PlaceholderDate,
		Title:                 "Update Title",
		Ticker:                symbol,
		Stock:                 CompanyName(symbol),
		InitiationPublishDate: PlaceholderDate,
		InitiationReportLink:  InitiationReportLink(reportBaseURL, symbol),
		PriceAtPublication:    PlaceholderPrice,
		RecentPrice:           PlaceholderPrice,
		TargetPrice:           PlaceholderPrice,
	}
}

// CompanyName returns the placeholder stock name for symbol.
func CompanyName(symbol string) string {
	return fmt.Sprintf("Company Name Inc. (%s)", symbol)
}

// InitiationReportLink builds the placeholder link to the initiation PDF,
// following the report generator's <ticker>.<issue>.<date>.pdf naming.
func InitiationReportLink(baseURL, symbol string) string {
	return fmt.Sprintf("%s/%s.%s.%s.pdf", strings.TrimRight(baseURL, "/"), symbol, PlaceholderIssue, PlaceholderFileDate)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
