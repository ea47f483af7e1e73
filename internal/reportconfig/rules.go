package reportconfig

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/shopspring/decimal"
)

// Severity classifies a FieldIssue.
type Severity string

const (
	// SeverityError marks a malformed or missing value.
	SeverityError Severity = "error"
	// SeverityPlaceholder marks a value still equal to the scaffolded default.
	SeverityPlaceholder Severity = "placeholder"
)

// FieldIssue is a single finding from CheckInitiation or CheckUpdates.
type FieldIssue struct {
	Field    string
	Value    string
	Severity Severity
	Message  string
}

func (i FieldIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

var (
	datePattern     = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	fileDatePattern = regexp.MustCompile(`^\d{8}$`)
	tickerPattern   = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]*(?::[A-Z]{2})?$`)
	issuePattern    = regexp.MustCompile(`^Issue\d+$`)
	numberPattern   = regexp.MustCompile(`^\d+$`)
)

type rule func(string) error

// CheckInitiation checks every field of an Initiation config for symbol.
func CheckInitiation(cfg *InitiationConfig, symbol string) []FieldIssue {
	def := DefaultInitiation(symbol)
	c := &checker{}

	c.check("issue_number", cfg.IssueNumber, def.IssueNumber, true, validateNumber)
	c.check("date", cfg.Date, def.Date, true, validateDate)
	c.check("table_date", cfg.TableDate, def.TableDate, false, validateDate)
	c.check("theme", cfg.Theme, def.Theme, true, nil)
	// Symbol-derived fields hold real values from the start.
	c.check("ticker", cfg.Ticker, "", true, validateTickerFor(symbol))
	c.check("timeframe", cfg.Timeframe, def.Timeframe, true, nil)
	c.check("current_target", cfg.CurrentTarget, def.CurrentTarget, true, validateCurrentTarget)
	c.check("downside", cfg.Downside, def.Downside, true, validatePercentage)

	c.check("report_saving.ticker", cfg.ReportSaving.Ticker, "", true, validateTicker)
	c.check("report_saving.issue", cfg.ReportSaving.Issue, def.ReportSaving.Issue, true, validateIssue)
	c.check("report_saving.date", cfg.ReportSaving.Date, def.ReportSaving.Date, true, validateFileDate)

	for _, k := range CompanyFields {
		c.check("company_data."+k, cfg.CompanyData[k], def.CompanyData[k], false, nil)
	}
	for _, k := range TradeFields {
		c.check("trade_data."+k, cfg.TradeData[k], def.TradeData[k], false, nil)
	}

	return c.issues
}

// CheckUpdates checks every field of an Updates config for symbol.
func CheckUpdates(cfg *UpdatesConfig, symbol, reportBaseURL string) []FieldIssue {
	def := DefaultUpdates(symbol, reportBaseURL)
	c := &checker{}

	c.check("issue_number", cfg.IssueNumber, def.IssueNumber, true, validateNumber)
	c.check("update_number", cfg.UpdateNumber, "", true, validateNumber)
	c.check("date", cfg.Date, def.Date, true, validateDate)
	c.check("title", cfg.Title, def.Title, true, nil)
	c.check("ticker", cfg.Ticker, "", true, validateTickerFor(symbol))
	c.check("stock", cfg.Stock, def.Stock, true, nil)
	c.check("initiation_publish_date", cfg.InitiationPublishDate, def.InitiationPublishDate, true, validateDate)
	c.check("initiation_report_link", cfg.InitiationReportLink, def.InitiationReportLink, true, validateURL)
	c.check("price_at_publication", cfg.PriceAtPublication, def.PriceAtPublication, true, validatePrice)
	c.check("recent_price", cfg.RecentPrice, def.RecentPrice, true, validatePrice)
	c.check("target_price", cfg.TargetPrice, def.TargetPrice, true, validatePrice)

	return c.issues
}

// CountSeverity returns how many issues have severity s.
func CountSeverity(issues []FieldIssue, s Severity) int {
	n := 0
	for _, i := range issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

// CheckTemplateVersion reports whether a file stamped with fileVersion is
// compatible with the current TemplateVersion. A non-empty warning means the
// file should be reviewed against a freshly scaffolded one.
func CheckTemplateVersion(fileVersion string) (string, error) {
	if fileVersion == "" {
		return "no template_version header; file was not generated by this tool or predates versioning", nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(fileVersion, "v"))
	if err != nil {
		return "", fmt.Errorf("parsing template version %q: %w", fileVersion, err)
	}
	c, err := semver.NewConstraint("^" + TemplateVersion)
	if err != nil {
		return "", fmt.Errorf("building version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Sprintf("template version %s is not compatible with current template %s", v, TemplateVersion), nil
	}
	return "", nil
}

type checker struct {
	issues []FieldIssue
}

func (c *checker) check(field, value, placeholder string, required bool, validate rule) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		if required {
			c.add(field, value, SeverityError, "is required")
		}
	case placeholder != "" && value == placeholder:
		c.add(field, value, SeverityPlaceholder, fmt.Sprintf("still has placeholder value %q", value))
	case validate != nil:
		if err := validate(value); err != nil {
			c.add(field, value, SeverityError, err.Error())
		}
	}
}

func (c *checker) add(field, value string, s Severity, msg string) {
	c.issues = append(c.issues, FieldIssue{Field: field, Value: value, Severity: s, Message: msg})
}

func validateDate(s string) error {
	if !datePattern.MatchString(s) {
		return fmt.Errorf("invalid date %q: use MM.DD.YYYY", s)
	}
	if _, err := time.Parse("01.02.2006", s); err != nil {
		return fmt.Errorf("invalid date %q: not a calendar date", s)
	}
	return nil
}

func validateFileDate(s string) error {
	if !fileDatePattern.MatchString(s) {
		return fmt.Errorf("invalid date %q: use MMDDYYYY", s)
	}
	if _, err := time.Parse("01022006", s); err != nil {
		return fmt.Errorf("invalid date %q: not a calendar date", s)
	}
	return nil
}

func validateTicker(s string) error {
	if !tickerPattern.MatchString(s) {
		return fmt.Errorf("invalid ticker %q: use an uppercase symbol with optional :XX exchange", s)
	}
	return nil
}

// validateTickerFor also requires the symbol part to match the folder.
func validateTickerFor(symbol string) rule {
	return func(s string) error {
		if err := validateTicker(s); err != nil {
			return err
		}
		sym, _, _ := strings.Cut(s, ":")
		if sym != symbol {
			return fmt.Errorf("ticker %q does not match folder %s", s, symbol)
		}
		return nil
	}
}

func validateIssue(s string) error {
	if !issuePattern.MatchString(s) {
		return fmt.Errorf("invalid issue %q: use IssueNN", s)
	}
	return nil
}

func validateNumber(s string) error {
	if !numberPattern.MatchString(s) {
		return fmt.Errorf("invalid number %q", s)
	}
	return nil
}

func validatePercentage(s string) error {
	v := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if _, err := decimal.NewFromString(v); err != nil {
		return fmt.Errorf("invalid percentage %q", s)
	}
	return nil
}

// parsePrice accepts "$1,234.50", "1234.5" and similar.
func parsePrice(s string) (decimal.Decimal, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "$")
	v = strings.ReplaceAll(v, ",", "")
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q: negative", s)
	}
	return d, nil
}

func validatePrice(s string) error {
	_, err := parsePrice(s)
	return err
}

// validateCurrentTarget expects "$current | $target".
func validateCurrentTarget(s string) error {
	current, target, ok := strings.Cut(s, "|")
	if !ok {
		return fmt.Errorf("invalid current/target %q: use $XX.XX | $XX.XX", s)
	}
	if _, err := parsePrice(current); err != nil {
		return err
	}
	if _, err := parsePrice(target); err != nil {
		return err
	}
	return nil
}

func validateURL(s string) error {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("invalid URL %q: must start with http:// or https://", s)
	}
	return nil
}
