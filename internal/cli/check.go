package cli

import (
	"fmt"
	"os"

	"github.com/bindlepaper/tickerkit/internal/config"
	"github.com/bindlepaper/tickerkit/internal/reportconfig"
	"github.com/bindlepaper/tickerkit/internal/ticker"
	"github.com/bindlepaper/tickerkit/internal/ui"
	"github.com/spf13/cobra"
)

var checkStrict bool

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat remaining placeholders as errors")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check TICKER",
	Short: "Check a ticker's configs for missing, malformed or placeholder values",
	Long: `Validate both report configs of a ticker against their schemas and check every
field's format (dates as MM.DD.YYYY, prices, percentages, links). Fields still
holding the scaffolded placeholder are listed as warnings, or as errors with
--strict. Exits non-zero when any error is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// checkSummary counts findings across both config files.
type checkSummary struct {
	Errors       int
	Placeholders int
}

func runCheck(cmd *cobra.Command, args []string) error {
	req, err := ticker.NewRequest(args[0])
	if err != nil {
		return err
	}
	base, err := resolveBasePath()
	if err != nil {
		return err
	}
	layout := req.LayoutFor(base)
	p := ui.New(cmd.OutOrStdout())

	if _, err := os.Stat(layout.TickerDir); os.IsNotExist(err) {
		return fmt.Errorf("ticker %s has not been scaffolded: %s does not exist", req.Symbol, ticker.Rel(base, layout.TickerDir))
	}

	var sum checkSummary
	checkFile(p, base, layout.InitiationConfig, reportconfig.KindInitiation, &sum, func() ([]reportconfig.FieldIssue, error) {
		cfg, err := reportconfig.ParseInitiation(layout.InitiationConfig)
		if err != nil {
			return nil, err
		}
		return reportconfig.CheckInitiation(cfg, req.Symbol), nil
	})
	checkFile(p, base, layout.UpdatesConfig, reportconfig.KindUpdates, &sum, func() ([]reportconfig.FieldIssue, error) {
		cfg, err := reportconfig.ParseUpdates(layout.UpdatesConfig)
		if err != nil {
			return nil, err
		}
		return reportconfig.CheckUpdates(cfg, req.Symbol, config.ReportBaseURL()), nil
	})

	fmt.Fprintln(cmd.OutOrStdout())
	failed := sum.Errors > 0 || (checkStrict && sum.Placeholders > 0)
	if failed {
		return fmt.Errorf("%s: %d error(s), %d placeholder(s) remaining", req.Symbol, sum.Errors, sum.Placeholders)
	}
	if sum.Placeholders > 0 {
		p.Warn("%s: no errors, %d placeholder(s) remaining", req.Symbol, sum.Placeholders)
		return nil
	}
	p.Success("%s: all fields filled in", req.Symbol)
	return nil
}

func checkFile(p *ui.Printer, base, path string, kind reportconfig.Kind, sum *checkSummary, fields func() ([]reportconfig.FieldIssue, error)) {
	rel := ticker.Rel(base, path)
	p.Header("%s", rel)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p.Error("file not found")
		} else {
			p.Error("%v", err)
		}
		sum.Errors++
		return
	}

	version, _ := reportconfig.HeaderVersion(data)
	if warn, err := reportconfig.CheckTemplateVersion(version); err != nil {
		p.Warn("%v", err)
	} else if warn != "" {
		p.Warn("%s", warn)
	}

	result, err := reportconfig.Validate(kind, data)
	if err != nil {
		p.Error("%v", err)
		sum.Errors++
		return
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			p.Error("%s", issue)
		}
		sum.Errors += len(result.Issues)
		return
	}

	issues, err := fields()
	if err != nil {
		p.Error("%v", err)
		sum.Errors++
		return
	}
	for _, issue := range issues {
		switch issue.Severity {
		case reportconfig.SeverityPlaceholder:
			if checkStrict {
				p.Error("%s", issue)
			} else {
				p.Warn("%s", issue)
			}
			sum.Placeholders++
		default:
			p.Error("%s", issue)
			sum.Errors++
		}
	}
	if len(issues) == 0 {
		p.Success("ok")
	}
}
