package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/bindlepaper/tickerkit/internal/config"
	"github.com/bindlepaper/tickerkit/internal/reportconfig"
	"github.com/bindlepaper/tickerkit/internal/ticker"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scaffolded tickers",
	Long:  `List every ticker under Tickers/ with its config status and expected report file name.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a scaffolded ticker for display.
type listEntry struct {
	Symbol       string `json:"symbol"`
	Initiation   bool   `json:"initiation"`
	Updates      bool   `json:"updates"`
	Placeholders int    `json:"placeholders"`
	Report       string `json:"report"`
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := resolveBasePath()
	if err != nil {
		return err
	}
	tickersDir := filepath.Join(base, ticker.TickersDir)

	dirEntries, err := os.ReadDir(tickersDir)
	if os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No tickers scaffolded yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", tickersDir, err)
	}

	var entries []listEntry
	for _, d := range dirEntries {
		if !d.IsDir() {
			continue
		}
		entries = append(entries, describeTicker(base, d.Name()))
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tickers scaffolded yet.")
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func describeTicker(base, symbol string) listEntry {
	layout := ticker.NewLayout(base, symbol)
	e := listEntry{Symbol: symbol, Report: reportconfig.ReportFileName(nil, symbol)}

	if cfg, err := reportconfig.ParseInitiation(layout.InitiationConfig); err == nil {
		e.Initiation = true
		e.Report = reportconfig.ReportFileName(cfg, symbol)
		e.Placeholders += reportconfig.CountSeverity(reportconfig.CheckInitiation(cfg, symbol), reportconfig.SeverityPlaceholder)
	}
	if cfg, err := reportconfig.ParseUpdates(layout.UpdatesConfig); err == nil {
		e.Updates = true
		e.Placeholders += reportconfig.CountSeverity(reportconfig.CheckUpdates(cfg, symbol, config.ReportBaseURL()), reportconfig.SeverityPlaceholder)
	}
	return e
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TICKER\tINITIATION\tUPDATES\tPLACEHOLDERS\tREPORT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", e.Symbol, yesNo(e.Initiation), yesNo(e.Updates), e.Placeholders, e.Report)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
