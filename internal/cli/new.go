package cli

import (
	"github.com/bindlepaper/tickerkit/internal/branding"
	"github.com/bindlepaper/tickerkit/internal/config"
	"github.com/bindlepaper/tickerkit/internal/scaffold"
	"github.com/bindlepaper/tickerkit/internal/ticker"
	"github.com/bindlepaper/tickerkit/internal/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new TICKER",
	Short: "Scaffold report folders and placeholder configs for a ticker",
	Long: `Create Tickers/<SYMBOL>/Initiation and Tickers/<SYMBOL>/Updates (each with an
images folder) and write the two placeholder YAML configs. The symbol is
upper-cased. If the ticker directory already exists you are asked before
continuing, unless --yes is given or the interactive setting is false.
Existing config files are overwritten.

Examples:
  tickerkit new aapl
  tickerkit new AZEK --yes --base-path ~/research`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return scaffold.ErrMissingArgument
	}

	base, err := resolveBasePath()
	if err != nil {
		return err
	}
	interactive := !flagYes && config.Interactive()
	out := cmd.OutOrStdout()
	p := ui.New(out)

	if sym := ticker.Normalize(args[0]); sym != "" {
		p.Info("Setting up ticker %s", sym)
	}
	log.Debug().Str("base", base).Bool("interactive", interactive).Msg("scaffolding ticker")

	result, err := scaffold.Scaffold(args[0], base, interactive,
		scaffold.WithReportBaseURL(config.ReportBaseURL()),
		scaffold.WithConfirmer(scaffold.NewPromptConfirmer(cmd.InOrStdin(), out)),
	)
	if err != nil {
		return err
	}

	if result.Cancelled {
		p.Warn("Cancelled. No changes made.")
		return nil
	}
	if result.Existed && !interactive {
		p.Warn("Ticker directory %s already exists; continuing", ticker.Rel(base, result.TickerDir))
	}

	printResult(p, base, result)
	return nil
}

func printResult(p *ui.Printer, base string, result *scaffold.Result) {
	for _, d := range result.Created {
		p.Success("Created %s/", ticker.Rel(base, d))
	}
	for _, f := range result.Files {
		p.Success("Wrote %s", ticker.Rel(base, f))
	}
	if len(result.Warnings) > 0 {
		p.Header("Warnings:")
		for _, w := range result.Warnings {
			p.Warn("%s", w)
		}
	}

	layout := ticker.NewLayout(base, result.Symbol)
	p.Header("Ticker %s is ready.", result.Symbol)
	p.Header("Next steps:")
	p.Plain("1. Fill in %s", ticker.Rel(base, layout.InitiationConfig))
	p.Plain("2. Put report charts in %s/", ticker.Rel(base, layout.InitiationImages))
	p.Plain("3. For follow-ups, fill in %s", ticker.Rel(base, layout.UpdatesConfig))
	p.Plain("4. Run '%s check %s' to find fields still holding placeholders", branding.CLIName(), result.Symbol)
	p.Plain("5. Generate the report with 'python src/process_ticker.py %s'", result.Symbol)
}
