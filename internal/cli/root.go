package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bindlepaper/tickerkit/internal/branding"
	"github.com/bindlepaper/tickerkit/internal/config"
	"github.com/bindlepaper/tickerkit/internal/scaffold"
	"github.com/bindlepaper/tickerkit/internal/ui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	flagBasePath string
	flagYes      bool
	flagVerbose  bool
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " TICKER",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds the folder layout and placeholder configuration files for a
stock-ticker research report:

  Tickers/<SYMBOL>/Initiation/images/
  Tickers/<SYMBOL>/Initiation/<SYMBOL>_config.yaml
  Tickers/<SYMBOL>/Updates/images/
  Tickers/<SYMBOL>/Updates/<SYMBOL>_updateconfig.yaml

Running "` + branding.CLIName() + ` TICKER" is the same as "` + branding.CLIName() + ` new TICKER".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		setupLogging()
		ui.SetColor(colorEnabled())
	},
	RunE: runNew,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBasePath, "base-path", "", "Project root containing Tickers/ (default: base_path setting or current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Never prompt; continue even if the ticker directory exists")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		reportError(cmd, err)
	}
	return err
}

// reportError prints err once on stderr, with usage for a missing argument.
func reportError(cmd *cobra.Command, err error) {
	if cmd == nil {
		cmd = rootCmd
	}
	p := ui.New(cmd.ErrOrStderr())
	if errors.Is(err, scaffold.ErrMissingArgument) {
		p.Error("Ticker symbol is required")
		fmt.Fprintln(cmd.ErrOrStderr())
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return
	}
	p.Error("%v", err)
}

func setupLogging() {
	level := zerolog.WarnLevel
	if lvl, err := zerolog.ParseLevel(strings.ToLower(config.LogLevel())); err == nil && config.LogLevel() != "" {
		level = lvl
	}
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !colorEnabled(),
	})
}

func colorEnabled() bool {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return config.ColorEnabled()
}

// resolveBasePath picks the project root: --base-path, then the base_path
// setting, then the current directory.
func resolveBasePath() (string, error) {
	if flagBasePath != "" {
		return flagBasePath, nil
	}
	return config.BasePath()
}
