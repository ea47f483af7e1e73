package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bindlepaper/tickerkit/internal/config"
	"github.com/bindlepaper/tickerkit/internal/reportconfig"
	"github.com/bindlepaper/tickerkit/internal/ticker"
	"github.com/spf13/cobra"
)

// pipelineScript is the report generator the scaffolded configs feed.
const pipelineScript = "src/process_ticker.py"

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the report project",
	Long: `Run diagnostic checks on the settings file, the project root, the report
pipeline and the template version of every scaffolded ticker.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBasePath()
		if err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}
		out := cmd.OutOrStdout()

		failed := runSettingsCheck(out)
		failed = runProjectCheck(out, base) || failed
		runPipelineCheck(out, base)
		runTemplateCheck(out, base)

		if failed {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

func runSettingsCheck(out io.Writer) bool {
	fmt.Fprintln(out, "Settings check:")
	path := config.FilePath()
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(out, "  [INFO] No settings file at %s (using defaults)\n", path)
		return false
	}
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] Cannot read settings file: %v\n", err)
		return true
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", path)
	return false
}

func runProjectCheck(out io.Writer, base string) bool {
	fmt.Fprintln(out, "Project check:")
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(out, "  [FAIL] Project root %s is not a directory\n", base)
		return true
	}
	fmt.Fprintf(out, "  [ OK ] Project root %s\n", base)

	tickersDir := filepath.Join(base, ticker.TickersDir)
	if _, err := os.Stat(tickersDir); os.IsNotExist(err) {
		fmt.Fprintf(out, "  [INFO] %s/ not created yet\n", ticker.TickersDir)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s/ present\n", ticker.TickersDir)
	return false
}

func runPipelineCheck(out io.Writer, base string) {
	fmt.Fprintln(out, "Pipeline check:")
	checkBinary(out, "python3")
	if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(pipelineScript))); err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found under project root\n", pipelineScript)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found\n", pipelineScript)
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}

// runTemplateCheck reports configs whose template_version header is missing or
// incompatible with the templates this build writes.
func runTemplateCheck(out io.Writer, base string) {
	fmt.Fprintln(out, "Template check:")
	entries, err := os.ReadDir(filepath.Join(base, ticker.TickersDir))
	if err != nil {
		fmt.Fprintln(out, "  [INFO] No tickers scaffolded")
		return
	}

	checked := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		layout := ticker.NewLayout(base, e.Name())
		for _, path := range []string{layout.InitiationConfig, layout.UpdatesConfig} {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			checked++
			version, _ := reportconfig.HeaderVersion(data)
			warn, err := reportconfig.CheckTemplateVersion(version)
			switch {
			case err != nil:
				fmt.Fprintf(out, "  [FAIL] %s: %v\n", ticker.Rel(base, path), err)
			case warn != "":
				fmt.Fprintf(out, "  [WARN] %s: %s\n", ticker.Rel(base, path), warn)
			}
		}
	}
	fmt.Fprintf(out, "  [ OK ] %d config(s) checked against template %s\n", checked, reportconfig.TemplateVersion)
}
