package reportconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ParseInitiation reads and parses an Initiation config file.
func ParseInitiation(path string) (*InitiationConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[InitiationConfig](data, path)
}

// ParseUpdates reads and parses an Updates config file.
func ParseUpdates(path string) (*UpdatesConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[UpdatesConfig](data, path)
}

// parseTyped unmarshals YAML data into a typed config struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var c T
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &c, nil
}

// HeaderVersion extracts the "# template_version: X.Y.Z" stamp from the
// leading comment block. The second return is false when there is none.
func HeaderVersion(data []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if v, ok := strings.CutPrefix(body, "template_version:"); ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// ReportFileName returns the PDF name the report generator will produce for
// cfg. It falls back to <SYMBOL>_report.pdf when report_saving is incomplete.
func ReportFileName(cfg *InitiationConfig, symbol string) string {
	if cfg != nil {
		rs := cfg.ReportSaving
		if rs.Ticker != "" && rs.Issue != "" && rs.Date != "" {
			return fmt.Sprintf("%s.%s.%s.pdf", rs.Ticker, rs.Issue, rs.Date)
		}
	}
	return symbol + "_report.pdf"
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
