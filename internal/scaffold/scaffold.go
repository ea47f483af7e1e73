package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/bindlepaper/tickerkit/internal/branding"
	"github.com/bindlepaper/tickerkit/internal/reportconfig"
	"github.com/bindlepaper/tickerkit/internal/ticker"
	"github.com/rs/zerolog/log"
)

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS

const (
	initiationTemplate = "initiation.yaml.tmpl"
	updatesTemplate    = "updates.yaml.tmpl"
)

// ErrMissingArgument is returned when no ticker symbol was given.
var ErrMissingArgument = errors.New("missing ticker argument")

// FilesystemError wraps a failed directory or file operation.
type FilesystemError struct {
	Op   string // "stat", "mkdir" or "write"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Field is one key/value pair of a nested YAML mapping, kept in order.
type Field struct {
	Key   string
	Value string
}

// TemplateData holds all variables available to the config templates.
type TemplateData struct {
	Symbol          string
	TemplateVersion string
	Initiation      *reportconfig.InitiationConfig
	Updates         *reportconfig.UpdatesConfig
	Company         []Field // Initiation company_data in document order
	Trade           []Field // Initiation trade_data in document order
}

// NewTemplateData builds the template variables for symbol. The symbol must
// already be normalized.
func NewTemplateData(symbol, reportBaseURL string) *TemplateData {
	ini := reportconfig.DefaultInitiation(symbol)
	d := &TemplateData{
		Symbol:          symbol,
		TemplateVersion: reportconfig.TemplateVersion,
		Initiation:      ini,
		Updates:         reportconfig.DefaultUpdates(symbol, reportBaseURL),
	}
	for _, k := range reportconfig.CompanyFields {
		d.Company = append(d.Company, Field{Key: k, Value: ini.CompanyData[k]})
	}
	for _, k := range reportconfig.TradeFields {
		d.Trade = append(d.Trade, Field{Key: k, Value: ini.TradeData[k]})
	}
	return d
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Symbol    string
	TickerDir string
	Existed   bool     // ticker directory was present before the run
	Cancelled bool     // user declined to continue; nothing was written
	Dirs      []string // directories ensured, parents first
	Created   []string // subset of Dirs that did not exist before the run
	Files     []string // files written
	Warnings  []string
}

type options struct {
	reportBaseURL string
	confirmer     Confirmer
}

// Option customizes a Scaffold call.
type Option func(*options)

// WithReportBaseURL sets the prefix of the initiation report link.
func WithReportBaseURL(u string) Option {
	return func(o *options) { o.reportBaseURL = u }
}

// WithConfirmer sets how an interactive run asks before reusing an existing
// ticker directory. The default reads from stdin.
func WithConfirmer(c Confirmer) Option {
	return func(o *options) { o.confirmer = c }
}

// Scaffold creates Tickers/<SYMBOL>/{Initiation,Updates}/images under basePath
// and writes the two placeholder config files. When the ticker directory
// already exists and interactive is true, the confirmer is asked first; a
// refusal returns a Result with Cancelled set and a nil error.
func Scaffold(symbol, basePath string, interactive bool, opts ...Option) (*Result, error) {
	o := options{reportBaseURL: branding.ReportBaseURL()}
	for _, opt := range opts {
		opt(&o)
	}

	req, err := ticker.NewRequest(symbol)
	if err != nil {
		if errors.Is(err, ticker.ErrEmptySymbol) {
			return nil, ErrMissingArgument
		}
		return nil, err
	}
	layout := req.LayoutFor(basePath)

	result := &Result{
		Symbol:    req.Symbol,
		TickerDir: layout.TickerDir,
	}

	info, err := os.Stat(layout.TickerDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, &FilesystemError{Op: "stat", Path: layout.TickerDir, Err: errors.New("exists and is not a directory")}
		}
		result.Existed = true
	case !os.IsNotExist(err):
		return nil, &FilesystemError{Op: "stat", Path: layout.TickerDir, Err: err}
	}

	if result.Existed && interactive {
		c := o.confirmer
		if c == nil {
			c = NewPromptConfirmer(os.Stdin, os.Stdout)
		}
		ok, err := c.Confirm(fmt.Sprintf("Ticker directory %s already exists. Continue?", layout.TickerDir))
		if err != nil {
			return nil, fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			log.Debug().Str("ticker", req.Symbol).Msg("scaffold cancelled by user")
			result.Cancelled = true
			return result, nil
		}
	}

	for _, dir := range layout.Dirs() {
		_, statErr := os.Stat(dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &FilesystemError{Op: "mkdir", Path: dir, Err: err}
		}
		log.Debug().Str("dir", dir).Bool("created", os.IsNotExist(statErr)).Msg("ensured directory")
		result.Dirs = append(result.Dirs, dir)
		if os.IsNotExist(statErr) {
			result.Created = append(result.Created, dir)
		}
	}

	data := NewTemplateData(req.Symbol, o.reportBaseURL)
	outputs := []struct {
		tmpl string
		path string
		kind reportconfig.Kind
	}{
		{initiationTemplate, layout.InitiationConfig, reportconfig.KindInitiation},
		{updatesTemplate, layout.UpdatesConfig, reportconfig.KindUpdates},
	}

	for _, out := range outputs {
		content, err := render(out.tmpl, data)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(out.path, content, 0644); err != nil {
			return nil, &FilesystemError{Op: "write", Path: out.path, Err: err}
		}
		log.Debug().Str("file", out.path).Int("bytes", len(content)).Msg("wrote config")
		result.Files = append(result.Files, out.path)

		// Validate what was written against the config schema.
		valResult, valErr := reportconfig.Validate(out.kind, content)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate %s: %v", filepath.Base(out.path), valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				result.Warnings = append(result.Warnings, filepath.Base(out.path)+": "+issue.String())
			}
		}
	}

	return result, nil
}

var funcs = template.FuncMap{
	// sq renders a YAML single-quoted scalar.
	"sq": func(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" },
	// dq renders a YAML double-quoted scalar.
	"dq": strconv.Quote,
}

func render(name string, data *TemplateData) ([]byte, error) {
	tmplBytes, err := scaffoldFS.ReadFile(path.Join("scaffolds", name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
