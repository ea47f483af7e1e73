package ticker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Directory and file name conventions shared with the report generator.
const (
	TickersDir    = "Tickers"
	InitiationDir = "Initiation"
	UpdatesDir    = "Updates"
	ImagesDir     = "images"

	initiationConfigSuffix = "_config.yaml"
	updatesConfigSuffix    = "_updateconfig.yaml"
)

// ErrEmptySymbol is returned when a symbol is empty after trimming.
var ErrEmptySymbol = errors.New("ticker symbol is empty")

// Request is a single scaffolding request for one ticker.
type Request struct {
	Symbol string // upper-cased, never empty
}

// NewRequest trims and upper-cases raw. It fails when nothing is left.
func NewRequest(raw string) (Request, error) {
	sym := Normalize(raw)
	if sym == "" {
		return Request{}, ErrEmptySymbol
	}
	if strings.ContainsAny(sym, `/\`) || sym == "." || sym == ".." {
		return Request{}, fmt.Errorf("invalid ticker symbol %q", raw)
	}
	if strings.IndexFunc(sym, func(r rune) bool { return unicode.IsControl(r) || unicode.IsSpace(r) }) >= 0 {
		return Request{}, fmt.Errorf("invalid ticker symbol %q: contains whitespace or control characters", raw)
	}
	return Request{Symbol: sym}, nil
}

// Normalize returns the canonical form of a ticker symbol.
func Normalize(raw string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(raw))
}

// Layout holds every path derived from a symbol and a base directory.
type Layout struct {
	Symbol           string
	TickerDir        string // <base>/Tickers/<SYMBOL>
	InitiationDir    string
	UpdatesDir       string
	InitiationImages string
	UpdatesImages    string
	InitiationConfig string // Initiation/<SYMBOL>_config.yaml
	UpdatesConfig    string // Updates/<SYMBOL>_updateconfig.yaml
}

// LayoutFor derives the layout for r under basePath.
func (r Request) LayoutFor(basePath string) Layout {
	return NewLayout(basePath, r.Symbol)
}

// NewLayout derives the layout for an already-normalized symbol.
func NewLayout(basePath, symbol string) Layout {
	tickerDir := filepath.Join(basePath, TickersDir, symbol)
	initDir := filepath.Join(tickerDir, InitiationDir)
	updDir := filepath.Join(tickerDir, UpdatesDir)

	return Layout{
		Symbol:           symbol,
		TickerDir:        tickerDir,
		InitiationDir:    initDir,
		UpdatesDir:       updDir,
		InitiationImages: filepath.Join(initDir, ImagesDir),
		UpdatesImages:    filepath.Join(updDir, ImagesDir),
		InitiationConfig: filepath.Join(initDir, symbol+initiationConfigSuffix),
		UpdatesConfig:    filepath.Join(updDir, symbol+updatesConfigSuffix),
	}
}

// Dirs returns the directories a scaffold creates, parents first.
func (l Layout) Dirs() []string {
	return []string{l.InitiationDir, l.InitiationImages, l.UpdatesDir, l.UpdatesImages}
}

// Rel returns path relative to base, or path unchanged if that fails.
func Rel(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
