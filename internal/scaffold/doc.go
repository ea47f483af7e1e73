// Package scaffold creates the folder layout and placeholder configuration
// files for a new ticker report. It powers the "tickerkit new" command:
// Tickers/<SYMBOL>/Initiation and Tickers/<SYMBOL>/Updates, each with an
// images folder, plus one YAML config per folder rendered from embedded
// templates.
package scaffold
