// Package cli defines the Cobra command tree for the tickerkit CLI. Each file
// registers one top-level command (new, check, list, doctor, config, version) with the
// root command. Commands delegate to internal packages for the real work and
// only handle flags, output formatting and user interaction.
package cli
