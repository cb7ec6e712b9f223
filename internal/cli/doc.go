// Package cli defines the Cobra command tree for the pyboot CLI. Each file
// in this package registers one top-level command (new, validate, config,
// version) with the root command. Command implementations delegate to
// internal packages for the scaffolding logic and only handle flag parsing
// and I/O formatting.
package cli
