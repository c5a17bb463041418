// Package config loads converter options from a YAML file and applies
// defaults for everything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls a conversion run.
type Options struct {
	// CollectionName overrides the project name for the generated collection.
	CollectionName string `yaml:"collection_name"`
	// EnvironmentName overrides the generated environment name.
	EnvironmentName string `yaml:"environment_name"`
	// Fallback selects unmatched-line handling for free-form scripts:
	// "comment" or "literal".
	Fallback string `yaml:"fallback"`
	// ReportPath is where the issue report is written; empty disables it.
	ReportPath string `yaml:"report_path"`
}

// Default returns the options used when no config file is given.
func Default() Options {
	return Options{Fallback: "comment"}
}

// LoadFile loads and parses a YAML options file from the given path.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Options.
func Parse(data []byte) (Options, error) {
	var opts Options

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&opts)

	return opts, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(opts *Options) {
	if opts.Fallback == "" {
		opts.Fallback = "comment"
	}
}

// Validate rejects option values outside their closed sets.
func (o Options) Validate() error {
	switch o.Fallback {
	case "comment", "literal":
		return nil
	default:
		return fmt.Errorf("invalid fallback %q: must be \"comment\" or \"literal\"", o.Fallback)
	}
}
