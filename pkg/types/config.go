// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// Path is the SQLite database file. An empty path disables the catalog.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Enabled reports whether runs should be recorded.
func (c CatalogConfig) Enabled() bool {
	return c.Path != ""
}

// CLIConfig groups the settings the CLI reads from flags, the environment and
// the vs2sgt.yaml config file.
type CLIConfig struct {
	// Quiet discards progress output.
	Quiet bool `json:"quiet" yaml:"quiet" mapstructure:"quiet"`

	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}

// OutputFormat selects how reports are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)
