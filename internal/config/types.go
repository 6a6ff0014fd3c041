package config

import "time"

// Download path kinds accepted by the downloadPath setting
const (
	// DownloadPathDownloads saves into the user's downloads directory
	DownloadPathDownloads = "downloads"

	// DownloadPathRelative saves into the current working directory
	DownloadPathRelative = "relative"
)

// BloxConfig represents the blox configuration file structure
type BloxConfig struct {
	// Accounts in the order they were added; the first one is the default
	Accounts []Account `yaml:"accounts,omitempty" json:"accounts,omitempty"`

	// DownloadPath is "downloads", "relative" or a directory path
	DownloadPath string `yaml:"downloadPath,omitempty" json:"downloadPath,omitempty"`

	// Defaults contains default settings for operations
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// Account is a named session cookie
type Account struct {
	// Name is the alias the account is selected by, stored lower-case
	Name string `yaml:"name" json:"name"`

	// Cookie is the .ROBLOSECURITY session cookie value
	Cookie string `yaml:"cookie" json:"cookie"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// Timeout for API operations
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// Parallel is the number of concurrent requests
	Parallel int `yaml:"parallel,omitempty" json:"parallel,omitempty"`

	// OutputFormat is the default output format (tree, table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`

	// Currency is the suffix printed after Robux amounts, "$" when empty
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty"`

	// MaxDepth limits how many nested objects the tree output expands
	MaxDepth int `yaml:"maxDepth,omitempty" json:"maxDepth,omitempty"`
}
