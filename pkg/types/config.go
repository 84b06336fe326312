package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to E-utilities.
type HTTPConfig struct {
	// Timeout bounds each request. Requests fail fast rather than hang.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetchConfig holds settings for the paper fetcher.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults caps the number of ids requested from the search endpoint (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// SummaryDelay is a courtesy pause between the search and summary calls.
	SummaryDelay time.Duration `json:"summary_delay" yaml:"summary_delay" mapstructure:"summary_delay"`

	// BaseURL overrides the E-utilities base (e.g. a mirror or test
	// server). Empty means the public NCBI endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Tool identifies the calling application to NCBI.
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`

	// Email is the contact address NCBI asks callers to register.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// ClassifierConfig holds the non-academic keyword list.
type ClassifierConfig struct {
	// Keywords are matched as case-sensitive substrings. Empty means the defaults.
	Keywords []string `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json" (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// OutputFormat selects the table file encoding.
type OutputFormat string

const (
	FormatCSV    OutputFormat = "csv"
	FormatYAML   OutputFormat = "yaml"
	FormatSQLite OutputFormat = "sqlite"
)

// OutputConfig holds settings for the result writer.
type OutputConfig struct {
	// Format selects the file encoding: csv, yaml, or sqlite.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings loaded at startup.
type Config struct {
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" mapstructure:"classifier"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	Output     OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
}
