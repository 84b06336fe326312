// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const (
	defaultMaxResults = 10
	defaultTimeout    = 10 * time.Second
	// NCBI allows 3 requests per second without an API key.
	defaultSummaryDelay = 340 * time.Millisecond
	defaultTool         = "pubmed-fetcher"

	envPrefix = "PUBMED_FETCHER"
)

// envKeyReplacer maps "fetch.max_results" to PUBMED_FETCHER_FETCH_MAX_RESULTS.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"max-results": "fetch.max_results",
	"timeout":     "fetch.timeout",
	"delay":       "fetch.summary_delay",
	"format":      "output.format",
}

// setDefaults registers every config key so environment overrides apply
// even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("fetch.timeout", defaultTimeout)
	v.SetDefault("fetch.user_agent", defaultTool+"/"+version)
	v.SetDefault("fetch.max_results", defaultMaxResults)
	v.SetDefault("fetch.summary_delay", defaultSummaryDelay)
	v.SetDefault("fetch.base_url", "")
	v.SetDefault("fetch.tool", defaultTool)
	v.SetDefault("fetch.email", "")
	v.SetDefault("fetch.api_key", "")
	v.SetDefault("classifier.keywords", classify.DefaultKeywords)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", string(types.FormatCSV))
}

// bindFlags lets explicitly set flags override config and environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

// loadConfig decodes the merged settings in v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Output.Format = types.OutputFormat(strings.ToLower(string(cfg.Output.Format)))
	return cfg, nil
}
