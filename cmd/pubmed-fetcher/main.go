// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-fetcher CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
	"github.com/pdiddy/pubmed-fetcher/internal/fetch"
	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/internal/logging"
	"github.com/pdiddy/pubmed-fetcher/internal/output"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const secretsDir = ".secrets/"

// rootCmd is the base command for the pubmed-fetcher CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-fetcher [flags] <query>",
	Short: "Fetch research papers from PubMed",
	Long: `pubmed-fetcher searches PubMed for a query, fetches summaries for the
matching papers, and flags author affiliations that look like companies
(Inc, Ltd, Pharma, Biotech, ...).

Results are printed to stdout, or written to a CSV, YAML, or SQLite file
with --file. The table columns are:

  PubmedID, Title, Publication Date, Authors, Company Affiliations`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pubmed-fetcher.yaml or ~/.config/pubmed-fetcher/pubmed-fetcher.yaml)")

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "filename to save results to instead of printing them")
	f.BoolP("debug", "d", false, "enable debug logging")
	f.String("format", string(types.FormatCSV), "output file format: csv, yaml, or sqlite")
	f.Int("max-results", defaultMaxResults, "maximum number of papers to fetch")
	f.Duration("timeout", defaultTimeout, "HTTP request timeout")
	f.Duration("delay", defaultSummaryDelay, "pause between the search and summary requests")
	f.Bool("json", false, "print results as JSON instead of one line per paper")

	bindFlags(viper.GetViper(), rootCmd)
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-fetcher"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logging.Sync(log)

	s, err := secrets.Load(secretsDir, log)
	if err != nil {
		return err
	}
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		log.Debug("loaded secrets", logging.Fields{"keys": keys})
	}
	secrets.ApplyTo(&cfg.Fetch, s)

	file, _ := cmd.Flags().GetString("file")
	jsonOut, _ := cmd.Flags().GetBool("json")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return run(ctx, cfg, args[0], runOptions{File: file, JSON: jsonOut}, cmd.OutOrStdout(), log)
}

// runOptions selects where results go.
type runOptions struct {
	File string
	JSON bool
}

// run fetches papers for query and prints or saves them. Finding no
// papers is not an error: it is logged and nothing is written.
func run(ctx context.Context, cfg types.Config, query string, opts runOptions, stdout io.Writer, log logging.Logger) error {
	var writer output.TableWriter
	if opts.File != "" {
		w, err := output.ForFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		writer = w
	}

	log.Info("fetching papers", logging.Fields{"query": query})

	client := httputil.NewClient(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	f := fetch.New(client, classify.New(cfg.Classifier.Keywords), cfg.Fetch, log)

	papers := f.FetchPapers(ctx, query, cfg.Fetch.MaxResults)
	if len(papers) == 0 {
		log.Error("No papers found. Exiting.", nil)
		return nil
	}

	if writer != nil {
		return output.SaveToTable(writer, papers, opts.File, log)
	}
	if opts.JSON {
		return output.FormatJSON(papers, stdout)
	}
	output.FormatList(papers, stdout)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
