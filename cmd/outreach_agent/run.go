package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full outreach pipeline for one or more prospects",
	Long: `Runs the entire decision and enforcement pipeline for each prospect in the
input file: signal extraction -> persona resolution -> confidence -> strategy
-> brief assembly -> generation -> validation and repair.

The input file holds either a single prospect JSON object or an array of them.
Policy configuration can be loaded from a JSON file using --config; built-in
defaults are used otherwise.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runProspects   string
	runAPIKey      string
	runDatabaseURL string
	runConcurrency int
	runVerbose     bool
	runFetchCites  bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to policy config JSON (optional, built-in defaults otherwise)")
	runCommand.Flags().StringVarP(&runProspects, "prospects", "p", "", "Path to prospect JSON file (single object or array)")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runCommand.Flags().IntVar(&runConcurrency, "concurrency", 0, "Concurrent prospects in a batch (0 = default)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().BoolVar(&runFetchCites, "fetch-citations", false, "Fetch citation URLs over HTTP to verify and enrich citation text")

	_ = runCommand.MarkFlagRequired("prospects")
	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(runConfigPath, runVerbose)
	if err != nil {
		return err
	}
	cfg.FetchCitations = cfg.FetchCitations || runFetchCites

	prospects, err := loadProspects(runProspects)
	if err != nil {
		return err
	}
	if len(prospects) == 0 {
		return fmt.Errorf("prospects file %s holds no prospects", runProspects)
	}

	apiKey := resolveAPIKey(runAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required: pass --api-key or set GEMINI_API_KEY")
	}

	runner, client, st, err := buildRunner(ctx, cfg, apiKey, resolveDatabaseURL(runDatabaseURL))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
		if st != nil {
			st.Close()
		}
	}()

	if len(prospects) == 1 {
		result, err := runner.Run(ctx, prospects[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	}

	items := runner.RunBatch(ctx, prospects, runConcurrency)

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	fmt.Printf("Batch complete: %d prospects, %d failed\n", len(items), failed)
	return printJSON(items)
}
