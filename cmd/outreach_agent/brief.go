package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var briefCommand = &cobra.Command{
	Use:   "brief",
	Short: "Assemble decision briefs without generating messages",
	Long: `Runs the deterministic decision path only: signal extraction, persona
resolution, confidence calculation, strategy selection, and brief assembly.
No LLM calls are made, so the output is fully reproducible and suitable for
reviewing what the pipeline would decide before spending generation budget.`,
	RunE: runBriefCmd,
}

var (
	briefConfigPath  string
	briefProspects   string
	briefDatabaseURL string
	briefVerbose     bool
	briefFetchCites  bool
)

func init() {
	briefCommand.Flags().StringVar(&briefConfigPath, "config", "", "Path to policy config JSON (optional, built-in defaults otherwise)")
	briefCommand.Flags().StringVarP(&briefProspects, "prospects", "p", "", "Path to prospect JSON file (single object or array)")
	briefCommand.Flags().StringVar(&briefDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	briefCommand.Flags().BoolVarP(&briefVerbose, "verbose", "v", false, "Print detailed debug information")
	briefCommand.Flags().BoolVar(&briefFetchCites, "fetch-citations", false, "Fetch citation URLs over HTTP to verify and enrich citation text")

	_ = briefCommand.MarkFlagRequired("prospects")
	rootCmd.AddCommand(briefCommand)
}

func runBriefCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(briefConfigPath, briefVerbose)
	if err != nil {
		return err
	}
	cfg.FetchCitations = cfg.FetchCitations || briefFetchCites

	prospects, err := loadProspects(briefProspects)
	if err != nil {
		return err
	}
	if len(prospects) == 0 {
		return fmt.Errorf("prospects file %s holds no prospects", briefProspects)
	}

	// No LLM client: the runner stays in brief-only mode.
	runner, _, st, err := buildRunner(ctx, cfg, "", resolveDatabaseURL(briefDatabaseURL))
	if err != nil {
		return err
	}
	defer func() {
		if st != nil {
			st.Close()
		}
	}()

	for _, p := range prospects {
		result, err := runner.Run(ctx, p)
		if err != nil {
			fmt.Printf("Warning: prospect %s failed: %v\n", p.CompanyName, err)
			continue
		}
		if err := printJSON(result.Brief); err != nil {
			return err
		}
	}
	return nil
}
