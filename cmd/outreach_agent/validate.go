package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medley/agentic-sales-framework-sub000/internal/repair"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a draft message against a prospect's brief",
	Long: `Assembles the decision brief for a prospect, then runs the full validator
suite over an externally drafted message. With --repair the bounded repair
loop is applied to recognized failures before the final verdict.

The message file is JSON: {"subject": "...", "body": "...", "used_signal_ids": ["sig-1"]}.`,
	RunE: runValidateCmd,
}

var (
	validateConfigPath string
	validateProspect   string
	validateMessage    string
	validateRepair     bool
	validateVerbose    bool
)

func init() {
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to policy config JSON (optional, built-in defaults otherwise)")
	validateCommand.Flags().StringVarP(&validateProspect, "prospect", "p", "", "Path to a single-prospect JSON file")
	validateCommand.Flags().StringVarP(&validateMessage, "message", "m", "", "Path to the draft message JSON file")
	validateCommand.Flags().BoolVar(&validateRepair, "repair", false, "Apply the bounded repair loop to recognized failures")
	validateCommand.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = validateCommand.MarkFlagRequired("prospect")
	_ = validateCommand.MarkFlagRequired("message")
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(validateConfigPath, validateVerbose)
	if err != nil {
		return err
	}

	prospects, err := loadProspects(validateProspect)
	if err != nil {
		return err
	}
	if len(prospects) != 1 {
		return fmt.Errorf("validate expects exactly one prospect, got %d", len(prospects))
	}

	data, err := os.ReadFile(validateMessage)
	if err != nil {
		return fmt.Errorf("failed to read message file %s: %w", validateMessage, err)
	}
	var candidate types.MessageCandidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		return fmt.Errorf("failed to parse message file %s: %w", validateMessage, err)
	}
	if candidate.ID == "" {
		candidate.ID = "draft-1"
	}

	// Brief-only run reproduces the decision record the draft is judged
	// against.
	runner, _, _, err := buildRunner(ctx, cfg, "", "")
	if err != nil {
		return err
	}
	result, err := runner.Run(ctx, prospects[0])
	if err != nil {
		return err
	}

	if validateRepair {
		engine := repair.NewEngine(cfg.Suite(), cfg.MaxRepairs)
		outcome := engine.Run(candidate, result.Brief)
		return printJSON(map[string]any{
			"status":    outcome.Status,
			"candidate": outcome.Candidate,
			"report":    outcome.Report,
			"attempts":  outcome.Attempts,
		})
	}

	report := cfg.Suite().Validate(candidate, result.Brief)
	return printJSON(report)
}
