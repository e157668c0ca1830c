// Package main provides the entry point for the outreach agent CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outreach_agent",
	Short: "Personalized outreach decision and enforcement pipeline",
	Long:  "Outreach agent turns raw prospect research into validated, persona-safe outbound messages: signal extraction, persona resolution, confidence gating, strategy selection, generation, and a bounded validate/repair loop.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
