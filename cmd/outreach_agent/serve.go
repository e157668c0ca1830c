package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medley/agentic-sales-framework-sub000/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveBootstrap  bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the pipeline over REST. Requires DATABASE_URL,
GEMINI_API_KEY and JWT_SECRET in the environment. Operator tokens are minted
out of band; --bootstrap-token prints a fresh one at startup.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to policy config JSON (optional, built-in defaults otherwise)")
	serveCmd.Flags().BoolVar(&serveBootstrap, "bootstrap-token", false, "Print a fresh operator token at startup")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(serveConfigPath, serveVerbose)
	if err != nil {
		return err
	}

	apiKey := resolveAPIKey("")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	databaseURL := resolveDatabaseURL("")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	runner, client, st, err := buildRunner(ctx, cfg, apiKey, databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	if st == nil {
		return fmt.Errorf("database connection is required for serve mode")
	}

	srv, err := server.New(server.Config{Port: servePort}, runner, st)
	if err != nil {
		st.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	if serveBootstrap {
		token, err := srv.JWT().GenerateToken(uuid.New())
		if err != nil {
			st.Close()
			return fmt.Errorf("failed to mint bootstrap token: %w", err)
		}
		fmt.Printf("Bootstrap operator token:\n%s\n", token)
	}

	return srv.Start()
}
