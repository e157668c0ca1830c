package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/medley/agentic-sales-framework-sub000/internal/config"
	"github.com/medley/agentic-sales-framework-sub000/internal/llm"
	"github.com/medley/agentic-sales-framework-sub000/internal/pipeline"
	"github.com/medley/agentic-sales-framework-sub000/internal/store"
)

// loadConfig loads the policy configuration, falling back to built-in
// defaults when no path is given.
func loadConfig(path string, verbose bool) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		cfg.Verbose = verbose
		return cfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Verbose = cfg.Verbose || verbose
	if verbose {
		fmt.Printf("Loaded config from: %s\n", path)
	}
	return cfg, nil
}

// loadProspects reads prospect input from a JSON file holding either a
// single prospect object or an array of them.
func loadProspects(path string) ([]pipeline.Prospect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prospects file %s: %w", path, err)
	}

	var batch []pipeline.Prospect
	if err := json.Unmarshal(data, &batch); err == nil {
		return batch, nil
	}

	var single pipeline.Prospect
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse prospects file %s: %w", path, err)
	}
	return []pipeline.Prospect{single}, nil
}

// resolveAPIKey returns the flag value, or the GEMINI_API_KEY env var
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// resolveDatabaseURL returns the flag value, or the DATABASE_URL env var
func resolveDatabaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

// buildRunner wires a pipeline runner from config. An empty apiKey yields a
// brief-only runner; an empty databaseURL skips persistence.
func buildRunner(ctx context.Context, cfg *config.Config, apiKey, databaseURL string) (*pipeline.Runner, llm.Client, *store.Store, error) {
	var client llm.Client
	if apiKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	var st *store.Store
	if databaseURL != "" {
		var err error
		st, err = store.Connect(ctx, databaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without persistence...\n")
			st = nil
		}
	}

	runner, err := pipeline.NewRunner(cfg, client, st)
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		if st != nil {
			st.Close()
		}
		return nil, nil, nil, err
	}
	return runner, client, st, nil
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
