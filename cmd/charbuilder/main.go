// Package main is the entry point for the charbuilder CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/config"
	"github.com/emberforge/charbuilder/internal/engine/progression"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
	"github.com/emberforge/charbuilder/internal/redis"
	characterrepo "github.com/emberforge/charbuilder/internal/repositories/character"
	"github.com/emberforge/charbuilder/internal/rulebook/external"
)

var rootCmd = &cobra.Command{
	Use:   "charbuilder",
	Short: "D&D 5e character builder",
	Long:  `charbuilder builds and levels D&D 5e characters, resolving racial ability bonuses, proficiency choices, and multiclass progression.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(setRaceCmd)
	rootCmd.AddCommand(setClassCmd)
	rootCmd.AddCommand(setBackgroundCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(levelUpCmd)
	rootCmd.AddCommand(levelDownCmd)
}

// newOrchestrator wires the engine from environment configuration
func newOrchestrator() (*character.Orchestrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}

	catalogue, err := external.New(&external.Config{
		BaseURL:     cfg.CatalogueBaseURL,
		HTTPTimeout: cfg.CatalogueTimeout,
		CacheTTL:    cfg.CatalogueCacheTTL,
	})
	if err != nil {
		return nil, err
	}

	return character.New(&character.Config{
		Catalogue:     catalogue,
		CharacterRepo: repo,
		Ledger:        progression.NewLedger(nil),
		EventBus:      events.NewBus(),
	})
}

func printWarnings(warnings []character.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning (%s): %s\n", w.Code, w.Message)
	}
}
