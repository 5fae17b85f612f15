package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var listPlayerID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's characters",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listPlayerID, "player-id", "", "Player ID (required)")
	_ = listCmd.MarkFlagRequired("player-id")
}

func runList(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	output, err := orc.ListCharacters(context.Background(), &character.ListCharactersInput{
		PlayerID: listPlayerID,
	})
	if err != nil {
		return err
	}

	if len(output.Characters) == 0 {
		cmd.Println("No characters found")
		return nil
	}
	for _, char := range output.Characters {
		cmd.Printf("%s  %-20s level %-2d %s\n",
			char.ID, char.Name, char.Level, renderSelection(char.Class))
	}
	return nil
}
