package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var deleteCharacterID string

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a character",
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteCharacterID, "id", "", "Character ID (required)")
	_ = deleteCmd.MarkFlagRequired("id")
}

func runDelete(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	if _, err := orc.DeleteCharacter(context.Background(), &character.DeleteCharacterInput{
		CharacterID: deleteCharacterID,
	}); err != nil {
		return err
	}

	cmd.Printf("Deleted character %s\n", deleteCharacterID)
	return nil
}
