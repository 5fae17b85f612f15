package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var (
	createPlayerID string
	createName     string
	createScores   []int32
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new level 1 character",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createPlayerID, "player-id", "", "Player ID (required)")
	createCmd.Flags().StringVar(&createName, "name", "", "Character name (required)")
	createCmd.Flags().Int32SliceVar(&createScores, "scores", nil,
		"Ability scores as Str,Dex,Con,Int,Wis,Cha (e.g. 15,14,13,12,10,8)")
	_ = createCmd.MarkFlagRequired("player-id")
	_ = createCmd.MarkFlagRequired("name")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	input := &character.CreateCharacterInput{
		PlayerID: createPlayerID,
		Name:     createName,
	}
	if len(createScores) == 6 {
		input.AbilityScores = dnd5e.AbilityScores{
			Strength:     createScores[0],
			Dexterity:    createScores[1],
			Constitution: createScores[2],
			Intelligence: createScores[3],
			Wisdom:       createScores[4],
			Charisma:     createScores[5],
		}
	}

	output, err := orc.CreateCharacter(context.Background(), input)
	if err != nil {
		return err
	}

	cmd.Printf("Created character %s (%s)\n", output.Character.Name, output.Character.ID)
	return nil
}
