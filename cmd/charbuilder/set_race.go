package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var (
	setRaceCharacterID string
	setRaceName        string
	setRaceBook        string
	setRaceSubrace     string
)

var setRaceCmd = &cobra.Command{
	Use:   "set-race",
	Short: "Set or clear a character's race",
	Long: `Set the character's race and optional subrace. Grants from the previous
race are withdrawn and still-valid proficiency picks are kept. Omitting
--race clears the selection.`,
	RunE: runSetRace,
}

func init() {
	setRaceCmd.Flags().StringVar(&setRaceCharacterID, "id", "", "Character ID (required)")
	setRaceCmd.Flags().StringVar(&setRaceName, "race", "", "Race name (e.g. Elf); empty clears")
	setRaceCmd.Flags().StringVar(&setRaceBook, "book", "PHB", "Source book")
	setRaceCmd.Flags().StringVar(&setRaceSubrace, "subrace", "", "Subrace name (e.g. High Elf)")
	_ = setRaceCmd.MarkFlagRequired("id")
}

func runSetRace(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	input := &character.UpdateRaceInput{CharacterID: setRaceCharacterID}
	if setRaceName != "" {
		input.Race = dnd5e.Selection{
			Name:    setRaceName,
			Book:    setRaceBook,
			Variant: setRaceSubrace,
		}
	}

	output, err := orc.UpdateRace(context.Background(), input)
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	cmd.Print(renderCharacter(output.Character))
	return nil
}
