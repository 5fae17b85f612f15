package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var (
	setBackgroundCharacterID string
	setBackgroundName        string
	setBackgroundBook        string
	setBackgroundVariant     string
)

var setBackgroundCmd = &cobra.Command{
	Use:   "set-background",
	Short: "Set or clear a character's background",
	RunE:  runSetBackground,
}

func init() {
	setBackgroundCmd.Flags().StringVar(&setBackgroundCharacterID, "id", "", "Character ID (required)")
	setBackgroundCmd.Flags().StringVar(&setBackgroundName, "background", "", "Background name (e.g. Soldier); empty clears")
	setBackgroundCmd.Flags().StringVar(&setBackgroundBook, "book", "PHB", "Source book")
	setBackgroundCmd.Flags().StringVar(&setBackgroundVariant, "variant", "", "Background variant (e.g. Spy)")
	_ = setBackgroundCmd.MarkFlagRequired("id")
}

func runSetBackground(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	input := &character.UpdateBackgroundInput{CharacterID: setBackgroundCharacterID}
	if setBackgroundName != "" {
		input.Background = dnd5e.Selection{
			Name:    setBackgroundName,
			Book:    setBackgroundBook,
			Variant: setBackgroundVariant,
		}
	}

	output, err := orc.UpdateBackground(context.Background(), input)
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	cmd.Print(renderCharacter(output.Character))
	return nil
}
