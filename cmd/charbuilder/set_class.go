package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var (
	setClassCharacterID string
	setClassName        string
	setClassBook        string
	setClassSubclass    string
)

var setClassCmd = &cobra.Command{
	Use:   "set-class",
	Short: "Set or clear a character's class",
	Long: `Set the character's class and optional subclass. The class keeps its
current level; grants from the previous class are withdrawn. Omitting
--class clears the selection.`,
	RunE: runSetClass,
}

func init() {
	setClassCmd.Flags().StringVar(&setClassCharacterID, "id", "", "Character ID (required)")
	setClassCmd.Flags().StringVar(&setClassName, "class", "", "Class name (e.g. Fighter); empty clears")
	setClassCmd.Flags().StringVar(&setClassBook, "book", "PHB", "Source book")
	setClassCmd.Flags().StringVar(&setClassSubclass, "subclass", "", "Subclass name (e.g. Eldritch Knight)")
	_ = setClassCmd.MarkFlagRequired("id")
}

func runSetClass(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	input := &character.UpdateClassInput{CharacterID: setClassCharacterID}
	if setClassName != "" {
		input.Class = dnd5e.Selection{
			Name:    setClassName,
			Book:    setClassBook,
			Variant: setClassSubclass,
		}
	}

	output, err := orc.UpdateClass(context.Background(), input)
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	cmd.Print(renderCharacter(output.Character))
	return nil
}
