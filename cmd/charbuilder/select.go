package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var (
	selectCharacterID string
	selectCategory    string
	selectSource      string
	selectNames       []string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Record proficiency picks for one source's choice slots",
	Long: `Record the picks for one source's optional proficiency slots, e.g. the
two skills a Fighter chooses at level 1:

  charbuilder select --id <id> --category skills --source class --pick Athletics --pick Perception`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&selectCharacterID, "id", "", "Character ID (required)")
	selectCmd.Flags().StringVar(&selectCategory, "category", "", "Category: skills, tools, or languages (required)")
	selectCmd.Flags().StringVar(&selectSource, "source", "", "Source: race, class, or background (required)")
	selectCmd.Flags().StringArrayVar(&selectNames, "pick", nil, "Proficiency to pick (repeatable)")
	_ = selectCmd.MarkFlagRequired("id")
	_ = selectCmd.MarkFlagRequired("category")
	_ = selectCmd.MarkFlagRequired("source")
}

func runSelect(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	output, err := orc.SelectProficiencies(context.Background(), &character.SelectProficienciesInput{
		CharacterID: selectCharacterID,
		Category:    dnd5e.ProficiencyCategory(selectCategory),
		Source:      dnd5e.Source(selectSource),
		Selected:    selectNames,
	})
	if err != nil {
		return err
	}

	cmd.Print(renderCharacter(output.Character))
	return nil
}
