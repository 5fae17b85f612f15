package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var showCharacterID string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a character sheet",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showCharacterID, "id", "", "Character ID (required)")
	_ = showCmd.MarkFlagRequired("id")
}

func runShow(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	output, err := orc.GetCharacter(context.Background(), &character.GetCharacterInput{
		CharacterID: showCharacterID,
	})
	if err != nil {
		return err
	}

	cmd.Print(renderCharacter(output.Character))
	return nil
}

// renderCharacter formats a character sheet for terminal output
func renderCharacter(char *dnd5e.Character) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (level %d)\n", char.Name, char.Level)
	fmt.Fprintf(&b, "  Race:       %s\n", renderSelection(char.Race))
	fmt.Fprintf(&b, "  Class:      %s\n", renderSelection(char.Class))
	fmt.Fprintf(&b, "  Background: %s\n", renderSelection(char.Background))

	b.WriteString("  Abilities:\n")
	for _, ability := range dnd5e.Abilities {
		score := char.AbilityScores.Get(ability)
		for _, bonus := range char.AbilityBonuses {
			if bonus.Ability == ability {
				score += bonus.Amount
			}
		}
		fmt.Fprintf(&b, "    %-13s %2d (%+d)\n", ability, score, dnd5e.ScoreModifier(score))
	}

	if len(char.PendingAbilityChoices) > 0 {
		fmt.Fprintf(&b, "  Pending ability choices: %d\n", len(char.PendingAbilityChoices))
	}

	for _, category := range dnd5e.Categories {
		names := char.ProficiencyNames(category)
		if set := char.OptionalProficiencies[category]; set != nil {
			names = append(names, set.Combined.Selected...)
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "  %-13s %s\n", category+":", strings.Join(names, ", "))
	}

	for _, category := range dnd5e.OptionalCategories {
		set := char.OptionalProficiencies[category]
		if set == nil || set.Combined.Allowed == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s choices: %d of %d picked\n",
			category, len(set.Combined.Selected), set.Combined.Allowed)
	}

	for className, block := range char.Spellcasting {
		if len(block.SpellSlots) == 0 {
			continue
		}
		levels := make([]int32, 0, len(block.SpellSlots))
		for lvl := range block.SpellSlots {
			levels = append(levels, lvl)
		}
		sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
		parts := make([]string, 0, len(levels))
		for _, lvl := range levels {
			slot := block.SpellSlots[lvl]
			parts = append(parts, fmt.Sprintf("L%d:%d/%d", lvl, slot.Current, slot.Max))
		}
		fmt.Fprintf(&b, "  Spell slots (%s): %s\n", className, strings.Join(parts, " "))
	}

	return b.String()
}

func renderSelection(sel dnd5e.Selection) string {
	if sel.IsZero() {
		return "-"
	}
	if sel.Variant != "" {
		return fmt.Sprintf("%s (%s)", sel.Name, sel.Variant)
	}
	return sel.Name
}
