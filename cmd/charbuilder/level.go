package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberforge/charbuilder/internal/orchestrators/character"
)

var (
	levelUpCharacterID string
	levelUpClass       string
	levelUpRoll        bool

	levelDownCharacterID string
	levelDownClass       string
)

var levelUpCmd = &cobra.Command{
	Use:   "level-up",
	Short: "Raise the character level by one",
	Long: `Raise the character level by one. Multiclass characters must name the
class gaining the level with --class. With --roll the gained level's hit
die is rolled; otherwise the average is used.`,
	RunE: runLevelUp,
}

var levelDownCmd = &cobra.Command{
	Use:   "level-down",
	Short: "Lower the character level by one",
	RunE:  runLevelDown,
}

func init() {
	levelUpCmd.Flags().StringVar(&levelUpCharacterID, "id", "", "Character ID (required)")
	levelUpCmd.Flags().StringVar(&levelUpClass, "class", "", "Class gaining the level (required for multiclass)")
	levelUpCmd.Flags().BoolVar(&levelUpRoll, "roll", false, "Roll the hit die instead of taking the average")
	_ = levelUpCmd.MarkFlagRequired("id")

	levelDownCmd.Flags().StringVar(&levelDownCharacterID, "id", "", "Character ID (required)")
	levelDownCmd.Flags().StringVar(&levelDownClass, "class", "", "Class losing the level (required for multiclass)")
	_ = levelDownCmd.MarkFlagRequired("id")
}

func runLevelUp(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	output, err := orc.IncreaseLevel(context.Background(), &character.IncreaseLevelInput{
		CharacterID:   levelUpCharacterID,
		ClassName:     levelUpClass,
		RollHitPoints: levelUpRoll,
	})
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	cmd.Printf("%s is now level %d\n", output.Character.Name, output.Character.Level)
	if output.HitPointRoll > 0 {
		cmd.Printf("Rolled %d for hit points\n", output.HitPointRoll)
	}
	if len(output.ASILevels) > 0 {
		parts := make([]string, len(output.ASILevels))
		for i, lvl := range output.ASILevels {
			parts[i] = fmt.Sprintf("%d", lvl)
		}
		cmd.Printf("Ability score improvements at levels: %s\n", strings.Join(parts, ", "))
	}
	return nil
}

func runLevelDown(cmd *cobra.Command, _ []string) error {
	orc, err := newOrchestrator()
	if err != nil {
		return err
	}

	output, err := orc.DecreaseLevel(context.Background(), &character.DecreaseLevelInput{
		CharacterID: levelDownCharacterID,
		ClassName:   levelDownClass,
	})
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	cmd.Printf("%s is now level %d\n", output.Character.Name, output.Character.Level)
	return nil
}
