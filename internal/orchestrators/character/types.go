package character

import (
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
)

// Warning codes
const (
	// WarningCatalogueMiss marks a selection referencing content outside
	// the allowed rule-book sources; grants were skipped, not failed
	WarningCatalogueMiss = "catalogue_miss"
)

// Warning reports a non-fatal condition from a reconciliation pass
type Warning struct {
	Code    string
	Message string
}

// CreateCharacterInput holds the data for a new character
type CreateCharacterInput struct {
	PlayerID      string
	Name          string
	AbilityScores dnd5e.AbilityScores
}

// CreateCharacterOutput returns the created character
type CreateCharacterOutput struct {
	Character *dnd5e.Character
}

// GetCharacterInput identifies a character to load
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput returns the loaded character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// DeleteCharacterInput identifies a character to remove
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput is empty; deletion returns no data
type DeleteCharacterOutput struct{}

// ListCharactersInput identifies the player whose characters to list
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput returns the player's characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// UpdateRaceInput carries a race selection. A zero Selection deselects,
// withdrawing every race and subrace grant.
type UpdateRaceInput struct {
	CharacterID string
	Race        dnd5e.Selection
}

// UpdateRaceOutput returns the reconciled character
type UpdateRaceOutput struct {
	Character *dnd5e.Character
	Warnings  []Warning
}

// UpdateClassInput carries a class selection. Variant names the subclass.
type UpdateClassInput struct {
	CharacterID string
	Class       dnd5e.Selection
}

// UpdateClassOutput returns the reconciled character
type UpdateClassOutput struct {
	Character *dnd5e.Character
	Warnings  []Warning
}

// UpdateBackgroundInput carries a background selection. Variant names the
// background variant.
type UpdateBackgroundInput struct {
	CharacterID string
	Background  dnd5e.Selection
}

// UpdateBackgroundOutput returns the reconciled character
type UpdateBackgroundOutput struct {
	Character *dnd5e.Character
	Warnings  []Warning
}

// SelectProficienciesInput records a player's picks for one source's
// optional-proficiency slots
type SelectProficienciesInput struct {
	CharacterID string
	Category    dnd5e.ProficiencyCategory
	Source      dnd5e.Source
	Selected    []string
}

// SelectProficienciesOutput returns the character with the recombined view
type SelectProficienciesOutput struct {
	Character *dnd5e.Character
}

// IncreaseLevelInput raises the character level by one. ClassName is
// required for multiclass characters; RollHitPoints rolls the gained
// level's hit die instead of taking the average.
type IncreaseLevelInput struct {
	CharacterID   string
	ClassName     string
	RollHitPoints bool
}

// IncreaseLevelOutput returns the leveled character
type IncreaseLevelOutput struct {
	Character    *dnd5e.Character
	HitPointRoll int32
	ASILevels    []int32
	Warnings     []Warning
}

// DecreaseLevelInput lowers the character level by one
type DecreaseLevelInput struct {
	CharacterID string
	ClassName   string
}

// DecreaseLevelOutput returns the leveled character
type DecreaseLevelOutput struct {
	Character *dnd5e.Character
	Warnings  []Warning
}
