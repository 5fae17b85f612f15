// Package character implements the character orchestrator: the workflow
// that reconciles race, class, and background selections into a consistent
// character record and drives level progression.
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/emberforge/charbuilder/internal/engine/progression"
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/errors"
	"github.com/emberforge/charbuilder/internal/pkg/idgen"
	characterrepo "github.com/emberforge/charbuilder/internal/repositories/character"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// characterUpdatedEvent is published after every reconciliation or level
// change; only fully-applied states are announced, never partial ones.
const characterUpdatedEvent = "character.updated"

// Config holds the dependencies for the character orchestrator
type Config struct {
	Catalogue     rulebook.Catalogue
	CharacterRepo characterrepo.Repository
	Ledger        *progression.Ledger
	EventBus      events.EventBus
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalogue == nil {
		vb.RequiredField("Catalogue")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}

	return vb.Build()
}

// Orchestrator owns the Character record for the duration of each call;
// callers must not mutate it concurrently.
type Orchestrator struct {
	catalogue     rulebook.Catalogue
	characterRepo characterrepo.Repository
	ledger        *progression.Ledger
	eventBus      events.EventBus
	idGen         idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("char")
	}

	return &Orchestrator{
		catalogue:     cfg.Catalogue,
		characterRepo: cfg.CharacterRepo,
		ledger:        cfg.Ledger,
		eventBus:      cfg.EventBus,
		idGen:         gen,
	}, nil
}

// CreateCharacter creates a new level 1 character with no selections
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char := &dnd5e.Character{
		ID:            o.idGen.Generate(),
		PlayerID:      input.PlayerID,
		Name:          input.Name,
		Level:         dnd5e.MinCharacterLevel,
		AbilityScores: input.AbilityScores,
	}

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	o.publishUpdated(ctx, char)
	return &CreateCharacterOutput{Character: char}, nil
}

// GetCharacter loads a character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetCharacterOutput{Character: getOutput.Character}, nil
}

// ListCharacters lists a player's characters
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &DeleteCharacterOutput{}, nil
}

// SelectProficiencies records a player's picks for one source's optional
// slots, enforcing the allowed count and option list, then recombines.
func (o *Orchestrator) SelectProficiencies(ctx context.Context, input *SelectProficienciesInput) (*SelectProficienciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := o.applyProficiencySelection(char, input.Category, input.Source, input.Selected); err != nil {
		return nil, err
	}

	if err := o.saveAndPublish(ctx, char); err != nil {
		return nil, err
	}
	return &SelectProficienciesOutput{Character: char}, nil
}

// IncreaseLevel raises the character level by one and recomputes derived
// progression state. A level past 20 does not apply and is reported as a
// warning, leaving the character untouched.
func (o *Orchestrator) IncreaseLevel(ctx context.Context, input *IncreaseLevelInput) (*IncreaseLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	output := &IncreaseLevelOutput{Character: char}

	if err := o.ledger.IncreaseLevel(char, input.ClassName); err != nil {
		if errors.IsOutOfRange(err) {
			output.Warnings = append(output.Warnings, Warning{
				Code:    errors.CodeOutOfRange.String(),
				Message: err.Error(),
			})
			return output, nil
		}
		return nil, err
	}

	if input.RollHitPoints {
		className := input.ClassName
		if className == "" && len(char.Progression.Classes) == 1 {
			className = char.Progression.Classes[0].Name
		}
		if className != "" {
			rolled, err := o.ledger.RecordHitPointRoll(char, className)
			if err != nil {
				return nil, err
			}
			output.HitPointRoll = rolled
		}
	}

	warnings, err := o.refreshProgression(ctx, char, output)
	if err != nil {
		return nil, err
	}
	output.Warnings = append(output.Warnings, warnings...)

	if err := o.saveAndPublish(ctx, char); err != nil {
		return nil, err
	}
	return output, nil
}

// DecreaseLevel lowers the character level by one. Dropping below 1 does
// not apply and is reported as a warning.
func (o *Orchestrator) DecreaseLevel(ctx context.Context, input *DecreaseLevelInput) (*DecreaseLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	output := &DecreaseLevelOutput{Character: char}

	if err := o.ledger.DecreaseLevel(char, input.ClassName); err != nil {
		if errors.IsOutOfRange(err) {
			output.Warnings = append(output.Warnings, Warning{
				Code:    errors.CodeOutOfRange.String(),
				Message: err.Error(),
			})
			return output, nil
		}
		return nil, err
	}

	warnings, err := o.refreshProgression(ctx, char, nil)
	if err != nil {
		return nil, err
	}
	output.Warnings = append(output.Warnings, warnings...)

	if err := o.saveAndPublish(ctx, char); err != nil {
		return nil, err
	}
	return output, nil
}

// refreshProgression recomputes spell slots and (when output is non-nil)
// the character-wide ASI schedule from the catalogue's class definitions.
func (o *Orchestrator) refreshProgression(ctx context.Context, char *dnd5e.Character, output *IncreaseLevelOutput) ([]Warning, error) {
	var warnings []Warning

	defs := make(map[string]*rulebook.ClassDef, len(char.Progression.Classes))
	var defList []*rulebook.ClassDef
	for i := range char.Progression.Classes {
		entry := &char.Progression.Classes[i]
		def, err := o.catalogue.GetClass(ctx, rulebook.Key{Name: entry.Name, Book: char.Class.Book})
		if err != nil {
			if errors.IsNotFound(err) {
				warnings = append(warnings, Warning{
					Code:    WarningCatalogueMiss,
					Message: err.Error(),
				})
				continue
			}
			return nil, errors.Wrapf(err, "failed to look up class %s", entry.Name)
		}
		defs[entry.Name] = o.effectiveClassDef(ctx, char, entry, def)
		defList = append(defList, def)
	}

	progression.UpdateSpellSlots(char, defs)

	if output != nil {
		output.ASILevels = progression.UnionASILevels(defList...)
	}
	return warnings, nil
}

// effectiveClassDef applies the subclass's caster-tier override, if any
func (o *Orchestrator) effectiveClassDef(ctx context.Context, char *dnd5e.Character, entry *dnd5e.ClassLevel, def *rulebook.ClassDef) *rulebook.ClassDef {
	if entry.Subclass == "" {
		return def
	}

	subclasses, err := o.catalogue.GetSubclasses(ctx, rulebook.Key{Name: def.Name, Book: char.Class.Book})
	if err != nil {
		return def
	}
	for _, sub := range subclasses {
		if sub.Name == entry.Subclass && sub.Caster != "" {
			adjusted := *def
			adjusted.Caster = sub.Caster
			return &adjusted
		}
	}
	return def
}

func (o *Orchestrator) loadCharacter(ctx context.Context, id string) (*dnd5e.Character, error) {
	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	return getOutput.Character, nil
}

func (o *Orchestrator) saveAndPublish(ctx context.Context, char *dnd5e.Character) error {
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
		return errors.Wrap(err, "failed to save character")
	}
	o.publishUpdated(ctx, char)
	return nil
}

// characterEntity adapts a character to the event bus's entity contract
type characterEntity struct {
	char *dnd5e.Character
}

var _ core.Entity = (*characterEntity)(nil)

// GetID returns the character's ID
func (e *characterEntity) GetID() string {
	return e.char.ID
}

// GetType returns the entity type for the event bus
func (e *characterEntity) GetType() string {
	return "character"
}

// publishUpdated announces the fully-applied character state. Publish
// failures are logged, never surfaced; notification is best-effort.
func (o *Orchestrator) publishUpdated(ctx context.Context, char *dnd5e.Character) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(characterUpdatedEvent, &characterEntity{char: char}, nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish character update",
			"character_id", char.ID,
			"error", err.Error())
	}
}
