package abilities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/charbuilder/internal/engine/abilities"
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

func TestResolve_FixedBonuses(t *testing.T) {
	race := &rulebook.RaceDef{
		Name: "Dwarf",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{dnd5e.AbilityConstitution: 2}},
		},
	}

	res := abilities.Resolve(race, nil)

	require.Len(t, res.Fixed, 1)
	assert.Equal(t, dnd5e.AbilityConstitution, res.Fixed[0].Ability)
	assert.Equal(t, int32(2), res.Fixed[0].Value)
	assert.Equal(t, dnd5e.SourceRace, res.Fixed[0].Source)
	assert.Empty(t, res.Choices)
}

func TestResolve_FixedOrderFollowsAbilityOrder(t *testing.T) {
	// Map iteration order must not leak into the result.
	race := &rulebook.RaceDef{
		Name: "Half-Orc",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{
				dnd5e.AbilityConstitution: 1,
				dnd5e.AbilityStrength:     2,
			}},
		},
	}

	res := abilities.Resolve(race, nil)

	require.Len(t, res.Fixed, 2)
	assert.Equal(t, dnd5e.AbilityStrength, res.Fixed[0].Ability)
	assert.Equal(t, dnd5e.AbilityConstitution, res.Fixed[1].Ability)
}

func TestResolve_BaseAbilityBonus(t *testing.T) {
	race := &rulebook.RaceDef{
		Name: "Mountain Folk",
		BaseAbilityBonus: &dnd5e.AbilityOption{
			Ability: dnd5e.AbilityStrength,
			Amount:  2,
		},
	}

	res := abilities.Resolve(race, nil)

	require.Len(t, res.Fixed, 1)
	assert.Equal(t, dnd5e.AbilityStrength, res.Fixed[0].Ability)
	assert.Equal(t, int32(2), res.Fixed[0].Value)
	assert.Empty(t, res.Choices)
}

func TestResolve_ChoiceDefaults(t *testing.T) {
	race := &rulebook.RaceDef{
		Name: "Half-Elf",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{dnd5e.AbilityCharisma: 2}},
			{Choose: &rulebook.AbilityChoice{Count: 2, Amount: 1}},
		},
	}

	res := abilities.Resolve(race, nil)

	require.Len(t, res.Choices, 1)
	choice := res.Choices[0]
	assert.Equal(t, int32(2), choice.Count)
	assert.Equal(t, int32(1), choice.Amount)
	assert.Equal(t, dnd5e.Abilities, choice.From, "empty From defaults to all six abilities")
}

func TestResolve_ZeroCountAndAmountDefaultToOne(t *testing.T) {
	race := &rulebook.RaceDef{
		Name: "Custom",
		AbilityEntries: []rulebook.AbilityEntry{
			{Choose: &rulebook.AbilityChoice{}},
		},
	}

	res := abilities.Resolve(race, nil)

	require.Len(t, res.Choices, 1)
	assert.Equal(t, int32(1), res.Choices[0].Count)
	assert.Equal(t, int32(1), res.Choices[0].Amount)
}

func TestResolve_WeightedChoiceIsIndivisible(t *testing.T) {
	race := &rulebook.RaceDef{
		Name: "Feytouched",
		AbilityEntries: []rulebook.AbilityEntry{
			{Choose: &rulebook.AbilityChoice{
				Count: 2,
				Weighted: map[string]int32{
					dnd5e.AbilityStrength:  2,
					dnd5e.AbilityDexterity: 1,
				},
			}},
		},
	}

	res := abilities.Resolve(race, nil)

	require.Len(t, res.Choices, 1)
	choice := res.Choices[0]
	assert.Equal(t, int32(1), choice.Count, "weighted choices collapse to one pick")
	assert.Equal(t, int32(0), choice.Amount)
	require.Len(t, choice.Weighted, 2)
	assert.Equal(t, dnd5e.AbilityStrength, choice.Weighted[0].Ability)
	assert.Equal(t, int32(2), choice.Weighted[0].Amount)
	assert.Equal(t, dnd5e.AbilityDexterity, choice.Weighted[1].Ability)
	assert.Equal(t, int32(1), choice.Weighted[1].Amount)
}

func TestResolve_EmptyRaceSynthesizesChooseOne(t *testing.T) {
	race := &rulebook.RaceDef{Name: "Homebrew"}

	res := abilities.Resolve(race, nil)

	assert.Empty(t, res.Fixed)
	require.Len(t, res.Choices, 1)
	assert.Equal(t, int32(1), res.Choices[0].Count)
	assert.Equal(t, int32(2), res.Choices[0].Amount)
	assert.Equal(t, dnd5e.Abilities, res.Choices[0].From)
}

func TestResolve_SubraceEntriesFollowRace(t *testing.T) {
	race := &rulebook.RaceDef{
		Name: "Elf",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{dnd5e.AbilityDexterity: 2}},
		},
	}
	subrace := &rulebook.SubraceDef{
		Name: "High Elf",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{dnd5e.AbilityIntelligence: 1}},
		},
	}

	res := abilities.Resolve(race, subrace)

	require.Len(t, res.Fixed, 2)
	assert.Equal(t, dnd5e.SourceRace, res.Fixed[0].Source)
	assert.Equal(t, dnd5e.SourceSubrace, res.Fixed[1].Source)
	assert.Equal(t, dnd5e.AbilityIntelligence, res.Fixed[1].Ability)
}

func TestResolve_NilRace(t *testing.T) {
	res := abilities.Resolve(nil, nil)

	assert.Empty(t, res.Fixed)
	assert.Empty(t, res.Choices)
}
