package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/charbuilder/internal/engine/progression"
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

func TestCombinedCasterLevel(t *testing.T) {
	testCases := []struct {
		name    string
		entries []progression.CasterEntry
		want    int32
	}{
		{
			name:    "single full caster",
			entries: []progression.CasterEntry{{Tier: dnd5e.CasterFull, Level: 5}},
			want:    5,
		},
		{
			name: "paladin 6 sorcerer 6",
			entries: []progression.CasterEntry{
				{Tier: dnd5e.CasterHalf, Level: 6},
				{Tier: dnd5e.CasterFull, Level: 6},
			},
			want: 9,
		},
		{
			name: "third caster floors",
			entries: []progression.CasterEntry{
				{Tier: dnd5e.CasterThird, Level: 5},
			},
			want: 1,
		},
		{
			name: "pact contributes nothing",
			entries: []progression.CasterEntry{
				{Tier: dnd5e.CasterPact, Level: 10},
				{Tier: dnd5e.CasterFull, Level: 3},
			},
			want: 3,
		},
		{
			name: "non-caster contributes nothing",
			entries: []progression.CasterEntry{
				{Tier: dnd5e.CasterNone, Level: 12},
			},
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, progression.CombinedCasterLevel(tc.entries))
		})
	}
}

func TestStandardSlots(t *testing.T) {
	assert.Equal(t, map[int32]int32{1: 2}, progression.StandardSlots(1))
	assert.Equal(t, map[int32]int32{1: 4, 2: 3, 3: 3, 4: 3, 5: 1}, progression.StandardSlots(9))
	assert.Equal(t,
		map[int32]int32{1: 4, 2: 3, 3: 3, 4: 3, 5: 3, 6: 2, 7: 2, 8: 1, 9: 1},
		progression.StandardSlots(20))

	assert.Empty(t, progression.StandardSlots(0))
	assert.Empty(t, progression.StandardSlots(21))
}

func TestPactSlots(t *testing.T) {
	count, level := progression.PactSlots(1)
	assert.Equal(t, int32(1), count)
	assert.Equal(t, int32(1), level)

	count, level = progression.PactSlots(5)
	assert.Equal(t, int32(2), count)
	assert.Equal(t, int32(3), level)

	count, level = progression.PactSlots(20)
	assert.Equal(t, int32(4), count)
	assert.Equal(t, int32(5), level)

	count, level = progression.PactSlots(0)
	assert.Zero(t, count)
	assert.Zero(t, level)
}

func casterChar(classes ...dnd5e.ClassLevel) *dnd5e.Character {
	char := &dnd5e.Character{
		Spellcasting: make(map[string]*dnd5e.SpellcastingBlock),
	}
	char.Progression.Classes = classes
	for _, class := range classes {
		char.Spellcasting[class.Name] = &dnd5e.SpellcastingBlock{
			SpellSlots: make(map[int32]*dnd5e.SpellSlot),
		}
	}
	return char
}

func TestUpdateSpellSlots_StandardCastersShareCombinedRow(t *testing.T) {
	char := casterChar(
		dnd5e.ClassLevel{Name: "Paladin", Level: 6},
		dnd5e.ClassLevel{Name: "Sorcerer", Level: 6},
	)
	defs := map[string]*rulebook.ClassDef{
		"Paladin":  {Name: "Paladin", Caster: dnd5e.CasterHalf},
		"Sorcerer": {Name: "Sorcerer", Caster: dnd5e.CasterFull},
	}

	progression.UpdateSpellSlots(char, defs)

	// Combined caster level 9: up to 5th-level slots.
	want := progression.StandardSlots(9)
	for _, className := range []string{"Paladin", "Sorcerer"} {
		block := char.Spellcasting[className]
		require.Len(t, block.SpellSlots, len(want), className)
		for level, count := range want {
			require.NotNil(t, block.SpellSlots[level], className)
			assert.Equal(t, count, block.SpellSlots[level].Max, className)
			assert.Equal(t, count, block.SpellSlots[level].Current, className)
		}
	}
}

func TestUpdateSpellSlots_PactMagicStaysSeparate(t *testing.T) {
	char := casterChar(
		dnd5e.ClassLevel{Name: "Warlock", Level: 5},
		dnd5e.ClassLevel{Name: "Wizard", Level: 4},
	)
	defs := map[string]*rulebook.ClassDef{
		"Warlock": {Name: "Warlock", Caster: dnd5e.CasterPact},
		"Wizard":  {Name: "Wizard", Caster: dnd5e.CasterFull},
	}

	progression.UpdateSpellSlots(char, defs)

	warlock := char.Spellcasting["Warlock"]
	require.Len(t, warlock.SpellSlots, 1, "pact magic keeps its own table")
	require.NotNil(t, warlock.SpellSlots[3])
	assert.Equal(t, int32(2), warlock.SpellSlots[3].Max)

	// The wizard's row ignores the warlock levels entirely.
	wizard := char.Spellcasting["Wizard"]
	assert.Equal(t, progression.StandardSlots(4)[2], wizard.SpellSlots[2].Max)
	assert.Nil(t, wizard.SpellSlots[3])
}

func TestUpdateSpellSlots_ClampsAndReopens(t *testing.T) {
	char := casterChar(dnd5e.ClassLevel{Name: "Wizard", Level: 1})
	char.Spellcasting["Wizard"].SpellSlots[1] = &dnd5e.SpellSlot{Max: 4, Current: 4}
	char.Spellcasting["Wizard"].SpellSlots[5] = &dnd5e.SpellSlot{Max: 1, Current: 1}
	defs := map[string]*rulebook.ClassDef{
		"Wizard": {Name: "Wizard", Caster: dnd5e.CasterFull},
	}

	progression.UpdateSpellSlots(char, defs)

	block := char.Spellcasting["Wizard"]
	require.NotNil(t, block.SpellSlots[1])
	assert.Equal(t, int32(2), block.SpellSlots[1].Max)
	assert.Equal(t, int32(2), block.SpellSlots[1].Current, "current clamps to the new maximum")
	assert.Nil(t, block.SpellSlots[5], "slot levels no longer granted disappear")
}

func TestUpdateSpellSlots_MissingDefinitionLeavesBlockAlone(t *testing.T) {
	char := casterChar(dnd5e.ClassLevel{Name: "Wizard", Level: 3})
	char.Spellcasting["Wizard"].SpellSlots[1] = &dnd5e.SpellSlot{Max: 4, Current: 2}

	progression.UpdateSpellSlots(char, map[string]*rulebook.ClassDef{})

	assert.Equal(t, int32(4), char.Spellcasting["Wizard"].SpellSlots[1].Max)
	assert.Equal(t, int32(2), char.Spellcasting["Wizard"].SpellSlots[1].Current)
}
