package external

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	charbuildererrors "github.com/emberforge/charbuilder/internal/errors"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

func TestGenerateSlug(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{"Half-Orc", "half-orc"},
		{"Hill Dwarf", "hill-dwarf"},
		{"Fighter", "fighter"},
		{"Thieves' Tools", "thieves-tools"},
		{"  Wood   Elf  ", "wood-elf"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, generateSlug(tc.name), tc.name)
	}
}

func TestConvertAbilityBonuses(t *testing.T) {
	entry := convertAbilityBonuses([]*entities.AbilityBonus{
		{AbilityScore: &entities.ReferenceItem{Key: "str"}, Bonus: 2},
		{AbilityScore: &entities.ReferenceItem{Key: "con"}, Bonus: 1},
		{AbilityScore: &entities.ReferenceItem{Key: "luck"}, Bonus: 3},
		nil,
	})
	require.NotNil(t, entry)
	assert.Equal(t, map[string]int32{
		dnd5e.AbilityStrength:     2,
		dnd5e.AbilityConstitution: 1,
	}, entry.Fixed)

	assert.Nil(t, convertAbilityBonuses(nil))
}

func TestConvertChoiceOption(t *testing.T) {
	assert.Nil(t, convertChoiceOption(nil))

	choose := convertChoiceOption(&entities.ChoiceOption{
		ChoiceCount: 2,
		OptionList: &entities.OptionList{
			Options: []entities.Option{
				&entities.ReferenceOption{Reference: &entities.ReferenceItem{Name: "Skill: Athletics"}},
				&entities.ReferenceOption{Reference: &entities.ReferenceItem{Name: "Skill: History"}},
			},
		},
	})
	require.NotNil(t, choose)
	assert.Equal(t, int32(2), choose.Count)
	assert.Equal(t, []string{"Athletics", "History"}, choose.From)
}

func TestClassifyRacialProficiency(t *testing.T) {
	def := &rulebook.RaceDef{}

	classifyRacialProficiency(def, "Skill: Intimidation")
	classifyRacialProficiency(def, "Battleaxes")
	classifyRacialProficiency(def, "Smith's Tools")
	classifyRacialProficiency(def, "Light Armor")

	require.Len(t, def.SkillProficiencies, 1)
	assert.Equal(t, []string{"Intimidation"}, def.SkillProficiencies[0].Fixed)
	assert.Equal(t, []string{"Battleaxes"}, def.WeaponProficiencies)
	require.Len(t, def.ToolProficiencies, 1)
	assert.Equal(t, []string{"Smith's Tools"}, def.ToolProficiencies[0].Fixed)
	assert.Equal(t, []string{"Light Armor"}, def.ArmorProficiencies)
}

func TestLookupError(t *testing.T) {
	key := rulebook.Key{Name: "Grung", Book: "OGA"}

	err := lookupError(errors.New("unexpected status code: 404"), "race", key)
	assert.True(t, charbuildererrors.IsNotFound(err))

	err = lookupError(errors.New("connection refused"), "race", key)
	assert.True(t, charbuildererrors.IsUnavailable(err))
}

func TestBundledBackgrounds(t *testing.T) {
	c := &client{}
	ctx := context.Background()

	bg, err := c.GetBackground(ctx, rulebook.Key{Name: "Soldier", Book: "PHB"})
	require.NoError(t, err)
	assert.Equal(t, "PHB", bg.Book)
	require.NotEmpty(t, bg.SkillProficiencies)
	assert.Contains(t, bg.SkillProficiencies[0].Fixed, "Athletics")

	_, err = c.GetBackground(ctx, rulebook.Key{Name: "Pit Fighter", Book: "HB"})
	assert.True(t, charbuildererrors.IsNotFound(err))

	variants, err := c.GetVariants(ctx, rulebook.Key{Name: "Criminal", Book: "PHB"})
	require.NoError(t, err)
	require.NotEmpty(t, variants)
	assert.Equal(t, "Spy", variants[0].Name)
}
