package progression_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/charbuilder/internal/engine/progression"
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/errors"
	"github.com/emberforge/charbuilder/internal/pkg/clock"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// fixedRoller always rolls the same value
type fixedRoller struct {
	value int
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	return r.value, nil
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.value
	}
	return rolls, nil
}

var testInstant = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(rollValue int) *progression.Ledger {
	return progression.NewLedger(&progression.LedgerConfig{
		Clock:  clock.NewFixed(testInstant),
		Roller: &fixedRoller{value: rollValue},
	})
}

func fighterDef() *rulebook.ClassDef {
	return &rulebook.ClassDef{
		Name:   "Fighter",
		HitDie: 10,
		Features: []rulebook.FeatureDef{
			{Name: "Second Wind", Level: 1},
			{Name: "Ability Score Improvement", Level: 4},
			{Name: "Extra Attack", Level: 5},
			{Name: "Ability Score Improvement", Level: 6},
			{Name: "Ability Score Improvement", Level: 8},
		},
	}
}

func wizardDef() *rulebook.ClassDef {
	return &rulebook.ClassDef{
		Name:   "Wizard",
		HitDie: 6,
		Features: []rulebook.FeatureDef{
			{Name: "Arcane Recovery", Level: 1},
			{Name: "Ability Score Improvement", Level: 4},
			{Name: "Ability Score Improvement", Level: 8},
		},
		Caster:              dnd5e.CasterFull,
		SpellcastingAbility: dnd5e.AbilityIntelligence,
	}
}

func TestIncreaseLevel_SingleClassLockStep(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{Level: 1}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 1))

	require.NoError(t, ledger.IncreaseLevel(char, ""))

	assert.Equal(t, int32(2), char.Level)
	assert.Equal(t, int32(2), char.Progression.Classes[0].Level)
	require.Len(t, char.Progression.LevelUps, 1)
	entry := char.Progression.LevelUps[0]
	assert.Equal(t, int32(1), entry.FromLevel)
	assert.Equal(t, int32(2), entry.ToLevel)
	assert.Equal(t, "Fighter", entry.ClassName)
	assert.Equal(t, testInstant.Unix(), entry.Timestamp)
}

func TestIncreaseLevel_AtCapIsNoOp(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{Level: 20}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 20))

	err := ledger.IncreaseLevel(char, "")

	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
	assert.Equal(t, int32(20), char.Level, "level must not change")
	assert.Equal(t, int32(20), char.Progression.Classes[0].Level)
}

func TestIncreaseLevel_MulticlassRequiresClassName(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 3))
	require.NoError(t, ledger.AddClassLevel(char, wizardDef(), 2))

	err := ledger.IncreaseLevel(char, "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	err = ledger.IncreaseLevel(char, "Monk")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, ledger.IncreaseLevel(char, "Wizard"))
	assert.Equal(t, int32(6), char.Level)
	assert.Equal(t, int32(3), char.Progression.ClassEntry("Wizard").Level)
	assert.Equal(t, int32(3), char.Progression.ClassEntry("Fighter").Level)
}

func TestDecreaseLevel_AtFloorIsNoOp(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{Level: 1}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 1))

	err := ledger.DecreaseLevel(char, "")

	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
	assert.Equal(t, int32(1), char.Level)
}

func TestDecreaseLevel_RefusesDroppingLevelOneClass(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 3))
	require.NoError(t, ledger.AddClassLevel(char, wizardDef(), 1))

	err := ledger.DecreaseLevel(char, "Wizard")

	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Equal(t, int32(4), char.Level)
}

func TestDecreaseLevel_TrimsStoredHitPointRolls(t *testing.T) {
	ledger := newTestLedger(8)
	char := &dnd5e.Character{}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 1))
	require.NoError(t, ledger.IncreaseLevel(char, ""))
	_, err := ledger.RecordHitPointRoll(char, "Fighter")
	require.NoError(t, err)
	require.Equal(t, []int32{0, 8}, char.Progression.Classes[0].HitPointRolls)

	// The roll slot for level 2 must go away with the level.
	require.NoError(t, ledger.DecreaseLevel(char, ""))

	assert.Equal(t, int32(1), char.Level)
	assert.Equal(t, []int32{0}, char.Progression.Classes[0].HitPointRolls)
}

func TestAddClassLevel_IdempotentUpsert(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{}

	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 1))
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 3))

	require.Len(t, char.Progression.Classes, 1)
	assert.Equal(t, int32(3), char.Progression.Classes[0].Level)
	assert.Equal(t, int32(3), char.Level)
}

func TestAddClassLevel_CasterGetsSpellcastingBlock(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{}

	require.NoError(t, ledger.AddClassLevel(char, wizardDef(), 1))

	block := char.Spellcasting["Wizard"]
	require.NotNil(t, block)
	assert.Equal(t, dnd5e.AbilityIntelligence, block.Ability)
	assert.False(t, block.PactMagic)
}

func TestAddClassLevel_RejectsExceedingCap(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 18))

	err := ledger.AddClassLevel(char, wizardDef(), 3)

	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
	assert.Len(t, char.Progression.Classes, 1)
}

func TestRemoveClassLevel(t *testing.T) {
	ledger := newTestLedger(6)
	char := &dnd5e.Character{}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 3))
	require.NoError(t, ledger.AddClassLevel(char, wizardDef(), 2))

	require.NoError(t, ledger.RemoveClassLevel(char, "Wizard"))

	assert.Nil(t, char.Progression.ClassEntry("Wizard"))
	assert.Nil(t, char.Spellcasting["Wizard"])
	assert.Equal(t, int32(3), char.Level)

	err := ledger.RemoveClassLevel(char, "Wizard")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRecordHitPointRoll(t *testing.T) {
	ledger := newTestLedger(7)
	char := &dnd5e.Character{}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 1))

	// Level 1 takes the full die, never a roll.
	_, err := ledger.RecordHitPointRoll(char, "Fighter")
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))

	require.NoError(t, ledger.IncreaseLevel(char, ""))
	rolled, err := ledger.RecordHitPointRoll(char, "Fighter")
	require.NoError(t, err)
	assert.Equal(t, int32(7), rolled)
	assert.Equal(t, []int32{0, 7}, char.Progression.Classes[0].HitPointRolls)

	// The level already holds a value; rolling again must fail.
	_, err = ledger.RecordHitPointRoll(char, "Fighter")
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestRecordHitPointRoll_FirstRollKeepsLevelOneDie(t *testing.T) {
	ledger := newTestLedger(4)
	char := &dnd5e.Character{AbilityScores: dnd5e.AbilityScores{Constitution: 10}}
	require.NoError(t, ledger.AddClassLevel(char, fighterDef(), 1))
	require.NoError(t, ledger.IncreaseLevel(char, ""))

	rolled, err := ledger.RecordHitPointRoll(char, "Fighter")
	require.NoError(t, err)
	assert.Equal(t, int32(4), rolled)

	// Level 1 stays the full d10; the roll counts only for level 2.
	assert.Equal(t, int32(14), progression.MaxHitPoints(char))
}

func TestMaxHitPoints(t *testing.T) {
	char := &dnd5e.Character{
		AbilityScores: dnd5e.AbilityScores{Constitution: 14}, // +2
		Progression: dnd5e.Progression{
			Classes: []dnd5e.ClassLevel{
				{Name: "Fighter", Level: 3, HitDie: 10, HitPointRolls: []int32{0, 7}},
			},
		},
	}

	// Level 1: full die 10, level 2: stored roll 7, level 3: average 6.
	// Con +2 per level.
	assert.Equal(t, int32(10+7+6+3*2), progression.MaxHitPoints(char))
}

func TestMaxHitPoints_MinimumOnePerLevel(t *testing.T) {
	char := &dnd5e.Character{
		AbilityScores: dnd5e.AbilityScores{Constitution: 1}, // -5
		Progression: dnd5e.Progression{
			Classes: []dnd5e.ClassLevel{
				{Name: "Wizard", Level: 3, HitDie: 6},
			},
		},
	}

	// 6-5=1, 4-5<1, 4-5<1: each level contributes at least 1.
	assert.Equal(t, int32(3), progression.MaxHitPoints(char))
}

func TestASILevels_FromFeatureList(t *testing.T) {
	assert.Equal(t, []int32{4, 6, 8}, progression.ASILevels(fighterDef()))
}

func TestASILevels_FallbackSchedule(t *testing.T) {
	def := &rulebook.ClassDef{
		Name:     "Mystic",
		Features: []rulebook.FeatureDef{{Name: "Psionics", Level: 1}},
	}
	assert.Equal(t, []int32{4, 8, 12, 16, 19}, progression.ASILevels(def))
}

func TestUnionASILevels(t *testing.T) {
	got := progression.UnionASILevels(fighterDef(), wizardDef())
	assert.Equal(t, []int32{4, 6, 8}, got, "shared levels collapse, union stays sorted")

	assert.Empty(t, progression.UnionASILevels())
	assert.Empty(t, progression.UnionASILevels(nil))
}

func TestApplyExperience(t *testing.T) {
	char := &dnd5e.Character{}

	assert.Equal(t, int32(1), progression.ApplyExperience(char, 0))
	assert.Equal(t, int32(1), progression.ApplyExperience(char, 299))
	assert.Equal(t, int32(2), progression.ApplyExperience(char, 300))
	assert.Equal(t, int32(5), progression.ApplyExperience(char, 6500))
	assert.Equal(t, int32(20), progression.ApplyExperience(char, 400000))
	assert.Equal(t, int32(400000), char.ExperiencePoints)

	assert.Equal(t, int32(1), progression.ApplyExperience(char, -50))
	assert.Equal(t, int32(0), char.ExperiencePoints, "negative experience clamps to zero")
}
