// Package progression tracks character and per-class levels and derives
// ability-score-improvement levels, hit points, and spell slots.
package progression

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/errors"
	"github.com/emberforge/charbuilder/internal/pkg/clock"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// asiFeatureName is the literal feature name scanned for in class feature
// lists when deriving ASI levels.
const asiFeatureName = "Ability Score Improvement"

// Ledger mutates a character's progression state
type Ledger struct {
	clock  clock.Clock
	roller dice.Roller
}

// LedgerConfig holds the dependencies for a Ledger
type LedgerConfig struct {
	Clock  clock.Clock
	Roller dice.Roller
}

// NewLedger creates a ledger, defaulting to the system clock and the
// toolkit's default roller when none are provided.
func NewLedger(cfg *LedgerConfig) *Ledger {
	if cfg == nil {
		cfg = &LedgerConfig{}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	r := cfg.Roller
	if r == nil {
		r = dice.DefaultRoller
	}

	return &Ledger{clock: c, roller: r}
}

// IncreaseLevel raises the total character level by exactly one. A
// single-class character's lone entry is kept in lock-step; a multiclass
// character must name which class gains the level. Leveling past 20 is a
// no-op reported as OutOfRange.
func (l *Ledger) IncreaseLevel(char *dnd5e.Character, className string) error {
	if char.Level >= dnd5e.MaxCharacterLevel {
		return errors.OutOfRangef("character level cannot exceed %d", dnd5e.MaxCharacterLevel).
			WithMeta("level", char.Level)
	}

	entry, err := l.resolveEntry(char, className)
	if err != nil {
		return err
	}

	fromLevel := char.Level
	char.Level++
	if entry != nil {
		entry.Level++
	}

	char.Progression.LevelUps = append(char.Progression.LevelUps, dnd5e.LevelUp{
		FromLevel: fromLevel,
		ToLevel:   char.Level,
		ClassName: entryName(entry),
		Timestamp: l.clock.Now().Unix(),
	})

	return nil
}

// DecreaseLevel lowers the total character level by exactly one, with the
// same class-entry rules as IncreaseLevel. Going below 1 is a no-op
// reported as OutOfRange.
func (l *Ledger) DecreaseLevel(char *dnd5e.Character, className string) error {
	if char.Level <= dnd5e.MinCharacterLevel {
		return errors.OutOfRangef("character level cannot drop below %d", dnd5e.MinCharacterLevel).
			WithMeta("level", char.Level)
	}

	entry, err := l.resolveEntry(char, className)
	if err != nil {
		return err
	}
	if entry != nil && entry.Level <= 1 {
		return errors.FailedPreconditionf(
			"class %s is at level 1; retract the class instead of leveling down", entry.Name)
	}

	fromLevel := char.Level
	char.Level--
	if entry != nil {
		entry.Level--
		if len(entry.HitPointRolls) > int(entry.Level) {
			entry.HitPointRolls = entry.HitPointRolls[:entry.Level]
		}
	}

	char.Progression.LevelUps = append(char.Progression.LevelUps, dnd5e.LevelUp{
		FromLevel: fromLevel,
		ToLevel:   char.Level,
		ClassName: entryName(entry),
		Timestamp: l.clock.Now().Unix(),
	})

	return nil
}

// resolveEntry picks the class entry a level change applies to. Single-class
// characters adjust their lone entry automatically; multiclass characters
// must name one.
func (l *Ledger) resolveEntry(char *dnd5e.Character, className string) (*dnd5e.ClassLevel, error) {
	classes := char.Progression.Classes
	switch {
	case len(classes) == 0:
		return nil, nil
	case len(classes) == 1:
		return &classes[0], nil
	}

	if className == "" {
		return nil, errors.InvalidArgument("multiclass character requires a class name for level changes")
	}
	entry := char.Progression.ClassEntry(className)
	if entry == nil {
		return nil, errors.NotFoundf("character has no levels in class %s", className)
	}
	return entry, nil
}

func entryName(entry *dnd5e.ClassLevel) string {
	if entry == nil {
		return ""
	}
	return entry.Name
}

// AddClassLevel upserts a class entry. Creating an entry initializes the
// class's spellcasting block when the class is a caster; updating only
// adjusts the level. The character's total level follows the ledger.
func (l *Ledger) AddClassLevel(char *dnd5e.Character, def *rulebook.ClassDef, level int32) error {
	if def == nil {
		return errors.InvalidArgument("class definition is required")
	}
	if level < 1 {
		return errors.InvalidArgumentf("class level must be at least 1, got %d", level)
	}

	projected := char.Progression.TotalLevel() + level
	if existing := char.Progression.ClassEntry(def.Name); existing != nil {
		projected -= existing.Level
	}
	if projected > dnd5e.MaxCharacterLevel {
		return errors.OutOfRangef("total level %d would exceed %d", projected, dnd5e.MaxCharacterLevel)
	}

	entry := char.Progression.ClassEntry(def.Name)
	if entry == nil {
		char.Progression.Classes = append(char.Progression.Classes, dnd5e.ClassLevel{
			Name:   def.Name,
			Level:  level,
			HitDie: def.HitDie,
		})
	} else {
		entry.Level = level
		if len(entry.HitPointRolls) > int(level) {
			entry.HitPointRolls = entry.HitPointRolls[:level]
		}
	}

	if def.Caster != dnd5e.CasterNone && def.Caster != "" {
		l.ensureSpellcasting(char, def)
	}

	char.Level = char.Progression.TotalLevel()
	return nil
}

// RemoveClassLevel retracts a multiclass entry entirely, dropping its
// spellcasting block with it.
func (l *Ledger) RemoveClassLevel(char *dnd5e.Character, className string) error {
	classes := char.Progression.Classes
	idx := -1
	for i := range classes {
		if classes[i].Name == className {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NotFoundf("character has no levels in class %s", className)
	}

	char.Progression.Classes = append(classes[:idx], classes[idx+1:]...)
	delete(char.Spellcasting, className)

	if total := char.Progression.TotalLevel(); total > 0 {
		char.Level = total
	} else {
		char.Level = dnd5e.MinCharacterLevel
	}
	return nil
}

func (l *Ledger) ensureSpellcasting(char *dnd5e.Character, def *rulebook.ClassDef) {
	if char.Spellcasting == nil {
		char.Spellcasting = make(map[string]*dnd5e.SpellcastingBlock)
	}
	if char.Spellcasting[def.Name] == nil {
		char.Spellcasting[def.Name] = &dnd5e.SpellcastingBlock{
			Ability:    def.SpellcastingAbility,
			PactMagic:  def.Caster == dnd5e.CasterPact,
			SpellSlots: make(map[int32]*dnd5e.SpellSlot),
		}
	}
}

// RecordHitPointRoll rolls the class's hit die for its newest level and
// stores the result in that level's slot. The first class level always
// grants the full die and takes no roll; a level already holding a stored
// value is untouched.
func (l *Ledger) RecordHitPointRoll(char *dnd5e.Character, className string) (int32, error) {
	entry := char.Progression.ClassEntry(className)
	if entry == nil {
		return 0, errors.NotFoundf("character has no levels in class %s", className)
	}
	if entry.Level <= 1 {
		return 0, errors.FailedPreconditionf("level 1 of %s always grants the full hit die", className)
	}

	idx := int(entry.Level) - 1
	if idx < len(entry.HitPointRolls) && entry.HitPointRolls[idx] > 0 {
		return 0, errors.FailedPreconditionf("hit points for %s level %d already recorded",
			className, entry.Level)
	}

	rolled, err := l.roller.Roll(int(entry.HitDie))
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll hit die")
	}

	for len(entry.HitPointRolls) <= idx {
		entry.HitPointRolls = append(entry.HitPointRolls, 0)
	}
	entry.HitPointRolls[idx] = int32(rolled)
	return int32(rolled), nil
}

// MaxHitPoints derives the hit point maximum: the first level of each class
// contributes the full die, later levels a stored roll or the averaged
// ceil(die/2), and the Constitution modifier lands once per total character
// level with a minimum of 1 per level.
func MaxHitPoints(char *dnd5e.Character) int32 {
	conMod := char.AbilityScores.Modifier(dnd5e.AbilityConstitution)

	var total int32
	for i := range char.Progression.Classes {
		entry := &char.Progression.Classes[i]
		for lvl := int32(1); lvl <= entry.Level; lvl++ {
			base := hitPointsForLevel(entry, lvl)
			gained := base + conMod
			if gained < 1 {
				gained = 1
			}
			total += gained
		}
	}
	return total
}

func hitPointsForLevel(entry *dnd5e.ClassLevel, level int32) int32 {
	if level == 1 {
		return entry.HitDie
	}
	if int(level) <= len(entry.HitPointRolls) && entry.HitPointRolls[level-1] > 0 {
		return entry.HitPointRolls[level-1]
	}
	return (entry.HitDie + 1) / 2
}

// ASILevels returns the levels a class gains ability score improvements at,
// scanning its feature list and falling back to the standard schedule when
// the list names none.
func ASILevels(def *rulebook.ClassDef) []int32 {
	var levels []int32
	for _, feature := range def.Features {
		if feature.Name == asiFeatureName {
			levels = append(levels, feature.Level)
		}
	}
	if len(levels) == 0 {
		levels = append(levels, dnd5e.StandardASILevels...)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

// UnionASILevels returns the sorted union of each class's ASI levels; this
// is the character-wide schedule for a multiclass character.
func UnionASILevels(defs ...*rulebook.ClassDef) []int32 {
	seen := make(map[int32]bool)
	var levels []int32
	for _, def := range defs {
		if def == nil {
			continue
		}
		for _, level := range ASILevels(def) {
			if !seen[level] {
				seen[level] = true
				levels = append(levels, level)
			}
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

// ApplyExperience records experience points and returns the character level
// the standard threshold table implies for them.
func ApplyExperience(char *dnd5e.Character, xp int32) int32 {
	if xp < 0 {
		xp = 0
	}
	char.ExperiencePoints = xp
	char.Progression.ExperiencePoints = xp

	level := dnd5e.MinCharacterLevel
	for i, threshold := range dnd5e.XPThresholds {
		if xp >= threshold {
			level = int32(i + 1)
		}
	}
	return level
}
