package rulebook

import (
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
)

// AbilityEntry is one raw ability-improvement entry on a race or subrace.
// Exactly one of Fixed or Choose should be set; an entry with neither is
// malformed and contributes nothing.
type AbilityEntry struct {
	// Fixed maps ability identifiers to flat bonuses
	Fixed map[string]int32

	// Choose describes a player pick
	Choose *AbilityChoice
}

// AbilityChoice describes a "pick N abilities, +X each" entry. Weighted is
// set instead of Amount when the bonus differs per ability; such a choice is
// a single indivisible pick.
type AbilityChoice struct {
	Count    int32
	Amount   int32
	From     []string
	Weighted map[string]int32
}

// ProficiencyEntry is one raw proficiency entry: fixed names, a choice, or
// both (some backgrounds grant two skills and a pick).
type ProficiencyEntry struct {
	Fixed  []string
	Choose *ProficiencyChoice
}

// ProficiencyChoice describes a "choose N from ..." proficiency grant.
type ProficiencyChoice struct {
	Count int32
	From  []string

	// Any marks a "choose any skill" grant with no option list
	Any bool

	// Category names a single undifferentiated tool category (e.g.
	// "Musical instrument") standing in for the whole option list
	Category string
}

// TraitDef is a descriptive trait attached to a race or subrace
type TraitDef struct {
	Name        string
	Description string
}

// RaceDef is a race as the catalogue exposes it
type RaceDef struct {
	Name  string
	Book  string
	Speed int32
	Size  string

	// AbilityEntries are the generic ability-improvement entries
	AbilityEntries []AbilityEntry

	// BaseAbilityBonus carries the hard-coded fixed bonus some races
	// bake into the race record instead of the generic entries
	BaseAbilityBonus *dnd5e.AbilityOption

	SkillProficiencies    []ProficiencyEntry
	ToolProficiencies     []ProficiencyEntry
	LanguageProficiencies []ProficiencyEntry
	WeaponProficiencies   []string
	ArmorProficiencies    []string

	Traits []TraitDef
}

// SubraceDef is a subrace as the catalogue exposes it
type SubraceDef struct {
	Name string

	AbilityEntries []AbilityEntry

	SkillProficiencies    []ProficiencyEntry
	ToolProficiencies     []ProficiencyEntry
	LanguageProficiencies []ProficiencyEntry
	WeaponProficiencies   []string
	ArmorProficiencies    []string

	Traits []TraitDef
}

// FeatureDef is one entry in a class's ordered feature list
type FeatureDef struct {
	Name        string
	Level       int32
	Description string
}

// ClassDef is a class as the catalogue exposes it
type ClassDef struct {
	Name   string
	Book   string
	HitDie int32

	SavingThrows        []string
	ArmorProficiencies  []string
	WeaponProficiencies []string
	ToolProficiencies   []ProficiencyEntry
	SkillProficiencies  []ProficiencyEntry

	// Features is ordered by level and is scanned for "Ability Score
	// Improvement" entries
	Features []FeatureDef

	Caster              dnd5e.CasterType
	SpellcastingAbility string
}

// SubclassDef is a subclass as the catalogue exposes it
type SubclassDef struct {
	Name string

	SkillProficiencies    []ProficiencyEntry
	ToolProficiencies     []ProficiencyEntry
	LanguageProficiencies []ProficiencyEntry

	Features []FeatureDef

	// Caster overrides the parent class's tier when the subclass grants
	// spellcasting (e.g. Eldritch Knight makes Fighter a third caster)
	Caster dnd5e.CasterType
}

// BackgroundDef is a background as the catalogue exposes it
type BackgroundDef struct {
	Name string
	Book string

	SkillProficiencies    []ProficiencyEntry
	ToolProficiencies     []ProficiencyEntry
	LanguageProficiencies []ProficiencyEntry

	FeatureName        string
	FeatureDescription string
}

// BackgroundVariantDef is a named variant of a background
type BackgroundVariantDef struct {
	Name string

	SkillProficiencies    []ProficiencyEntry
	ToolProficiencies     []ProficiencyEntry
	LanguageProficiencies []ProficiencyEntry

	FeatureName        string
	FeatureDescription string
}
