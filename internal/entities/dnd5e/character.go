// Package dnd5e implements the D&D 5e entities
package dnd5e

// Character is the aggregate root the engine mutates in place. It is a
// data-only struct: resolution, aggregation, and progression logic live in
// the engine packages, never here.
type Character struct {
	ID               string
	PlayerID         string
	Name             string
	Level            int32
	ExperiencePoints int32
	AbilityScores    AbilityScores

	// Selections; the zero Selection means "not chosen"
	Race       Selection
	Class      Selection
	Background Selection

	// Fixed grants per category, each tagged with every source that
	// granted it
	Proficiencies map[ProficiencyCategory][]Proficiency

	// Player-choice slots for skills, tools, and languages
	OptionalProficiencies map[ProficiencyCategory]*OptionalProficiencySet

	AbilityBonuses        []AbilityBonus
	PendingAbilityChoices []PendingAbilityChoice
	Traits                []Trait
	Feats                 []Feat
	PendingFeatChoices    []PendingFeatChoice

	Progression  Progression
	Spellcasting map[string]*SpellcastingBlock

	CreatedAt int64
	UpdatedAt int64
}

// Selection references a catalogue entry: a race, class, or background by
// name and source book, with Variant holding the subrace, subclass, or
// background variant when one is chosen.
type Selection struct {
	Name    string
	Book    string
	Variant string
}

// IsZero reports whether no selection has been made
func (s Selection) IsZero() bool {
	return s.Name == ""
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int32
	Dexterity    int32
	Constitution int32
	Intelligence int32
	Wisdom       int32
	Charisma     int32
}

// Get returns the score for an ability identifier, zero when unknown
func (a AbilityScores) Get(ability string) int32 {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set assigns the score for an ability identifier
func (a *AbilityScores) Set(ability string, value int32) {
	switch ability {
	case AbilityStrength:
		a.Strength = value
	case AbilityDexterity:
		a.Dexterity = value
	case AbilityConstitution:
		a.Constitution = value
	case AbilityIntelligence:
		a.Intelligence = value
	case AbilityWisdom:
		a.Wisdom = value
	case AbilityCharisma:
		a.Charisma = value
	}
}

// Modifier returns the D&D 5e ability modifier for an ability
func (a AbilityScores) Modifier(ability string) int32 {
	return ScoreModifier(a.Get(ability))
}

// ScoreModifier returns the modifier for a raw ability score
func ScoreModifier(score int32) int32 {
	// floor((score-10)/2); Go truncates toward zero, so adjust odd
	// negatives
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// Proficiency is a fixed grant tagged with every source that granted it
type Proficiency struct {
	Name    string
	Sources []Source
}

// HasSource reports whether the grant is tagged with the given source
func (p *Proficiency) HasSource(source Source) bool {
	for _, s := range p.Sources {
		if s == source {
			return true
		}
	}
	return false
}

// OptionalProficiency is one source's allowed/options/selected triple
type OptionalProficiency struct {
	Allowed  int32
	Options  []string
	Selected []string
}

// OptionalProficiencySet holds the per-source triples for one category plus
// the derived combined view
type OptionalProficiencySet struct {
	BySource map[Source]*OptionalProficiency
	Combined OptionalProficiency
}

// Get returns the triple for a source tag, creating an empty one on first
// access so missing blocks deserialize as {0, [], []}.
func (s *OptionalProficiencySet) Get(source Source) *OptionalProficiency {
	if s.BySource == nil {
		s.BySource = make(map[Source]*OptionalProficiency)
	}
	if s.BySource[source] == nil {
		s.BySource[source] = &OptionalProficiency{}
	}
	return s.BySource[source]
}

// OptionalProficiencySetFor returns the category's set, creating it when the
// loaded record lacked one.
func (c *Character) OptionalProficiencySetFor(category ProficiencyCategory) *OptionalProficiencySet {
	if c.OptionalProficiencies == nil {
		c.OptionalProficiencies = make(map[ProficiencyCategory]*OptionalProficiencySet)
	}
	if c.OptionalProficiencies[category] == nil {
		c.OptionalProficiencies[category] = &OptionalProficiencySet{}
	}
	return c.OptionalProficiencies[category]
}

// ProficiencyNames returns the granted names for a category in grant order
func (c *Character) ProficiencyNames(category ProficiencyCategory) []string {
	profs := c.Proficiencies[category]
	names := make([]string, 0, len(profs))
	for i := range profs {
		names = append(names, profs[i].Name)
	}
	return names
}

// HasProficiency reports whether a fixed grant exists in a category
func (c *Character) HasProficiency(category ProficiencyCategory, name string) bool {
	for i := range c.Proficiencies[category] {
		if c.Proficiencies[category][i].Name == name {
			return true
		}
	}
	return false
}

// AbilityBonus is a fixed ability score bonus tagged by source
type AbilityBonus struct {
	Ability string
	Amount  int32
	Source  Source
}

// AbilityOption pairs an ability with the bonus amount choosing it grants
type AbilityOption struct {
	Ability string
	Amount  int32
}

// PendingAbilityChoice is one undecided ability pick. Count is always 1:
// catalogue entries offering several picks are exploded at ingestion time.
// Weighted is set when the amounts differ per ability; such a choice is one
// indivisible pick and is never exploded further.
type PendingAbilityChoice struct {
	Count    int32
	Amount   int32
	From     []string
	Weighted []AbilityOption
	Source   Source
}

// Trait is a descriptive racial or background trait tagged by source
type Trait struct {
	Name        string
	Description string
	Source      Source
}

// Feat is a granted feat reference
type Feat struct {
	Name   string
	Source Source
}

// PendingFeatChoice records an unresolved feat slot (e.g. Variant Human)
type PendingFeatChoice struct {
	Source Source
}

// Progression tracks levels across one or more classes
type Progression struct {
	Classes          []ClassLevel
	ExperiencePoints int32
	LevelUps         []LevelUp
}

// ClassLevel is one class's entry in the progression ledger. It is created
// once, on the first level gained in that class; only Level and
// HitPointRolls mutate afterward.
type ClassLevel struct {
	Name     string
	Level    int32
	HitDie   int32
	Subclass string

	// HitPointRolls stores rolled hit points indexed by level, index 0
	// being level 1. Level 1 always grants the full die so its slot stays
	// zero; other zero entries fall back to the averaged die value.
	HitPointRolls []int32
}

// LevelUp is one entry in the level-change log
type LevelUp struct {
	FromLevel        int32
	ToLevel          int32
	ClassName        string
	AppliedFeats     []string
	AppliedFeatures  []string
	ChangedAbilities map[string]int32
	Timestamp        int64
}

// ClassEntry returns the progression entry for a class, nil when absent
func (p *Progression) ClassEntry(className string) *ClassLevel {
	for i := range p.Classes {
		if p.Classes[i].Name == className {
			return &p.Classes[i]
		}
	}
	return nil
}

// TotalLevel returns the character level implied by the ledger: the sum of
// per-class levels for a multiclass character, the single entry's level
// otherwise, and zero for an empty ledger.
func (p *Progression) TotalLevel() int32 {
	var total int32
	for i := range p.Classes {
		total += p.Classes[i].Level
	}
	return total
}

// SpellSlot tracks one spell level's slots
type SpellSlot struct {
	Max     int32
	Current int32
}

// SpellcastingBlock is one class's spellcasting state
type SpellcastingBlock struct {
	Ability        string
	PactMagic      bool
	KnownSpells    []string
	PreparedSpells []string
	SpellSlots     map[int32]*SpellSlot
}
