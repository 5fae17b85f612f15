package dnd5e

// Ability identifiers
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// Abilities lists the six ability identifiers in standard order
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Source identifies where a grant came from, scoping additions and removals
type Source string

// Grant sources
const (
	SourceRace       Source = "race"
	SourceSubrace    Source = "subrace"
	SourceClass      Source = "class"
	SourceSubclass   Source = "subclass"
	SourceBackground Source = "background"
	SourceManual     Source = "manual"
)

// OptionalSources are the source tags that carry optional-proficiency
// triples. Subrace grants fold into race and subclass grants into class.
var OptionalSources = []Source{SourceRace, SourceClass, SourceBackground}

// ProficiencyCategory groups proficiencies of one kind
type ProficiencyCategory string

// Proficiency categories
const (
	CategoryArmor        ProficiencyCategory = "armor"
	CategoryWeapons      ProficiencyCategory = "weapons"
	CategoryTools        ProficiencyCategory = "tools"
	CategorySkills       ProficiencyCategory = "skills"
	CategoryLanguages    ProficiencyCategory = "languages"
	CategorySavingThrows ProficiencyCategory = "saving_throws"
)

// Categories lists every proficiency category
var Categories = []ProficiencyCategory{
	CategoryArmor,
	CategoryWeapons,
	CategoryTools,
	CategorySkills,
	CategoryLanguages,
	CategorySavingThrows,
}

// OptionalCategories are the categories that carry player choices
var OptionalCategories = []ProficiencyCategory{
	CategorySkills,
	CategoryTools,
	CategoryLanguages,
}

// Skills lists every D&D 5e skill, used for "choose any skill" options
var Skills = []string{
	"Acrobatics",
	"Animal Handling",
	"Arcana",
	"Athletics",
	"Deception",
	"History",
	"Insight",
	"Intimidation",
	"Investigation",
	"Medicine",
	"Nature",
	"Perception",
	"Performance",
	"Persuasion",
	"Religion",
	"Sleight of Hand",
	"Stealth",
	"Survival",
}

// Languages lists the standard D&D 5e languages, used for "choose any
// language" options
var Languages = []string{
	"Common",
	"Dwarvish",
	"Elvish",
	"Giant",
	"Gnomish",
	"Goblin",
	"Halfling",
	"Orc",
	"Abyssal",
	"Celestial",
	"Draconic",
	"Deep Speech",
	"Infernal",
	"Primordial",
	"Sylvan",
	"Undercommon",
}

// CasterType classifies how a class contributes to multiclass spell slots
type CasterType string

// Caster tiers
const (
	CasterNone  CasterType = "none"
	CasterFull  CasterType = "full"
	CasterHalf  CasterType = "half"
	CasterThird CasterType = "third"
	CasterPact  CasterType = "pact"
)

// Level bounds
const (
	MinCharacterLevel int32 = 1
	MaxCharacterLevel int32 = 20
)

// StandardASILevels is the fallback ability-score-improvement schedule used
// when a class's feature list names no ASI levels.
var StandardASILevels = []int32{4, 8, 12, 16, 19}

// XPThresholds maps character level to the experience points required to
// reach it. Index 0 is level 1.
var XPThresholds = []int32{
	0, 300, 900, 2700, 6500,
	14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000,
	195000, 225000, 265000, 305000, 355000,
}
