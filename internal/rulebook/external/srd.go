package external

import (
	internaldnd5e "github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// The upstream API exposes subraces, subclasses, and backgrounds as bare
// references. The tables below carry the detail for the SRD content so
// lookups stay self-contained; keys are API slugs.

// subraceDetails is keyed by the API's subrace reference key
var subraceDetails = map[string]*rulebook.SubraceDef{
	"high-elf": {
		Name: "High Elf",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{internaldnd5e.AbilityIntelligence: 1}},
		},
		WeaponProficiencies: []string{"Longswords", "Shortswords", "Shortbows", "Longbows"},
		LanguageProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 1, From: []string{
				"Dwarvish", "Giant", "Gnomish", "Goblin", "Halfling", "Orc",
			}}},
		},
		Traits: []rulebook.TraitDef{
			{Name: "Cantrip", Description: "You know one cantrip of your choice from the wizard spell list."},
		},
	},
	"hill-dwarf": {
		Name: "Hill Dwarf",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{internaldnd5e.AbilityWisdom: 1}},
		},
		Traits: []rulebook.TraitDef{
			{Name: "Dwarven Toughness", Description: "Your hit point maximum increases by 1 for every level you have."},
		},
	},
	"lightfoot": {
		Name: "Lightfoot",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{internaldnd5e.AbilityCharisma: 1}},
		},
		Traits: []rulebook.TraitDef{
			{Name: "Naturally Stealthy", Description: "You can attempt to hide even when obscured only by a larger creature."},
		},
	},
	"rock-gnome": {
		Name: "Rock Gnome",
		AbilityEntries: []rulebook.AbilityEntry{
			{Fixed: map[string]int32{internaldnd5e.AbilityConstitution: 1}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Tinker's tools"}},
		},
		Traits: []rulebook.TraitDef{
			{Name: "Artificer's Lore", Description: "Add twice your proficiency bonus to History checks about magic items, alchemical objects, or technological devices."},
		},
	},
}

// extraSubraces adds subraces the API omits entirely, keyed by race slug.
// Variant Human trades the flat +1s for two picks, a skill, and a feat; the
// skill slot and feat slot are granted when the subrace is applied.
var extraSubraces = map[string][]*rulebook.SubraceDef{
	"human": {
		{
			Name: "Variant",
			AbilityEntries: []rulebook.AbilityEntry{
				{Choose: &rulebook.AbilityChoice{Count: 2, Amount: 1}},
			},
		},
	},
}

// subclassDetails is keyed by class slug. Caster marks the subclasses that
// grant spellcasting to an otherwise non-casting class.
var subclassDetails = map[string][]*rulebook.SubclassDef{
	"fighter": {
		{Name: "Champion"},
		{Name: "Battle Master"},
		{Name: "Eldritch Knight", Caster: internaldnd5e.CasterThird},
	},
	"rogue": {
		{Name: "Thief"},
		{Name: "Assassin"},
		{Name: "Arcane Trickster", Caster: internaldnd5e.CasterThird},
	},
	"wizard": {
		{Name: "School of Evocation"},
		{Name: "School of Abjuration"},
	},
	"cleric": {
		{Name: "Life Domain"},
		{Name: "Light Domain"},
	},
	"barbarian": {
		{Name: "Path of the Berserker"},
		{Name: "Path of the Totem Warrior"},
	},
	"warlock": {
		{Name: "The Fiend"},
		{Name: "The Archfey"},
	},
}

type castingInfo struct {
	tier    internaldnd5e.CasterType
	ability string
}

// classCasting is keyed by class slug; classes absent from the table do
// not cast. Third casters only exist via subclass.
var classCasting = map[string]*castingInfo{
	"bard":     {tier: internaldnd5e.CasterFull, ability: internaldnd5e.AbilityCharisma},
	"cleric":   {tier: internaldnd5e.CasterFull, ability: internaldnd5e.AbilityWisdom},
	"druid":    {tier: internaldnd5e.CasterFull, ability: internaldnd5e.AbilityWisdom},
	"sorcerer": {tier: internaldnd5e.CasterFull, ability: internaldnd5e.AbilityCharisma},
	"wizard":   {tier: internaldnd5e.CasterFull, ability: internaldnd5e.AbilityIntelligence},
	"paladin":  {tier: internaldnd5e.CasterHalf, ability: internaldnd5e.AbilityCharisma},
	"ranger":   {tier: internaldnd5e.CasterHalf, ability: internaldnd5e.AbilityWisdom},
	"warlock":  {tier: internaldnd5e.CasterPact, ability: internaldnd5e.AbilityCharisma},
}

// backgroundDetails is keyed by background slug
var backgroundDetails = map[string]*rulebook.BackgroundDef{
	"acolyte": {
		Name: "Acolyte",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Insight", "Religion"}},
		},
		LanguageProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 2, Any: true}},
		},
		FeatureName:        "Shelter of the Faithful",
		FeatureDescription: "You and your companions can receive free healing and care at a temple of your faith.",
	},
	"criminal": {
		Name: "Criminal",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Deception", "Stealth"}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Thieves' tools"}},
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Gaming set"}},
		},
		FeatureName:        "Criminal Contact",
		FeatureDescription: "You have a reliable contact who acts as your liaison to a network of other criminals.",
	},
	"entertainer": {
		Name: "Entertainer",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Acrobatics", "Performance"}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Disguise kit"}},
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Musical instrument"}},
		},
		FeatureName:        "By Popular Demand",
		FeatureDescription: "You can always find a place to perform, receiving free lodging and food in return.",
	},
	"folk-hero": {
		Name: "Folk Hero",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Animal Handling", "Survival"}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Vehicles (land)"}},
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Artisan's tools"}},
		},
		FeatureName:        "Rustic Hospitality",
		FeatureDescription: "Common folk will shield you from the law or anyone searching for you.",
	},
	"guild-artisan": {
		Name: "Guild Artisan",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Insight", "Persuasion"}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Artisan's tools"}},
		},
		LanguageProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Any: true}},
		},
		FeatureName:        "Guild Membership",
		FeatureDescription: "Your guild offers lodging, legal support, and political influence to members in good standing.",
	},
	"noble": {
		Name: "Noble",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"History", "Persuasion"}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Gaming set"}},
		},
		LanguageProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Any: true}},
		},
		FeatureName:        "Position of Privilege",
		FeatureDescription: "You are welcome in high society, and people assume you have the right to be wherever you are.",
	},
	"sage": {
		Name: "Sage",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Arcana", "History"}},
		},
		LanguageProficiencies: []rulebook.ProficiencyEntry{
			{Choose: &rulebook.ProficiencyChoice{Count: 2, Any: true}},
		},
		FeatureName:        "Researcher",
		FeatureDescription: "When you attempt to recall lore, you often know where and from whom you can obtain it.",
	},
	"soldier": {
		Name: "Soldier",
		SkillProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Athletics", "Intimidation"}},
		},
		ToolProficiencies: []rulebook.ProficiencyEntry{
			{Fixed: []string{"Vehicles (land)"}},
			{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Gaming set"}},
		},
		FeatureName:        "Military Rank",
		FeatureDescription: "Soldiers loyal to your former organization still recognize your authority and influence.",
	},
}

// backgroundVariants is keyed by background slug
var backgroundVariants = map[string][]*rulebook.BackgroundVariantDef{
	"criminal": {
		{
			Name: "Spy",
			SkillProficiencies: []rulebook.ProficiencyEntry{
				{Fixed: []string{"Deception", "Stealth"}},
			},
			ToolProficiencies: []rulebook.ProficiencyEntry{
				{Fixed: []string{"Thieves' tools"}},
				{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Gaming set"}},
			},
			FeatureName:        "Spy Contact",
			FeatureDescription: "You have a reliable contact who acts as your liaison to a network of other spies.",
		},
	},
	"entertainer": {
		{
			Name: "Gladiator",
			SkillProficiencies: []rulebook.ProficiencyEntry{
				{Fixed: []string{"Acrobatics", "Performance"}},
			},
			ToolProficiencies: []rulebook.ProficiencyEntry{
				{Fixed: []string{"Disguise kit"}},
				{Choose: &rulebook.ProficiencyChoice{Count: 1, Category: "Unusual weapon"}},
			},
			FeatureName:        "By Popular Demand",
			FeatureDescription: "You can always find a place to fight, receiving free lodging and food in return.",
		},
	},
	"guild-artisan": {
		{
			Name: "Guild Merchant",
			SkillProficiencies: []rulebook.ProficiencyEntry{
				{Fixed: []string{"Insight", "Persuasion"}},
			},
			LanguageProficiencies: []rulebook.ProficiencyEntry{
				{Choose: &rulebook.ProficiencyChoice{Count: 1, Any: true}},
			},
			FeatureName:        "Guild Membership",
			FeatureDescription: "Your guild offers lodging, legal support, and political influence to members in good standing.",
		},
	},
}
