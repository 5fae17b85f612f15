package abilities

import (
	"fmt"
	"strings"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
)

var displayNames = map[string]string{
	dnd5e.AbilityStrength:     "Strength",
	dnd5e.AbilityDexterity:    "Dexterity",
	dnd5e.AbilityConstitution: "Constitution",
	dnd5e.AbilityIntelligence: "Intelligence",
	dnd5e.AbilityWisdom:       "Wisdom",
	dnd5e.AbilityCharisma:     "Charisma",
}

var shortNames = map[string]string{
	dnd5e.AbilityStrength:     "Str",
	dnd5e.AbilityDexterity:    "Dex",
	dnd5e.AbilityConstitution: "Con",
	dnd5e.AbilityIntelligence: "Int",
	dnd5e.AbilityWisdom:       "Wis",
	dnd5e.AbilityCharisma:     "Cha",
}

var countWords = map[int32]string{
	1: "one", 2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
}

func countWord(n int32) string {
	if w, ok := countWords[n]; ok {
		return w
	}
	return fmt.Sprintf("%d", n)
}

// Summary renders the full sentence form, e.g. "Your Strength score
// increases by 2, and one ability score of your choice increases by 1."
func (r Resolution) Summary() string {
	var parts []string

	for _, f := range r.Fixed {
		parts = append(parts, fmt.Sprintf("your %s score increases by %d",
			displayNames[f.Ability], f.Value))
	}

	for _, c := range r.Choices {
		parts = append(parts, c.sentence())
	}

	if len(parts) == 0 {
		return ""
	}

	sentence := strings.Join(parts, ", and ")
	return strings.ToUpper(sentence[:1]) + sentence[1:] + "."
}

func (c Choice) sentence() string {
	if len(c.Weighted) > 0 {
		// "A +x or B +y" is one indivisible pick
		alternatives := make([]string, len(c.Weighted))
		for i, w := range c.Weighted {
			alternatives[i] = fmt.Sprintf("your %s score increases by %d",
				displayNames[w.Ability], w.Amount)
		}
		return "either " + strings.Join(alternatives, " or ")
	}

	noun := "ability score"
	verb := "increases"
	if c.Count > 1 {
		noun = "ability scores"
		verb = "increase"
	}

	if restricted := c.restrictedFrom(); restricted != "" {
		return fmt.Sprintf("%s %s of your choice from %s %s by %d",
			countWord(c.Count), noun, restricted, verb, c.Amount)
	}
	return fmt.Sprintf("%s %s of your choice %s by %d",
		countWord(c.Count), noun, verb, c.Amount)
}

// restrictedFrom renders the option list when it is narrower than all six
// abilities, empty otherwise.
func (c Choice) restrictedFrom() string {
	if len(c.From) == 0 || len(c.From) == len(dnd5e.Abilities) {
		return ""
	}
	names := make([]string, len(c.From))
	for i, ability := range c.From {
		names[i] = displayNames[ability]
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// ShortSummary renders the compact form, e.g. "Str +2, choose one +1".
func (r Resolution) ShortSummary() string {
	var parts []string

	for _, f := range r.Fixed {
		parts = append(parts, fmt.Sprintf("%s +%d", shortNames[f.Ability], f.Value))
	}

	for _, c := range r.Choices {
		if len(c.Weighted) > 0 {
			alternatives := make([]string, len(c.Weighted))
			for i, w := range c.Weighted {
				alternatives[i] = fmt.Sprintf("%s +%d", shortNames[w.Ability], w.Amount)
			}
			parts = append(parts, strings.Join(alternatives, " or "))
			continue
		}
		parts = append(parts, fmt.Sprintf("choose %s +%d", countWord(c.Count), c.Amount))
	}

	return strings.Join(parts, ", ")
}
