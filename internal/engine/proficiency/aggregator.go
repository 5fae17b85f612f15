// Package proficiency maintains per-source proficiency grants and choice
// slots on a character and derives the combined view. It is a pure merge
// layer: callers are responsible for only populating selections that respect
// the allowed counts.
package proficiency

import (
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
)

// GrantFixed appends a fixed grant, tagging it with the source. Granting an
// existing name again merges the tag instead of duplicating the entry.
func GrantFixed(char *dnd5e.Character, category dnd5e.ProficiencyCategory, name string, source dnd5e.Source) {
	if char.Proficiencies == nil {
		char.Proficiencies = make(map[dnd5e.ProficiencyCategory][]dnd5e.Proficiency)
	}

	for i := range char.Proficiencies[category] {
		prof := &char.Proficiencies[category][i]
		if prof.Name != name {
			continue
		}
		if !prof.HasSource(source) {
			prof.Sources = append(prof.Sources, source)
		}
		return
	}

	char.Proficiencies[category] = append(char.Proficiencies[category], dnd5e.Proficiency{
		Name:    name,
		Sources: []dnd5e.Source{source},
	})
}

// RemoveSource strips the source tag from every grant in the category and
// drops grants left with no tags. Grants other sources still claim survive.
func RemoveSource(char *dnd5e.Character, category dnd5e.ProficiencyCategory, source dnd5e.Source) {
	profs := char.Proficiencies[category]
	kept := profs[:0]
	for i := range profs {
		sources := profs[i].Sources[:0]
		for _, s := range profs[i].Sources {
			if s != source {
				sources = append(sources, s)
			}
		}
		profs[i].Sources = sources
		if len(sources) > 0 {
			kept = append(kept, profs[i])
		}
	}
	if char.Proficiencies != nil {
		char.Proficiencies[category] = kept
	}
}

// ConfigureOptional replaces a source's allowed count and option list for a
// category. It never touches the selection; restoring still-valid selections
// is the reconciliation caller's job.
func ConfigureOptional(char *dnd5e.Character, category dnd5e.ProficiencyCategory, source dnd5e.Source, allowed int32, options []string) {
	triple := char.OptionalProficiencySetFor(category).Get(source)
	triple.Allowed = allowed
	triple.Options = append([]string(nil), options...)
}

// ClearOptional resets a source's triple to {0, [], []}
func ClearOptional(char *dnd5e.Character, category dnd5e.ProficiencyCategory, source dnd5e.Source) {
	triple := char.OptionalProficiencySetFor(category).Get(source)
	*triple = dnd5e.OptionalProficiency{}
}

// Recombine recomputes the category's combined view: allowed is the sum
// across sources, options and selected the de-duplicated unions. When every
// source-level selection is empty, the character's pre-existing combined
// selection is preserved so manually-saved picks survive a reload that
// happens before sources are repopulated.
func Recombine(char *dnd5e.Character, category dnd5e.ProficiencyCategory) {
	set := char.OptionalProficiencySetFor(category)

	var allowed int32
	var options []string
	var selected []string

	for _, source := range dnd5e.OptionalSources {
		triple := set.BySource[source]
		if triple == nil {
			continue
		}
		allowed += triple.Allowed
		options = append(options, triple.Options...)
		selected = append(selected, triple.Selected...)
	}

	if len(selected) == 0 {
		selected = set.Combined.Selected
	}

	set.Combined = dnd5e.OptionalProficiency{
		Allowed:  allowed,
		Options:  dedupe(options),
		Selected: dedupe(selected),
	}
}

// dedupe removes duplicates, keeping first-seen order
func dedupe(input []string) []string {
	seen := make(map[string]bool, len(input))
	result := []string{}

	for _, name := range input {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	return result
}
