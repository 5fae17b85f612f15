// Package abilities resolves a race and subrace's raw ability-improvement
// entries into fixed bonuses and pending choices, and renders summaries of
// the result.
package abilities

import (
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// FixedBonus is a resolved flat ability bonus
type FixedBonus struct {
	Ability string
	Value   int32
	Source  dnd5e.Source
}

// Choice is a resolved player pick. Count is the number of picks this
// descriptor represents; exploding multi-count descriptors into unit picks
// happens at ingestion into the character, not here. Weighted choices are
// one indivisible pick and keep Count at 1.
type Choice struct {
	Count    int32
	Amount   int32
	From     []string
	Weighted []dnd5e.AbilityOption
	Source   dnd5e.Source
}

// Resolution is the outcome of resolving a race/subrace pair
type Resolution struct {
	Fixed   []FixedBonus
	Choices []Choice
}

// Resolve converts the race's and subrace's raw entries. Race entries
// resolve first, then subrace entries. Entries with neither fixed values nor
// a choice are skipped; they contribute nothing.
func Resolve(race *rulebook.RaceDef, subrace *rulebook.SubraceDef) Resolution {
	var res Resolution

	if race != nil {
		// Some races bake a fixed bonus into the race record instead
		// of the generic entries.
		if race.BaseAbilityBonus != nil {
			res.Fixed = append(res.Fixed, FixedBonus{
				Ability: race.BaseAbilityBonus.Ability,
				Value:   race.BaseAbilityBonus.Amount,
				Source:  dnd5e.SourceRace,
			})
		}

		for i := range race.AbilityEntries {
			resolveEntry(&res, &race.AbilityEntries[i], dnd5e.SourceRace)
		}

		// A race with no ability data at all still grants a pick:
		// choose one ability, +2.
		if len(race.AbilityEntries) == 0 && race.BaseAbilityBonus == nil {
			res.Choices = append(res.Choices, Choice{
				Count:  1,
				Amount: 2,
				From:   allAbilities(),
				Source: dnd5e.SourceRace,
			})
		}
	}

	if subrace != nil {
		for i := range subrace.AbilityEntries {
			resolveEntry(&res, &subrace.AbilityEntries[i], dnd5e.SourceSubrace)
		}
	}

	return res
}

func resolveEntry(res *Resolution, entry *rulebook.AbilityEntry, source dnd5e.Source) {
	for _, ability := range dnd5e.Abilities {
		if amount, ok := entry.Fixed[ability]; ok && amount != 0 {
			res.Fixed = append(res.Fixed, FixedBonus{
				Ability: ability,
				Value:   amount,
				Source:  source,
			})
		}
	}

	if entry.Choose == nil {
		return
	}

	choice := Choice{
		Count:  entry.Choose.Count,
		Amount: entry.Choose.Amount,
		Source: source,
	}
	if choice.Count == 0 {
		choice.Count = 1
	}
	if choice.Amount == 0 {
		choice.Amount = 1
	}

	if len(entry.Choose.Weighted) > 0 {
		// Different amounts per ability: one indivisible pick.
		choice.Count = 1
		choice.Amount = 0
		for _, ability := range dnd5e.Abilities {
			if amount, ok := entry.Choose.Weighted[ability]; ok {
				choice.Weighted = append(choice.Weighted, dnd5e.AbilityOption{
					Ability: ability,
					Amount:  amount,
				})
			}
		}
	} else if len(entry.Choose.From) > 0 {
		choice.From = append(choice.From, entry.Choose.From...)
	} else {
		choice.From = allAbilities()
	}

	res.Choices = append(res.Choices, choice)
}

func allAbilities() []string {
	from := make([]string, len(dnd5e.Abilities))
	copy(from, dnd5e.Abilities)
	return from
}
