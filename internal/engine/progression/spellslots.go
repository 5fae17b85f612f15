package progression

import (
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// standardSlotTable holds spell slots per caster level (rows, 1..20) and
// spell level (columns, 1st..9th).
var standardSlotTable = [20][9]int32{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// pactSlotTable holds pact-magic slot count and slot level per class level
// (1..20). Pact magic never combines with the standard table.
var pactSlotTable = [20]struct {
	Count int32
	Level int32
}{
	{1, 1}, {2, 1},
	{2, 2}, {2, 2},
	{2, 3}, {2, 3},
	{2, 4}, {2, 4},
	{2, 5}, {2, 5},
	{3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{4, 5}, {4, 5}, {4, 5}, {4, 5},
}

// CasterEntry is one class's contribution to the multiclass caster level
type CasterEntry struct {
	Tier  dnd5e.CasterType
	Level int32
}

// CombinedCasterLevel sums the contributions of standard-table casters:
// full casters contribute their level, half casters floor(level/2), third
// casters floor(level/3). Pact-magic casters contribute nothing.
func CombinedCasterLevel(entries []CasterEntry) int32 {
	var combined int32
	for _, e := range entries {
		switch e.Tier {
		case dnd5e.CasterFull:
			combined += e.Level
		case dnd5e.CasterHalf:
			combined += e.Level / 2
		case dnd5e.CasterThird:
			combined += e.Level / 3
		}
	}
	return combined
}

// StandardSlots looks up the standard slot row for a combined caster level.
// Levels outside 1..20 return no slots.
func StandardSlots(casterLevel int32) map[int32]int32 {
	slots := make(map[int32]int32)
	if casterLevel < 1 || casterLevel > 20 {
		return slots
	}
	row := standardSlotTable[casterLevel-1]
	for i, count := range row {
		if count > 0 {
			slots[int32(i+1)] = count
		}
	}
	return slots
}

// PactSlots looks up pact-magic slots for a pact caster's own class level
func PactSlots(classLevel int32) (count int32, slotLevel int32) {
	if classLevel < 1 || classLevel > 20 {
		return 0, 0
	}
	entry := pactSlotTable[classLevel-1]
	return entry.Count, entry.Level
}

// UpdateSpellSlots recomputes every caster class's slot map. Standard-table
// casters share the combined row; the pact caster keeps its own table keyed
// only by its own level. Current slots are clamped to the new maximums; new
// slot levels open fully available.
func UpdateSpellSlots(char *dnd5e.Character, defs map[string]*rulebook.ClassDef) {
	var entries []CasterEntry
	for i := range char.Progression.Classes {
		class := &char.Progression.Classes[i]
		def := defs[class.Name]
		if def == nil {
			continue
		}
		entries = append(entries, CasterEntry{Tier: def.Caster, Level: class.Level})
	}
	combined := StandardSlots(CombinedCasterLevel(entries))

	for i := range char.Progression.Classes {
		class := &char.Progression.Classes[i]
		def := defs[class.Name]
		if def == nil || def.Caster == dnd5e.CasterNone || def.Caster == "" {
			continue
		}

		block := char.Spellcasting[class.Name]
		if block == nil {
			continue
		}

		if def.Caster == dnd5e.CasterPact {
			count, slotLevel := PactSlots(class.Level)
			applySlots(block, map[int32]int32{slotLevel: count})
			continue
		}
		applySlots(block, combined)
	}
}

func applySlots(block *dnd5e.SpellcastingBlock, maxes map[int32]int32) {
	if block.SpellSlots == nil {
		block.SpellSlots = make(map[int32]*dnd5e.SpellSlot)
	}

	for level := range block.SpellSlots {
		if maxes[level] == 0 {
			delete(block.SpellSlots, level)
		}
	}

	for level, maxCount := range maxes {
		if maxCount == 0 {
			continue
		}
		slot := block.SpellSlots[level]
		if slot == nil {
			block.SpellSlots[level] = &dnd5e.SpellSlot{Max: maxCount, Current: maxCount}
			continue
		}
		if slot.Current > maxCount || slot.Max < maxCount {
			// Slot count grew or shrank; reopen at the new maximum
			slot.Current = maxCount
		}
		slot.Max = maxCount
	}
}
