package character

import (
	"context"
	"log/slog"

	"github.com/emberforge/charbuilder/internal/engine/abilities"
	"github.com/emberforge/charbuilder/internal/engine/proficiency"
	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/errors"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// variantHumanSubrace is the subrace name that trades the fixed racial
// grants for an extra skill and a feat slot
const variantHumanSubrace = "Variant"

// UpdateRace replaces the character's race. Every grant tagged with the
// race or subrace source is withdrawn first, then the new race's grants are
// applied and earlier player picks that remain legal are restored. A zero
// Selection deselects the race entirely.
func (o *Orchestrator) UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	prior := snapshotSelections(char, dnd5e.SourceRace)
	clearSource(char, dnd5e.SourceRace, dnd5e.SourceSubrace)
	char.Race = input.Race

	var warnings []Warning
	if !input.Race.IsZero() {
		warnings, err = o.applyRace(ctx, char, input.Race, prior)
		if err != nil {
			return nil, err
		}
	}

	recombineAll(char)
	if err := o.saveAndPublish(ctx, char); err != nil {
		return nil, err
	}
	return &UpdateRaceOutput{Character: char, Warnings: warnings}, nil
}

// UpdateClass replaces the character's class. The progression ledger entry
// for the old class is retracted and the new class starts at the same
// level, keeping the character's total level stable.
func (o *Orchestrator) UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	prior := snapshotSelections(char, dnd5e.SourceClass)
	clearSource(char, dnd5e.SourceClass, dnd5e.SourceSubclass)
	oldClass := char.Class
	char.Class = input.Class

	var warnings []Warning
	if !input.Class.IsZero() {
		warnings, err = o.applyClass(ctx, char, input.Class, oldClass, prior)
		if err != nil {
			return nil, err
		}
	} else if !oldClass.IsZero() {
		o.retractClassEntry(ctx, char, oldClass.Name)
	}

	// Spell slots depend on the combined caster level of every class in
	// the ledger, not only the one that changed.
	progWarnings, err := o.refreshProgression(ctx, char, nil)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, progWarnings...)

	recombineAll(char)
	if err := o.saveAndPublish(ctx, char); err != nil {
		return nil, err
	}
	return &UpdateClassOutput{Character: char, Warnings: warnings}, nil
}

// UpdateBackground replaces the character's background
func (o *Orchestrator) UpdateBackground(ctx context.Context, input *UpdateBackgroundInput) (*UpdateBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	prior := snapshotSelections(char, dnd5e.SourceBackground)
	clearSource(char, dnd5e.SourceBackground)
	char.Background = input.Background

	var warnings []Warning
	if !input.Background.IsZero() {
		warnings, err = o.applyBackground(ctx, char, input.Background, prior)
		if err != nil {
			return nil, err
		}
	}

	recombineAll(char)
	if err := o.saveAndPublish(ctx, char); err != nil {
		return nil, err
	}
	return &UpdateBackgroundOutput{Character: char, Warnings: warnings}, nil
}

// applyRace looks up and applies a race selection. A catalogue miss stops
// the grant pass with a warning; the selection itself is kept so the player
// sees what they chose.
func (o *Orchestrator) applyRace(ctx context.Context, char *dnd5e.Character, sel dnd5e.Selection, prior priorSelections) ([]Warning, error) {
	key := rulebook.Key{Name: sel.Name, Book: sel.Book}
	race, err := o.catalogue.GetRace(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return []Warning{catalogueMiss(err)}, nil
		}
		return nil, errors.Wrapf(err, "failed to look up race %s", key)
	}

	var warnings []Warning
	var subrace *rulebook.SubraceDef
	if sel.Variant != "" {
		subraces, err := o.catalogue.GetSubraces(ctx, key)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to look up subraces of %s", key)
		}
		for _, sr := range subraces {
			if sr.Name == sel.Variant {
				subrace = sr
				break
			}
		}
		if subrace == nil {
			warnings = append(warnings, Warning{
				Code:    WarningCatalogueMiss,
				Message: "subrace " + sel.Variant + " not found for race " + key.String(),
			})
		}
	}

	o.applyAbilityResolution(char, abilities.Resolve(race, subrace))

	acc := newChoiceAccumulator()
	grantFixedList(char, dnd5e.CategoryWeapons, race.WeaponProficiencies, dnd5e.SourceRace)
	grantFixedList(char, dnd5e.CategoryArmor, race.ArmorProficiencies, dnd5e.SourceRace)
	applyEntries(char, acc, dnd5e.CategorySkills, race.SkillProficiencies, dnd5e.SourceRace)
	applyEntries(char, acc, dnd5e.CategoryTools, race.ToolProficiencies, dnd5e.SourceRace)
	applyEntries(char, acc, dnd5e.CategoryLanguages, race.LanguageProficiencies, dnd5e.SourceRace)
	for _, t := range race.Traits {
		char.Traits = append(char.Traits, dnd5e.Trait{
			Name:        t.Name,
			Description: t.Description,
			Source:      dnd5e.SourceRace,
		})
	}

	if subrace != nil {
		grantFixedList(char, dnd5e.CategoryWeapons, subrace.WeaponProficiencies, dnd5e.SourceSubrace)
		grantFixedList(char, dnd5e.CategoryArmor, subrace.ArmorProficiencies, dnd5e.SourceSubrace)
		// Subrace choice slots accumulate under the race source: the
		// optional-proficiency model keys slots by race, class, and
		// background only.
		applyEntries(char, acc, dnd5e.CategorySkills, subrace.SkillProficiencies, dnd5e.SourceSubrace)
		applyEntries(char, acc, dnd5e.CategoryTools, subrace.ToolProficiencies, dnd5e.SourceSubrace)
		applyEntries(char, acc, dnd5e.CategoryLanguages, subrace.LanguageProficiencies, dnd5e.SourceSubrace)
		for _, t := range subrace.Traits {
			char.Traits = append(char.Traits, dnd5e.Trait{
				Name:        t.Name,
				Description: t.Description,
				Source:      dnd5e.SourceSubrace,
			})
		}

		if subrace.Name == variantHumanSubrace {
			acc.add(dnd5e.CategorySkills, 1, dnd5e.Skills, nil)
			char.PendingFeatChoices = append(char.PendingFeatChoices, dnd5e.PendingFeatChoice{
				Source: dnd5e.SourceSubrace,
			})
		}
	}

	acc.configure(char, dnd5e.SourceRace)
	restoreSelections(char, dnd5e.SourceRace, prior)
	return warnings, nil
}

// applyClass looks up and applies a class selection, keeping the
// progression ledger in step with it.
func (o *Orchestrator) applyClass(ctx context.Context, char *dnd5e.Character, sel, oldClass dnd5e.Selection, prior priorSelections) ([]Warning, error) {
	key := rulebook.Key{Name: sel.Name, Book: sel.Book}
	class, err := o.catalogue.GetClass(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			// The selection stays recorded, but the ledger and its
			// spellcasting must not keep carrying the retired class.
			if !oldClass.IsZero() {
				o.retractClassEntry(ctx, char, oldClass.Name)
			}
			return []Warning{catalogueMiss(err)}, nil
		}
		return nil, errors.Wrapf(err, "failed to look up class %s", key)
	}

	var warnings []Warning
	var subclass *rulebook.SubclassDef
	if sel.Variant != "" {
		subclasses, err := o.catalogue.GetSubclasses(ctx, key)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to look up subclasses of %s", key)
		}
		for _, sc := range subclasses {
			if sc.Name == sel.Variant {
				subclass = sc
				break
			}
		}
		if subclass == nil {
			warnings = append(warnings, Warning{
				Code:    WarningCatalogueMiss,
				Message: "subclass " + sel.Variant + " not found for class " + key.String(),
			})
		}
	}

	acc := newChoiceAccumulator()
	grantFixedList(char, dnd5e.CategorySavingThrows, class.SavingThrows, dnd5e.SourceClass)
	grantFixedList(char, dnd5e.CategoryArmor, class.ArmorProficiencies, dnd5e.SourceClass)
	grantFixedList(char, dnd5e.CategoryWeapons, class.WeaponProficiencies, dnd5e.SourceClass)
	applyEntries(char, acc, dnd5e.CategorySkills, class.SkillProficiencies, dnd5e.SourceClass)
	applyEntries(char, acc, dnd5e.CategoryTools, class.ToolProficiencies, dnd5e.SourceClass)

	if subclass != nil {
		applyEntries(char, acc, dnd5e.CategorySkills, subclass.SkillProficiencies, dnd5e.SourceSubclass)
		applyEntries(char, acc, dnd5e.CategoryTools, subclass.ToolProficiencies, dnd5e.SourceSubclass)
		applyEntries(char, acc, dnd5e.CategoryLanguages, subclass.LanguageProficiencies, dnd5e.SourceSubclass)
	}

	acc.configure(char, dnd5e.SourceClass)
	restoreSelections(char, dnd5e.SourceClass, prior)

	// Carry the old class's level over so changing class does not reset
	// character level.
	level := int32(1)
	if !oldClass.IsZero() && oldClass.Name != class.Name {
		if old := char.Progression.ClassEntry(oldClass.Name); old != nil {
			level = old.Level
		}
		o.retractClassEntry(ctx, char, oldClass.Name)
	} else if existing := char.Progression.ClassEntry(class.Name); existing != nil {
		level = existing.Level
	}

	effective := class
	if subclass != nil && subclass.Caster != "" {
		adjusted := *class
		adjusted.Caster = subclass.Caster
		effective = &adjusted
	}
	if err := o.ledger.AddClassLevel(char, effective, level); err != nil {
		return nil, err
	}
	if subclass != nil {
		if entry := char.Progression.ClassEntry(class.Name); entry != nil {
			entry.Subclass = subclass.Name
		}
	}

	return warnings, nil
}

// applyBackground looks up and applies a background selection. A variant,
// when chosen and found, replaces the base background's grants entirely.
func (o *Orchestrator) applyBackground(ctx context.Context, char *dnd5e.Character, sel dnd5e.Selection, prior priorSelections) ([]Warning, error) {
	key := rulebook.Key{Name: sel.Name, Book: sel.Book}
	bg, err := o.catalogue.GetBackground(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return []Warning{catalogueMiss(err)}, nil
		}
		return nil, errors.Wrapf(err, "failed to look up background %s", key)
	}

	skills := bg.SkillProficiencies
	tools := bg.ToolProficiencies
	languages := bg.LanguageProficiencies
	featureName := bg.FeatureName
	featureDesc := bg.FeatureDescription

	var warnings []Warning
	if sel.Variant != "" {
		variants, err := o.catalogue.GetVariants(ctx, key)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to look up variants of %s", key)
		}
		var variant *rulebook.BackgroundVariantDef
		for _, v := range variants {
			if v.Name == sel.Variant {
				variant = v
				break
			}
		}
		if variant == nil {
			warnings = append(warnings, Warning{
				Code:    WarningCatalogueMiss,
				Message: "variant " + sel.Variant + " not found for background " + key.String(),
			})
		} else {
			skills = variant.SkillProficiencies
			tools = variant.ToolProficiencies
			languages = variant.LanguageProficiencies
			featureName = variant.FeatureName
			featureDesc = variant.FeatureDescription
		}
	}

	acc := newChoiceAccumulator()
	applyEntries(char, acc, dnd5e.CategorySkills, skills, dnd5e.SourceBackground)
	applyEntries(char, acc, dnd5e.CategoryTools, tools, dnd5e.SourceBackground)
	applyEntries(char, acc, dnd5e.CategoryLanguages, languages, dnd5e.SourceBackground)
	acc.configure(char, dnd5e.SourceBackground)
	restoreSelections(char, dnd5e.SourceBackground, prior)

	if featureName != "" {
		char.Traits = append(char.Traits, dnd5e.Trait{
			Name:        featureName,
			Description: featureDesc,
			Source:      dnd5e.SourceBackground,
		})
	}
	return warnings, nil
}

// applyAbilityResolution ingests resolved ability data, exploding
// multi-count choices into unit picks so each can be decided independently.
// Weighted choices stay whole.
func (o *Orchestrator) applyAbilityResolution(char *dnd5e.Character, res abilities.Resolution) {
	for _, f := range res.Fixed {
		char.AbilityBonuses = append(char.AbilityBonuses, dnd5e.AbilityBonus{
			Ability: f.Ability,
			Amount:  f.Value,
			Source:  f.Source,
		})
	}
	for _, c := range res.Choices {
		if len(c.Weighted) > 0 {
			char.PendingAbilityChoices = append(char.PendingAbilityChoices, dnd5e.PendingAbilityChoice{
				Count:    1,
				Weighted: c.Weighted,
				Source:   c.Source,
			})
			continue
		}
		for i := int32(0); i < c.Count; i++ {
			char.PendingAbilityChoices = append(char.PendingAbilityChoices, dnd5e.PendingAbilityChoice{
				Count:  1,
				Amount: c.Amount,
				From:   c.From,
				Source: c.Source,
			})
		}
	}
}

// retractClassEntry drops a class from the progression ledger, logging
// rather than failing when the entry is already gone.
func (o *Orchestrator) retractClassEntry(ctx context.Context, char *dnd5e.Character, className string) {
	if err := o.ledger.RemoveClassLevel(char, className); err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to retract class entry",
			"character_id", char.ID,
			"class", className,
			"error", err.Error())
	}
}

// applyProficiencySelection validates and records the player's picks for
// one (category, source) slot, then recomputes the combined view.
func (o *Orchestrator) applyProficiencySelection(char *dnd5e.Character, category dnd5e.ProficiencyCategory, source dnd5e.Source, selected []string) error {
	if !isOptionalCategory(category) {
		return errors.InvalidArgumentf("category %s has no optional slots", category)
	}
	if !isOptionalSource(source) {
		return errors.InvalidArgumentf("source %s carries no optional slots", source)
	}

	set := char.OptionalProficiencySetFor(category)
	triple := set.Get(source)

	vb := errors.NewValidationBuilder()
	if int32(len(selected)) > triple.Allowed {
		vb.Fieldf("selected", "%d picks exceed the %d allowed", len(selected), triple.Allowed)
	}
	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if seen[name] {
			vb.Fieldf("selected", "%s is picked twice", name)
			continue
		}
		seen[name] = true
		if !contains(triple.Options, name) {
			vb.Fieldf("selected", "%s is not among the offered options", name)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	triple.Selected = append([]string(nil), selected...)
	proficiency.Recombine(char, category)
	return nil
}

// priorSelections captures one source's picks per category before a
// reconciliation pass, so still-legal picks survive a source change.
type priorSelections map[dnd5e.ProficiencyCategory][]string

func snapshotSelections(char *dnd5e.Character, source dnd5e.Source) priorSelections {
	prior := make(priorSelections, len(dnd5e.OptionalCategories))
	for _, category := range dnd5e.OptionalCategories {
		set := char.OptionalProficiencies[category]
		if set == nil || set.BySource == nil {
			continue
		}
		triple := set.BySource[source]
		if triple == nil || len(triple.Selected) == 0 {
			continue
		}
		prior[category] = append([]string(nil), triple.Selected...)
	}
	return prior
}

// restoreSelections re-applies a source's earlier picks where they remain
// legal: still offered, not now granted as fixed, and within the new
// allowed count. Auto-populated picks are never overwritten.
func restoreSelections(char *dnd5e.Character, source dnd5e.Source, prior priorSelections) {
	for category, picks := range prior {
		set := char.OptionalProficiencySetFor(category)
		triple := set.Get(source)
		if len(triple.Selected) > 0 {
			continue
		}

		var restored []string
		for _, name := range picks {
			if !contains(triple.Options, name) {
				continue
			}
			if hasFixedGrant(char, category, name) {
				continue
			}
			restored = append(restored, name)
			if int32(len(restored)) >= triple.Allowed {
				break
			}
		}
		triple.Selected = restored
	}
}

// hasFixedGrant reports whether a proficiency is already a fixed grant,
// making picking it redundant
func hasFixedGrant(char *dnd5e.Character, category dnd5e.ProficiencyCategory, name string) bool {
	for _, p := range char.Proficiencies[category] {
		if p.Name == name {
			return true
		}
	}
	return false
}

// clearSource withdraws every grant tagged with any of the given sources.
// The optional-slot triples are cleared for the sources that carry them;
// the combined view is rebuilt by the caller after re-applying grants.
func clearSource(char *dnd5e.Character, sources ...dnd5e.Source) {
	for _, source := range sources {
		for _, category := range dnd5e.Categories {
			proficiency.RemoveSource(char, category, source)
		}
		if isOptionalSource(source) {
			for _, category := range dnd5e.OptionalCategories {
				proficiency.ClearOptional(char, category, source)
			}
		}

		char.AbilityBonuses = filterBonuses(char.AbilityBonuses, source)
		char.PendingAbilityChoices = filterAbilityChoices(char.PendingAbilityChoices, source)
		char.Traits = filterTraits(char.Traits, source)
		char.Feats = filterFeats(char.Feats, source)
		char.PendingFeatChoices = filterFeatChoices(char.PendingFeatChoices, source)
	}
}

func recombineAll(char *dnd5e.Character) {
	for _, category := range dnd5e.OptionalCategories {
		proficiency.Recombine(char, category)
	}
}

// choiceAccumulator merges a source's choice entries per category before
// configuring the optional slots: allowed counts add up and option lists
// union.
type choiceAccumulator struct {
	byCategory map[dnd5e.ProficiencyCategory]*accumulatedChoice
}

type accumulatedChoice struct {
	allowed      int32
	options      []string
	autoSelected []string
}

func newChoiceAccumulator() *choiceAccumulator {
	return &choiceAccumulator{
		byCategory: make(map[dnd5e.ProficiencyCategory]*accumulatedChoice),
	}
}

func (a *choiceAccumulator) add(category dnd5e.ProficiencyCategory, count int32, options, autoSelected []string) {
	acc := a.byCategory[category]
	if acc == nil {
		acc = &accumulatedChoice{}
		a.byCategory[category] = acc
	}
	acc.allowed += count
	for _, opt := range options {
		if !contains(acc.options, opt) {
			acc.options = append(acc.options, opt)
		}
	}
	acc.autoSelected = append(acc.autoSelected, autoSelected...)
}

// configure writes the accumulated slots onto the character under one
// source tag. Undifferentiated category grants (e.g. "Musical instrument")
// arrive pre-selected so the player is not asked to pick from a one-entry
// list.
func (a *choiceAccumulator) configure(char *dnd5e.Character, source dnd5e.Source) {
	for category, acc := range a.byCategory {
		proficiency.ConfigureOptional(char, category, source, acc.allowed, acc.options)
		if len(acc.autoSelected) > 0 {
			triple := char.OptionalProficiencySetFor(category).Get(source)
			auto := acc.autoSelected
			if int32(len(auto)) > acc.allowed {
				auto = auto[:acc.allowed]
			}
			triple.Selected = append([]string(nil), auto...)
		}
	}
}

// applyEntries grants an entry list's fixed names and accumulates its
// choices. Subrace and subclass entries tag fixed grants with their own
// source but accumulate choices under the parent source.
func applyEntries(char *dnd5e.Character, acc *choiceAccumulator, category dnd5e.ProficiencyCategory, entries []rulebook.ProficiencyEntry, source dnd5e.Source) {
	for i := range entries {
		entry := &entries[i]
		for _, name := range entry.Fixed {
			proficiency.GrantFixed(char, category, name, source)
		}
		if entry.Choose == nil {
			continue
		}

		count := entry.Choose.Count
		if count < 1 {
			count = 1
		}
		switch {
		case entry.Choose.Category != "":
			acc.add(category, count, []string{entry.Choose.Category}, []string{entry.Choose.Category})
		case entry.Choose.Any && category == dnd5e.CategorySkills:
			acc.add(category, count, dnd5e.Skills, nil)
		case entry.Choose.Any && category == dnd5e.CategoryLanguages:
			acc.add(category, count, dnd5e.Languages, nil)
		default:
			acc.add(category, count, entry.Choose.From, nil)
		}
	}
}

func grantFixedList(char *dnd5e.Character, category dnd5e.ProficiencyCategory, names []string, source dnd5e.Source) {
	for _, name := range names {
		proficiency.GrantFixed(char, category, name, source)
	}
}

func catalogueMiss(err error) Warning {
	return Warning{Code: WarningCatalogueMiss, Message: err.Error()}
}

func isOptionalCategory(category dnd5e.ProficiencyCategory) bool {
	for _, c := range dnd5e.OptionalCategories {
		if c == category {
			return true
		}
	}
	return false
}

func isOptionalSource(source dnd5e.Source) bool {
	for _, s := range dnd5e.OptionalSources {
		if s == source {
			return true
		}
	}
	return false
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func filterBonuses(list []dnd5e.AbilityBonus, source dnd5e.Source) []dnd5e.AbilityBonus {
	out := list[:0]
	for _, item := range list {
		if item.Source != source {
			out = append(out, item)
		}
	}
	return out
}

func filterAbilityChoices(list []dnd5e.PendingAbilityChoice, source dnd5e.Source) []dnd5e.PendingAbilityChoice {
	out := list[:0]
	for _, item := range list {
		if item.Source != source {
			out = append(out, item)
		}
	}
	return out
}

func filterTraits(list []dnd5e.Trait, source dnd5e.Source) []dnd5e.Trait {
	out := list[:0]
	for _, item := range list {
		if item.Source != source {
			out = append(out, item)
		}
	}
	return out
}

func filterFeats(list []dnd5e.Feat, source dnd5e.Source) []dnd5e.Feat {
	out := list[:0]
	for _, item := range list {
		if item.Source != source {
			out = append(out, item)
		}
	}
	return out
}

func filterFeatChoices(list []dnd5e.PendingFeatChoice, source dnd5e.Source) []dnd5e.PendingFeatChoice {
	out := list[:0]
	for _, item := range list {
		if item.Source != source {
			out = append(out, item)
		}
	}
	return out
}
