// Package external implements the rules catalogue over the dnd5e-api
// client. Race and class data comes from the API; subrace detail,
// subclasses, and backgrounds are filled in from the bundled tables in
// srd.go because the upstream API only carries references for them.
package external

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	internaldnd5e "github.com/emberforge/charbuilder/internal/entities/dnd5e"
	"github.com/emberforge/charbuilder/internal/errors"
	"github.com/emberforge/charbuilder/internal/rulebook"
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var hyphenRun = regexp.MustCompile(`-+`)

// generateSlug creates the API's URL key from a display name
func generateSlug(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return hyphenRun.ReplaceAllString(slug, "-")
}

// abilityKeys maps the API's three-letter ability keys to ability ids
var abilityKeys = map[string]string{
	"str": internaldnd5e.AbilityStrength,
	"dex": internaldnd5e.AbilityDexterity,
	"con": internaldnd5e.AbilityConstitution,
	"int": internaldnd5e.AbilityIntelligence,
	"wis": internaldnd5e.AbilityWisdom,
	"cha": internaldnd5e.AbilityCharisma,
}

// Config contains configuration options for the catalogue client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type client struct {
	dnd5eClient dnd5e.Interface
}

var _ rulebook.Catalogue = (*client)(nil)

// New creates a catalogue backed by the D&D 5e API, with responses cached
// for the configured TTL.
func New(cfg *Config) (rulebook.Catalogue, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetRace(ctx context.Context, key rulebook.Key) (*rulebook.RaceDef, error) {
	slug := generateSlug(key.Name)
	race, err := c.dnd5eClient.GetRace(slug)
	if err != nil {
		return nil, lookupError(err, "race", key)
	}

	def := &rulebook.RaceDef{
		Name:  race.Name,
		Book:  key.Book,
		Speed: int32(race.Speed), // nolint:gosec // racial speeds are small values
		Size:  race.Size,
	}

	if entry := convertAbilityBonuses(race.AbilityBonuses); entry != nil {
		def.AbilityEntries = append(def.AbilityEntries, *entry)
	}

	for _, prof := range race.StartingProficiencies {
		classifyRacialProficiency(def, prof.Name)
	}

	if len(race.Languages) > 0 {
		entry := rulebook.ProficiencyEntry{}
		for _, lang := range race.Languages {
			entry.Fixed = append(entry.Fixed, lang.Name)
		}
		def.LanguageProficiencies = append(def.LanguageProficiencies, entry)
	}
	if choose := convertChoiceOption(race.LanguageOptions); choose != nil {
		def.LanguageProficiencies = append(def.LanguageProficiencies, rulebook.ProficiencyEntry{Choose: choose})
	}

	if race.StartingProficiencyOptions != nil {
		choose := convertChoiceOption(race.StartingProficiencyOptions)
		desc := strings.ToLower(race.StartingProficiencyOptions.Description)
		switch {
		case strings.Contains(desc, "tool") || strings.Contains(desc, "supplies") ||
			strings.Contains(desc, "instrument"):
			if len(choose.From) == 0 {
				// Undifferentiated tool grants ("a musical instrument of
				// your choice") carry no option list; the description
				// names the whole category.
				choose.Category = race.StartingProficiencyOptions.Description
			}
			def.ToolProficiencies = append(def.ToolProficiencies, rulebook.ProficiencyEntry{Choose: choose})
		case strings.Contains(desc, "skill"):
			def.SkillProficiencies = append(def.SkillProficiencies, rulebook.ProficiencyEntry{Choose: choose})
		default:
			slog.DebugContext(ctx, "ignoring unclassified racial proficiency choice",
				"race", key.String(),
				"description", race.StartingProficiencyOptions.Description)
		}
	}

	for _, trait := range race.Traits {
		def.Traits = append(def.Traits, rulebook.TraitDef{Name: trait.Name})
	}

	return def, nil
}

func (c *client) GetSubraces(ctx context.Context, key rulebook.Key) ([]*rulebook.SubraceDef, error) {
	slug := generateSlug(key.Name)
	race, err := c.dnd5eClient.GetRace(slug)
	if err != nil {
		return nil, lookupError(err, "race", key)
	}

	var defs []*rulebook.SubraceDef
	for _, ref := range race.SubRaces {
		if detailed := subraceDetails[ref.Key]; detailed != nil {
			def := *detailed
			defs = append(defs, &def)
			continue
		}
		// The API only carries references here; an unknown subrace still
		// shows up selectable, just without grants.
		slog.DebugContext(ctx, "no bundled detail for subrace, serving reference only",
			"race", key.String(),
			"subrace", ref.Key)
		defs = append(defs, &rulebook.SubraceDef{Name: ref.Name})
	}

	for _, extra := range extraSubraces[slug] {
		def := *extra
		defs = append(defs, &def)
	}
	return defs, nil
}

func (c *client) GetClass(ctx context.Context, key rulebook.Key) (*rulebook.ClassDef, error) {
	slug := generateSlug(key.Name)
	class, err := c.dnd5eClient.GetClass(slug)
	if err != nil {
		return nil, lookupError(err, "class", key)
	}

	def := &rulebook.ClassDef{
		Name:   class.Name,
		Book:   key.Book,
		HitDie: int32(class.HitDie), // nolint:gosec // hit dice are small values
	}

	for _, st := range class.SavingThrows {
		def.SavingThrows = append(def.SavingThrows, st.Name)
	}
	for _, armor := range class.ArmorProficiencies {
		def.ArmorProficiencies = append(def.ArmorProficiencies, armor.Name)
	}
	for _, weapon := range class.WeaponProficiencies {
		def.WeaponProficiencies = append(def.WeaponProficiencies, weapon.Name)
	}
	if len(class.ToolProficiencies) > 0 {
		entry := rulebook.ProficiencyEntry{}
		for _, tool := range class.ToolProficiencies {
			entry.Fixed = append(entry.Fixed, tool.Name)
		}
		def.ToolProficiencies = append(def.ToolProficiencies, entry)
	}

	for _, choice := range class.ProficiencyChoices {
		if choice == nil {
			continue
		}
		choose := convertChoiceOption(choice)
		switch {
		case choice.ChoiceType == "skills" ||
			strings.Contains(strings.ToLower(choice.Description), "skill"):
			def.SkillProficiencies = append(def.SkillProficiencies, rulebook.ProficiencyEntry{Choose: choose})
		case strings.Contains(strings.ToLower(choice.Description), "tool") ||
			strings.Contains(strings.ToLower(choice.Description), "instrument"):
			if len(choose.From) == 0 {
				choose.Category = choice.Description
			}
			def.ToolProficiencies = append(def.ToolProficiencies, rulebook.ProficiencyEntry{Choose: choose})
		}
	}

	def.Features = c.fetchClassFeatures(ctx, slug)

	if casting := classCasting[slug]; casting != nil {
		def.Caster = casting.tier
		def.SpellcastingAbility = casting.ability
	} else {
		def.Caster = internaldnd5e.CasterNone
	}

	return def, nil
}

// fetchClassFeatures walks every class level for feature references. A
// level that fails to load is skipped; the feature list degrades rather
// than failing the whole class lookup.
func (c *client) fetchClassFeatures(ctx context.Context, slug string) []rulebook.FeatureDef {
	var features []rulebook.FeatureDef
	for level := internaldnd5e.MinCharacterLevel; level <= internaldnd5e.MaxCharacterLevel; level++ {
		levelData, err := c.dnd5eClient.GetClassLevel(slug, int(level))
		if err != nil {
			slog.DebugContext(ctx, "failed to load class level",
				"class", slug,
				"level", level,
				"error", err.Error())
			continue
		}
		for _, ref := range levelData.Features {
			if ref == nil {
				continue
			}
			features = append(features, rulebook.FeatureDef{
				Name:  ref.Name,
				Level: level,
			})
		}
	}
	return features
}

func (c *client) GetSubclasses(_ context.Context, key rulebook.Key) ([]*rulebook.SubclassDef, error) {
	slug := generateSlug(key.Name)
	if _, err := c.dnd5eClient.GetClass(slug); err != nil {
		return nil, lookupError(err, "class", key)
	}

	var defs []*rulebook.SubclassDef
	for _, sub := range subclassDetails[slug] {
		def := *sub
		defs = append(defs, &def)
	}
	return defs, nil
}

func (c *client) GetBackground(_ context.Context, key rulebook.Key) (*rulebook.BackgroundDef, error) {
	bg := backgroundDetails[generateSlug(key.Name)]
	if bg == nil {
		return nil, errors.NotFoundf("background %s not found", key)
	}
	def := *bg
	def.Book = key.Book
	return &def, nil
}

func (c *client) GetVariants(_ context.Context, key rulebook.Key) ([]*rulebook.BackgroundVariantDef, error) {
	slug := generateSlug(key.Name)
	if backgroundDetails[slug] == nil {
		return nil, errors.NotFoundf("background %s not found", key)
	}

	var defs []*rulebook.BackgroundVariantDef
	for _, v := range backgroundVariants[slug] {
		def := *v
		defs = append(defs, &def)
	}
	return defs, nil
}

// convertAbilityBonuses folds the API's bonus list into one fixed entry
func convertAbilityBonuses(bonuses []*entities.AbilityBonus) *rulebook.AbilityEntry {
	fixed := make(map[string]int32)
	for _, bonus := range bonuses {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}
		ability, ok := abilityKeys[bonus.AbilityScore.Key]
		if !ok {
			continue
		}
		fixed[ability] = int32(bonus.Bonus) // nolint:gosec // bonuses are small values
	}
	if len(fixed) == 0 {
		return nil
	}
	return &rulebook.AbilityEntry{Fixed: fixed}
}

// convertChoiceOption flattens a choice's reference options into names
func convertChoiceOption(choice *entities.ChoiceOption) *rulebook.ProficiencyChoice {
	if choice == nil {
		return nil
	}

	choose := &rulebook.ProficiencyChoice{
		Count: int32(choice.ChoiceCount), // nolint:gosec // choice counts are small values
	}
	if choice.OptionList != nil {
		for _, option := range choice.OptionList.Options {
			if refOpt, ok := option.(*entities.ReferenceOption); ok && refOpt.Reference != nil {
				choose.From = append(choose.From, trimSkillPrefix(refOpt.Reference.Name))
			}
		}
	}
	return choose
}

// classifyRacialProficiency sorts a flat proficiency name into a category.
// The API exposes racial proficiencies as one undifferentiated list; the
// name is all there is to go on.
func classifyRacialProficiency(def *rulebook.RaceDef, name string) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "skill:"):
		def.SkillProficiencies = append(def.SkillProficiencies, rulebook.ProficiencyEntry{
			Fixed: []string{trimSkillPrefix(name)},
		})
	case isWeaponName(lower):
		def.WeaponProficiencies = append(def.WeaponProficiencies, name)
	case isToolName(lower):
		def.ToolProficiencies = append(def.ToolProficiencies, rulebook.ProficiencyEntry{
			Fixed: []string{name},
		})
	case strings.Contains(lower, "armor"):
		def.ArmorProficiencies = append(def.ArmorProficiencies, name)
	}
}

func trimSkillPrefix(name string) string {
	if rest, ok := strings.CutPrefix(name, "Skill: "); ok {
		return rest
	}
	return strings.TrimSpace(strings.TrimPrefix(name, "Skill:"))
}

func isWeaponName(lower string) bool {
	return strings.Contains(lower, "sword") ||
		strings.Contains(lower, "axe") ||
		strings.Contains(lower, "hammer") ||
		strings.Contains(lower, "bow") ||
		strings.Contains(lower, "dagger") ||
		strings.Contains(lower, "mace") ||
		strings.Contains(lower, "spear") ||
		strings.Contains(lower, "weapon")
}

func isToolName(lower string) bool {
	return strings.Contains(lower, "tools") ||
		strings.Contains(lower, "supplies") ||
		strings.Contains(lower, "kit") ||
		strings.Contains(lower, "instrument")
}

// lookupError maps an API failure onto the catalogue contract: misses are
// NotFound so callers can degrade, anything else is Unavailable.
func lookupError(err error, kind string, key rulebook.Key) error {
	if strings.Contains(err.Error(), "404") ||
		strings.Contains(strings.ToLower(err.Error()), "not found") {
		return errors.NotFoundf("%s %s not found", kind, key)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable,
		fmt.Sprintf("failed to look up %s %s", kind, key))
}
