// Package rulebook defines the read-only rules catalogue the engine reads
// race, class, and background definitions from. Implementations are injected;
// the engine never reaches for a process-wide catalogue.
package rulebook

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=mock/mock_catalogue.go -package=rulebookmock github.com/emberforge/charbuilder/internal/rulebook Catalogue

// Key identifies a catalogue entry by name and source book. Using a struct
// instead of a concatenated string keeps names containing separators
// unambiguous.
type Key struct {
	Name string
	Book string
}

// String renders the key for log and error messages
func (k Key) String() string {
	if k.Book == "" {
		return k.Name
	}
	return fmt.Sprintf("%s (%s)", k.Name, k.Book)
}

// Catalogue is the read-only lookup service for rule-book content. Lookups
// return a NotFound error when the key references content outside the
// allowed sources; callers decide whether that is fatal.
type Catalogue interface {
	// GetRace returns a race definition
	GetRace(ctx context.Context, key Key) (*RaceDef, error)

	// GetSubraces returns the subraces of a race
	GetSubraces(ctx context.Context, key Key) ([]*SubraceDef, error)

	// GetClass returns a class definition
	GetClass(ctx context.Context, key Key) (*ClassDef, error)

	// GetSubclasses returns the subclasses of a class
	GetSubclasses(ctx context.Context, key Key) ([]*SubclassDef, error)

	// GetBackground returns a background definition
	GetBackground(ctx context.Context, key Key) (*BackgroundDef, error)

	// GetVariants returns the variants of a background
	GetVariants(ctx context.Context, key Key) ([]*BackgroundVariantDef, error)
}
