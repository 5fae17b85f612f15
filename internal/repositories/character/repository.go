// Package character provides persistence for character records
package character

import (
	"context"

	"github.com/emberforge/charbuilder/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/emberforge/charbuilder/internal/repositories/character Repository

// CreateInput holds the character to persist
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput returns the persisted character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput identifies a character to load
type GetInput struct {
	ID string
}

// GetOutput returns the loaded character
type GetOutput struct {
	Character *dnd5e.Character
}

// UpdateInput holds the character to overwrite
type UpdateInput struct {
	Character *dnd5e.Character
}

// UpdateOutput returns the updated character
type UpdateOutput struct {
	Character *dnd5e.Character
}

// DeleteInput identifies a character to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; deletion returns no data
type DeleteOutput struct{}

// ListByPlayerIDInput identifies the player whose characters to list
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput returns the player's characters
type ListByPlayerIDOutput struct {
	Characters []*dnd5e.Character
}

// Repository defines the character storage contract
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}
