package warbands

//go:generate mockgen -destination=mock/mock_repository.go -package=mockwarbands -source=repository.go

import (
	"context"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
)

// Repository defines the interface for warband storage
type Repository interface {
	// Create stores a new warband
	Create(ctx context.Context, wb *warband.Warband) error

	// Get retrieves a warband by ID
	Get(ctx context.Context, id string) (*warband.Warband, error)

	// List retrieves all stored warbands
	List(ctx context.Context) ([]*warband.Warband, error)

	// Update overwrites an existing warband
	Update(ctx context.Context, wb *warband.Warband) error

	// Delete removes a warband
	Delete(ctx context.Context, id string) error
}
