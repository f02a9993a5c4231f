package services

import (
	"github.com/fiveleagues/warband-bot/internal/dice"
	"github.com/fiveleagues/warband-bot/internal/repositories/warbands"
	creationService "github.com/fiveleagues/warband-bot/internal/services/creation"
	warbandService "github.com/fiveleagues/warband-bot/internal/services/warband"
)

// Provider holds all service instances
type Provider struct {
	WarbandService  warbandService.Service
	CreationService creationService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	WarbandRepository warbands.Repository // Optional, defaults to in-memory
	Roller            dice.Roller         // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	repo := cfg.WarbandRepository
	if repo == nil {
		repo = warbands.NewInMemoryRepository()
	}

	wbService := warbandService.NewService(&warbandService.ServiceConfig{
		Repository: repo,
	})

	crService := creationService.NewService(&creationService.ServiceConfig{
		WarbandService: wbService,
		Roller:         cfg.Roller,
	})

	return &Provider{
		WarbandService:  wbService,
		CreationService: crService,
	}
}
