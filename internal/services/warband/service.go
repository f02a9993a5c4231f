package warband

//go:generate mockgen -destination=mock/mock_service.go -package=mockwarband -source=service.go

import (
	"context"
	"strings"
	"time"

	domain "github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/repositories/warbands"
	"github.com/fiveleagues/warband-bot/internal/uuid"
)

// Repository is an alias for the warband repository interface
type Repository = warbands.Repository

// Service defines the warband roster service interface
type Service interface {
	// CreateWarband creates a new warband
	CreateWarband(ctx context.Context, input *CreateWarbandInput) (*domain.Warband, error)

	// GetWarband retrieves a warband by ID
	GetWarband(ctx context.Context, warbandID string) (*domain.Warband, error)

	// ListWarbands lists all warbands
	ListWarbands(ctx context.Context) ([]*domain.Warband, error)

	// UpdateWarband updates warband details
	UpdateWarband(ctx context.Context, warbandID string, input *UpdateWarbandInput) (*domain.Warband, error)

	// DeleteWarband removes a warband and everyone in it
	DeleteWarband(ctx context.Context, warbandID string) error

	// AddCharacter appends a finished character to the warband's roster
	AddCharacter(ctx context.Context, warbandID string, character *domain.Character) (*domain.Warband, error)

	// UpdateCharacter overwrites a character already on the roster
	UpdateCharacter(ctx context.Context, warbandID string, character *domain.Character) (*domain.Warband, error)

	// RemoveCharacter deletes a character from the roster
	RemoveCharacter(ctx context.Context, warbandID, characterID string, charType domain.CharacterType) (*domain.Warband, error)
}

// CreateWarbandInput contains data for creating a warband
type CreateWarbandInput struct {
	Name      string
	MaxHeroes int // Optional, defaults to domain.DefaultMaxHeroes
}

// UpdateWarbandInput contains the fields that can be updated
type UpdateWarbandInput struct {
	Name      *string
	MaxHeroes *int
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, will use default if nil
}

// NewService creates a new warband service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

func (s *service) CreateWarband(ctx context.Context, input *CreateWarbandInput) (*domain.Warband, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("warband name is required")
	}

	maxHeroes := input.MaxHeroes
	if maxHeroes <= 0 {
		maxHeroes = domain.DefaultMaxHeroes
	}

	now := time.Now().UTC()
	wb := &domain.Warband{
		ID:        s.uuidGenerator.New(),
		Name:      name,
		MaxHeroes: maxHeroes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.Create(ctx, wb); err != nil {
		return nil, errors.Wrap(err, "failed to create warband")
	}
	return wb, nil
}

func (s *service) GetWarband(ctx context.Context, warbandID string) (*domain.Warband, error) {
	if warbandID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}
	return s.repository.Get(ctx, warbandID)
}

func (s *service) ListWarbands(ctx context.Context) ([]*domain.Warband, error) {
	return s.repository.List(ctx)
}

func (s *service) UpdateWarband(ctx context.Context, warbandID string, input *UpdateWarbandInput) (*domain.Warband, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	wb, err := s.GetWarband(ctx, warbandID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.InvalidArgument("warband name cannot be blank")
		}
		wb.Name = name
	}
	if input.MaxHeroes != nil {
		if *input.MaxHeroes < len(wb.Heroes) {
			return nil, errors.InvalidArgumentf("max heroes cannot be below the current roster size of %d", len(wb.Heroes)).
				WithMeta("heroes", len(wb.Heroes))
		}
		wb.MaxHeroes = *input.MaxHeroes
	}

	wb.UpdatedAt = time.Now().UTC()
	if err := s.repository.Update(ctx, wb); err != nil {
		return nil, errors.Wrap(err, "failed to update warband")
	}
	return wb, nil
}

func (s *service) DeleteWarband(ctx context.Context, warbandID string) error {
	if warbandID == "" {
		return errors.InvalidArgument("warband ID is required")
	}
	return s.repository.Delete(ctx, warbandID)
}

func (s *service) AddCharacter(ctx context.Context, warbandID string, character *domain.Character) (*domain.Warband, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	wb, err := s.GetWarband(ctx, warbandID)
	if err != nil {
		return nil, err
	}

	if character.CharacterType == domain.CharacterTypeHero && wb.AtHeroCapacity() {
		return nil, errors.FailedPreconditionf("warband %s is at its hero capacity of %d", wb.Name, wb.MaxHeroes).
			WithMeta("max_heroes", wb.MaxHeroes)
	}

	wb.AddCharacter(character)
	wb.UpdatedAt = time.Now().UTC()
	if err := s.repository.Update(ctx, wb); err != nil {
		return nil, errors.Wrap(err, "failed to add character")
	}
	return wb, nil
}

func (s *service) UpdateCharacter(ctx context.Context, warbandID string, character *domain.Character) (*domain.Warband, error) {
	if character == nil || character.ID == "" {
		return nil, errors.InvalidArgument("character with an ID is required")
	}
	wb, err := s.GetWarband(ctx, warbandID)
	if err != nil {
		return nil, err
	}

	existing := wb.FindCharacter(character.ID, character.CharacterType)
	if existing == nil {
		return nil, errors.NotFoundf("character not found: %s", character.ID)
	}
	*existing = *character

	wb.UpdatedAt = time.Now().UTC()
	if err := s.repository.Update(ctx, wb); err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}
	return wb, nil
}

func (s *service) RemoveCharacter(ctx context.Context, warbandID, characterID string, charType domain.CharacterType) (*domain.Warband, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	wb, err := s.GetWarband(ctx, warbandID)
	if err != nil {
		return nil, err
	}

	if !wb.RemoveCharacter(characterID, charType) {
		return nil, errors.NotFoundf("character not found: %s", characterID)
	}

	wb.UpdatedAt = time.Now().UTC()
	if err := s.repository.Update(ctx, wb); err != nil {
		return nil, errors.Wrap(err, "failed to remove character")
	}
	return wb, nil
}
