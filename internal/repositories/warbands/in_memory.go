package warbands

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	warbands map[string]*warband.Warband
}

// NewInMemoryRepository creates a new in-memory warband repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		warbands: make(map[string]*warband.Warband),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, wb *warband.Warband) error {
	if wb == nil {
		return errors.InvalidArgument("warband cannot be nil")
	}
	if wb.ID == "" {
		return errors.InvalidArgument("warband ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warbands[wb.ID]; exists {
		return errors.AlreadyExistsf("warband with ID %s already exists", wb.ID)
	}

	stored, err := copyWarband(wb)
	if err != nil {
		return err
	}
	r.warbands[wb.ID] = stored
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*warband.Warband, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wb, exists := r.warbands[id]
	if !exists {
		return nil, errors.NotFoundf("warband not found: %s", id)
	}
	return copyWarband(wb)
}

func (r *inMemoryRepository) List(ctx context.Context) ([]*warband.Warband, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*warband.Warband, 0, len(r.warbands))
	for _, wb := range r.warbands {
		cp, err := copyWarband(wb)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *inMemoryRepository) Update(ctx context.Context, wb *warband.Warband) error {
	if wb == nil {
		return errors.InvalidArgument("warband cannot be nil")
	}
	if wb.ID == "" {
		return errors.InvalidArgument("warband ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warbands[wb.ID]; !exists {
		return errors.NotFoundf("warband not found: %s", wb.ID)
	}

	stored, err := copyWarband(wb)
	if err != nil {
		return err
	}
	r.warbands[wb.ID] = stored
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warbands[id]; !exists {
		return errors.NotFoundf("warband not found: %s", id)
	}
	delete(r.warbands, id)
	return nil
}

// copyWarband deep-copies a warband so callers cannot mutate stored state
func copyWarband(wb *warband.Warband) (*warband.Warband, error) {
	data, err := json.Marshal(wb)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy warband")
	}
	var cp warband.Warband
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, errors.Wrap(err, "failed to copy warband")
	}
	return &cp, nil
}
