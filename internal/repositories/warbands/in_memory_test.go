package warbands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/repositories/warbands"
)

func TestInMemoryLifecycle(t *testing.T) {
	repo := warbands.NewInMemoryRepository()
	ctx := context.Background()

	wb := &warband.Warband{
		ID:        "wb-1",
		Name:      "The Gray Company",
		MaxHeroes: warband.DefaultMaxHeroes,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, wb))

	err := repo.Create(ctx, wb)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "wb-1")
	require.NoError(t, err)
	assert.Equal(t, "The Gray Company", got.Name)

	got.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed", list[0].Name)

	require.NoError(t, repo.Delete(ctx, "wb-1"))
	_, err = repo.Get(ctx, "wb-1")
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, "wb-1")))
}

// Mutating a returned warband must not affect the stored copy
func TestInMemoryIsolation(t *testing.T) {
	repo := warbands.NewInMemoryRepository()
	ctx := context.Background()

	wb := &warband.Warband{ID: "wb-1", Name: "Original", MaxHeroes: 10}
	require.NoError(t, repo.Create(ctx, wb))

	got, err := repo.Get(ctx, "wb-1")
	require.NoError(t, err)
	got.Name = "Mutated"
	got.Heroes = append(got.Heroes, &warband.Character{ID: "char-1"})

	fresh, err := repo.Get(ctx, "wb-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", fresh.Name)
	assert.Empty(t, fresh.Heroes)
}
