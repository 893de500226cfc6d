package memory

import (
	"context"
	"testing"
	"time"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepo(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "b", OwnerUserID: "o-1", Name: "Rex", CreatedAt: t0.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "a", OwnerUserID: "o-1", Name: "Luna", CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "c", OwnerUserID: "o-2", Name: "Kiwi", CreatedAt: t0}))

	require.Error(t, repo.Create(ctx, pets.Pet{ID: "a"}))
	require.Error(t, repo.Create(ctx, pets.Pet{ID: " "}))

	_, err := repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, pets.ErrNotFound)

	got, err := repo.GetByID(ctx, " a ")
	require.NoError(t, err)
	assert.Equal(t, "Luna", got.Name)

	items, err := repo.ListByOwner(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Luna", items[0].Name)
	assert.Equal(t, "Rex", items[1].Name)

	items, err = repo.ListByOwner(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPetRepo_ListTiesBreakByID(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"p-3", "p-1", "p-2"} {
		require.NoError(t, repo.Create(ctx, pets.Pet{ID: id, OwnerUserID: "o-1", Name: id, CreatedAt: t0}))
	}

	items, err := repo.ListByOwner(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, []string{items[0].ID, items[1].ID, items[2].ID})
}
