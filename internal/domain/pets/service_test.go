package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesAndDefaults(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), " owner-1 ", CreateInput{
		Name:    "  Milo ",
		Species: "Dog",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "owner-1", p.OwnerUserID)
	assert.Equal(t, "Milo", p.Name)
	assert.Equal(t, SpeciesDog, p.Species)
	assert.Equal(t, SexUnknown, p.Sex)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestService_Create_Rejects(t *testing.T) {
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		owner string
		in    CreateInput
	}{
		{"missing owner", "", CreateInput{Name: "Milo", Species: "dog"}},
		{"missing name", "owner-1", CreateInput{Species: "dog"}},
		{"unknown species", "owner-1", CreateInput{Name: "Milo", Species: "dragon"}},
		{"unknown sex", "owner-1", CreateInput{Name: "Milo", Species: "cat", Sex: "x"}},
		{"future birth date", "owner-1", CreateInput{Name: "Milo", Species: "cat", BirthDate: &future}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newTestRepo())
			_, err := svc.Create(context.Background(), tt.owner, tt.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "  ")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "cat", Sex: "female"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, SexFemale, got.Sex)
}

func TestService_ListByOwner(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "cat"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-2", CreateInput{Name: "Rex", Species: "dog"})
	require.NoError(t, err)

	items, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Luna", items[0].Name)

	_, err = svc.ListByOwner(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}
