package store

import (
	"context"
	"sync"
	"testing"

	"github.com/portfolioapi/catalog/internal/catalog/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InMemoryStore_Create(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	// given an empty store, the first product gets ID 1
	created, err := s.Create(ctx, "Laptop", decimal.NewFromInt(1200), CategoryElectronics)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Laptop", created.Name)
	assert.True(t, created.Price.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, CategoryElectronics, created.Category)
	assert.False(t, created.Deleted)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	second, err := s.Create(ctx, "Phone", decimal.NewFromInt(800), CategoryElectronics)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// the created record is retrievable with matching fields
	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.True(t, created.Price.Equal(found.Price))
}

func Test_InMemoryStore_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	first, err := s.Create(ctx, "Laptop", decimal.NewFromInt(1200), CategoryElectronics)
	require.NoError(t, err)
	second, err := s.Create(ctx, "Phone", decimal.NewFromInt(800), CategoryElectronics)
	require.NoError(t, err)

	// soft-deleting the highest id must not free it up: the record stays in
	// the store, so max(ids) still reflects it
	require.NoError(t, s.DeleteByID(ctx, second.ID))

	third, err := s.Create(ctx, "Headphones", decimal.NewFromInt(150), CategoryAudio)
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
	assert.NotEqual(t, first.ID, third.ID)
	assert.NotEqual(t, second.ID, third.ID)
}

func Test_InMemoryStore_SoftDelete(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	created, err := s.Create(ctx, "Laptop", decimal.NewFromInt(1200), CategoryElectronics)
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(ctx, created.ID))

	// the record is gone from reads...
	_, err = s.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)

	// ...and from mutations...
	_, err = s.Update(ctx, created.ID, "Laptop Pro", decimal.NewFromInt(1500), CategoryElectronics)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
	assert.ErrorIs(t, s.DeleteByID(ctx, created.ID), errors.ErrProductNotFound)

	// ...but still present in the snapshot for id stability
	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Deleted)
	assert.Equal(t, created.ID, all[0].ID)
}

func Test_InMemoryStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	created, err := s.Create(ctx, "Laptop", decimal.NewFromInt(1200), CategoryElectronics)
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, "Laptop Pro", decimal.NewFromInt(1500), CategoryGeneral)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, CategoryGeneral, updated.Category)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = s.Update(ctx, 99, "Ghost", decimal.NewFromInt(1), CategoryGeneral)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
}

func Test_InMemoryStore_FindAll_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	_, err := s.Create(ctx, "Laptop", decimal.NewFromInt(1200), CategoryElectronics)
	require.NoError(t, err)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// mutating the snapshot must not leak into the store
	all[0].Name = "Tampered"
	found, err := s.FindByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", found.Name)
}

func Test_InMemoryStore_ConcurrentCreates_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, "Widget", decimal.NewFromInt(10), CategoryGeneral)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)

	seen := make(map[int64]bool, workers)
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}
