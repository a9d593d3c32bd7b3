package handoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySelectionStore_SaveAndLoad(t *testing.T) {
	store := NewInMemorySelectionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-1", []string{"p-1", "p-2"}, time.Hour))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, got)
}

func TestInMemorySelectionStore_LoadMissing(t *testing.T) {
	store := NewInMemorySelectionStore()
	defer store.Close()

	got, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemorySelectionStore_SaveOverwrites(t *testing.T) {
	store := NewInMemorySelectionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-1", []string{"p-1"}, time.Hour))
	require.NoError(t, store.Save(ctx, "user-1", []string{"p-9"}, time.Hour))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-9"}, got)
}

func TestInMemorySelectionStore_Clear(t *testing.T) {
	store := NewInMemorySelectionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-1", []string{"p-1"}, time.Hour))
	require.NoError(t, store.Clear(ctx, "user-1"))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, store.Size())
}

func TestInMemorySelectionStore_Expiration(t *testing.T) {
	store := NewInMemorySelectionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-1", []string{"p-1"}, -time.Second))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemorySelectionStore_LoadReturnsCopy(t *testing.T) {
	store := NewInMemorySelectionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "user-1", []string{"p-1", "p-2"}, time.Hour))

	first, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, second)
}

func TestInMemorySelectionStore_CloseTwice(t *testing.T) {
	store := NewInMemorySelectionStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
