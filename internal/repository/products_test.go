package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
)

func TestProductStore_SeedsOnFirstRead(t *testing.T) {
	kv := NewMemoryKV()
	store := NewProductStore(kv, zap.NewNop())

	list := store.All()
	require.Len(t, list, 8)

	featured := 0
	for _, p := range list {
		if p.Featured {
			featured++
		}
	}
	assert.Equal(t, 4, featured)

	// seed is persisted, not rebuilt every read
	_, ok := kv.Get(KeyProducts)
	assert.True(t, ok)
}

func TestProductStore_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	store := NewProductStore(kv, zap.NewNop())

	store.Save([]domain.Product{{ID: "x", Name: "Test Tee", Price: 100, Category: domain.CategoryTShirt}})
	list := store.All()
	require.Len(t, list, 1)
	assert.Equal(t, "x", list[0].ID)
}

func TestProductStore_CorruptedFallsBackToSeed(t *testing.T) {
	kv := NewMemoryKV()
	kv.Put(KeyProducts, []byte("{not json"))
	store := NewProductStore(kv, zap.NewNop())

	list := store.All()
	assert.Len(t, list, 8)

	// the corrupt document was replaced
	list = store.All()
	assert.Len(t, list, 8)
}
