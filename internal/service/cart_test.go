package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
	"github.com/amirko228/couple-shop/internal/repository"
)

func testProduct(id string, price int) domain.Product {
	return domain.Product{ID: id, Name: "Tee " + id, Price: price, Category: domain.CategoryTShirt}
}

func TestCart_AddMergesOnCompositeKey(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	p := testProduct("1", 2490)

	_, err := cart.Add("u", p, 1, "M", "Black")
	require.NoError(t, err)
	_, err = cart.Add("u", p, 2, "M", "Black")
	require.NoError(t, err)
	view, err := cart.Add("u", p, 1, "L", "Black")
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, 1, view.Lines[1].Quantity)
	assert.Equal(t, 4, view.ItemCount)
	assert.Equal(t, 4*2490, view.TotalPrice)
}

func TestCart_AddInvalid(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	_, err := cart.Add("u", domain.Product{}, 1, "M", "Black")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = cart.Add("u", testProduct("1", 100), 0, "M", "Black")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCart_SnapshotNotLiveReference(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	p := testProduct("1", 2490)
	_, err := cart.Add("u", p, 1, "M", "Black")
	require.NoError(t, err)

	// a later catalog edit must not change the cart line
	p.Price = 9999
	view := cart.Get("u")
	assert.Equal(t, 2490, view.Lines[0].Product.Price)
	assert.Equal(t, 2490, view.TotalPrice)
}

func TestCart_RemoveProductDropsEveryVariant(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	p1 := testProduct("1", 2490)
	p2 := testProduct("2", 4990)

	_, _ = cart.Add("u", p1, 1, "M", "Black")
	_, _ = cart.Add("u", p1, 2, "L", "White")
	_, _ = cart.Add("u", p2, 1, "M", "Black")

	view := cart.RemoveProduct("u", "1")
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "2", view.Lines[0].Product.ID)

	// idempotent
	view = cart.RemoveProduct("u", "1")
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.ItemCount)
	assert.Equal(t, 4990, view.TotalPrice)
}

func TestCart_UpdateQuantityByCompositeKey(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	p := testProduct("1", 1000)
	_, _ = cart.Add("u", p, 1, "M", "Black")
	_, _ = cart.Add("u", p, 1, "L", "Black")

	view, err := cart.UpdateQuantity("u", "1", "M", "Black", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Lines[0].Quantity)
	assert.Equal(t, 1, view.Lines[1].Quantity)
	assert.Equal(t, 6, view.ItemCount)
	assert.Equal(t, 6000, view.TotalPrice)

	// missing line is a no-op
	view, err = cart.UpdateQuantity("u", "1", "XXL", "Black", 9)
	require.NoError(t, err)
	assert.Equal(t, 6, view.ItemCount)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	_, _ = cart.Add("u", testProduct("1", 100), 3, "M", "Black")

	view := cart.Clear("u")
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.ItemCount)
	assert.Zero(t, view.TotalPrice)
}

func TestCart_AggregatesSurviveReload(t *testing.T) {
	kv := repository.NewMemoryKV()
	cart := NewCartService(kv, zap.NewNop())
	_, _ = cart.Add("u", testProduct("1", 2490), 2, "M", "Black")
	_, _ = cart.Add("u", testProduct("2", 4990), 1, "L", "White")

	// a freshly mounted container over the same surface sees identical state
	reloaded := NewCartService(kv, zap.NewNop()).Get("u")
	assert.Equal(t, 3, reloaded.ItemCount)
	assert.Equal(t, 2*2490+4990, reloaded.TotalPrice)
	assert.Len(t, reloaded.Lines, 2)
}

func TestCart_CorruptedStateLoadsEmpty(t *testing.T) {
	kv := repository.NewMemoryKV()
	kv.Put(repository.CartKeyPrefix+"u", []byte("###"))
	cart := NewCartService(kv, zap.NewNop())

	view := cart.Get("u")
	assert.Empty(t, view.Lines)

	// and the cart remains usable
	view, err := cart.Add("u", testProduct("1", 100), 1, "M", "Black")
	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
}

func TestCart_IsolatedPerOwner(t *testing.T) {
	cart := NewCartService(repository.NewMemoryKV(), zap.NewNop())
	_, _ = cart.Add("a", testProduct("1", 100), 1, "M", "Black")

	assert.Zero(t, cart.Get("b").ItemCount)
	assert.Equal(t, 1, cart.Get("a").ItemCount)
}
