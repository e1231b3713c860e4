package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_GetPut(t *testing.T) {
	kv := NewMemoryKV()

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	kv.Put("k", []byte("v1"))
	got, ok := kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	// last writer wins
	kv.Put("k", []byte("v2"))
	got, _ = kv.Get("k")
	assert.Equal(t, []byte("v2"), got)

	kv.Delete("k")
	_, ok = kv.Get("k")
	assert.False(t, ok)
}

func TestMemoryKV_ReturnsCopies(t *testing.T) {
	kv := NewMemoryKV()
	in := []byte("abc")
	kv.Put("k", in)
	in[0] = 'x'

	got, _ := kv.Get("k")
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'y'
	again, _ := kv.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryKV_Subscribe(t *testing.T) {
	kv := NewMemoryKV()

	var keyed, all []string
	cancelKeyed := kv.Subscribe("a", func(key string, _ []byte) { keyed = append(keyed, key) })
	kv.Subscribe("", func(key string, _ []byte) { all = append(all, key) })

	kv.Put("a", []byte("1"))
	kv.Put("b", []byte("2"))
	kv.Delete("a")

	assert.Equal(t, []string{"a", "a"}, keyed)
	assert.Equal(t, []string{"a", "b", "a"}, all)

	cancelKeyed()
	kv.Put("a", []byte("3"))
	assert.Len(t, keyed, 2)
	assert.Len(t, all, 4)
}

func TestMemoryKV_SubscriberMayReadStore(t *testing.T) {
	kv := NewMemoryKV()
	var seen []byte
	kv.Subscribe("k", func(key string, _ []byte) {
		seen, _ = kv.Get(key)
	})
	kv.Put("k", []byte("v"))
	assert.Equal(t, []byte("v"), seen)
}
