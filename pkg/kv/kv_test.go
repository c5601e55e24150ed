package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/pocketledger/pkg/crypto"
)

func TestDirRoundTrip(t *testing.T) {
	store, err := NewDir(t.TempDir())
	assert.Nil(t, err)

	// absent key -> (nil, nil)
	got, err := store.Get("transactions")
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, store.Set("transactions", []byte(`[{"id":"1"}]`)))

	got, err = store.Get("transactions")
	assert.Nil(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	assert.Nil(t, store.Delete("transactions"))
	got, err = store.Get("transactions")
	assert.Nil(t, err)
	assert.Nil(t, got)

	// deleting an absent key is not an error
	assert.Nil(t, store.Delete("transactions"))
}

func TestDirRejectsPathKeys(t *testing.T) {
	store, err := NewDir(t.TempDir())
	assert.Nil(t, err)

	for _, key := range []string{"", "../escape", "a/b", "a\\b"} {
		_, err = store.Get(key)
		assert.NotNil(t, err, key)
		assert.NotNil(t, store.Set(key, []byte("x")), key)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()

	got, err := store.Get("k")
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, store.Set("k", []byte("v")))
	got, err = store.Get("k")
	assert.Nil(t, err)
	assert.Equal(t, "v", string(got))

	// stored value is a copy, not aliased to caller memory
	v := []byte("abc")
	store.Set("k", v)
	v[0] = 'z'
	got, _ = store.Get("k")
	assert.Equal(t, "abc", string(got))

	assert.Nil(t, store.Delete("k"))
	got, _ = store.Get("k")
	assert.Nil(t, got)
}

func TestEncrypted(t *testing.T) {
	keys, err := crypto.NewRandomKeys()
	assert.Nil(t, err)

	inner := NewMemory()
	store := NewEncrypted(inner, keys)

	assert.Nil(t, store.Set("transactions", []byte(`[{"id":"1"}]`)))

	// readable through the wrapper
	got, err := store.Get("transactions")
	assert.Nil(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	// but sealed at rest
	raw, _ := inner.Get("transactions")
	assert.NotEqual(t, `[{"id":"1"}]`, string(raw))

	// absent key passes through
	got, err = store.Get("missing")
	assert.Nil(t, err)
	assert.Nil(t, got)

	// the wrong keys can't open it
	other, _ := crypto.NewRandomKeys()
	_, err = NewEncrypted(inner, other).Get("transactions")
	assert.NotNil(t, err)
}
