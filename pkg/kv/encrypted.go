package kv

import (
	"github.com/voidshard/pocketledger/pkg/crypto"
)

// Encrypted wraps another Store, sealing values at rest.
// Keys (the string names, not the secrets) remain in the clear.
type Encrypted struct {
	inner Store
	keys  *crypto.Keys
}

func NewEncrypted(inner Store, keys *crypto.Keys) Store {
	return &Encrypted{inner: inner, keys: keys}
}

func (e *Encrypted) Get(key string) ([]byte, error) {
	sealed, err := e.inner.Get(key)
	if err != nil || sealed == nil {
		return nil, err
	}
	return e.keys.Open(string(sealed))
}

func (e *Encrypted) Set(key string, value []byte) error {
	sealed, err := e.keys.Seal(value)
	if err != nil {
		return err
	}
	return e.inner.Set(key, []byte(sealed))
}

func (e *Encrypted) Delete(key string) error {
	return e.inner.Delete(key)
}
