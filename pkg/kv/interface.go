/*Package kv is the key-value boundary the ledger persists through.

Implementations are dumb pass-throughs keyed by string name; they carry
no ownership semantics and report errors honestly. Deciding whether an
error is fatal (it never is) belongs to the caller.
*/
package kv

// Store reads and writes opaque blobs by key.
type Store interface {
	// Get returns the stored value, or (nil, nil) if the key is absent.
	Get(key string) ([]byte, error)

	// Set overwrites the value for key.
	Set(key string, value []byte) error

	// Delete removes key if present. Deleting an absent key is not an error.
	Delete(key string) error
}
