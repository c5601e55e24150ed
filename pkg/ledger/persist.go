package ledger

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/voidshard/pocketledger/pkg/kv"
)

const writeRetries = 3

// writer pushes whole-value overwrites to the kv store, at most one
// asynchronous task per mutation. Writes to the same key are serialized
// and stamped with a sequence number so the last mutation always wins,
// no matter how the goroutines are scheduled. Failures are logged and
// swallowed: in-memory state stays authoritative for the session.
type writer struct {
	store kv.Store

	mu   sync.Mutex
	seq  uint64
	keys map[string]*keyState
	wg   sync.WaitGroup
}

type keyState struct {
	mu      sync.Mutex
	written uint64
}

func newWriter(store kv.Store) *writer {
	return &writer{store: store, keys: map[string]*keyState{}}
}

// save marshals v now (so later mutations can't leak into this write)
// and flushes it to the store in the background.
func (w *writer) save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("failed to encode %s: %v\n", key, err)
		return
	}

	w.mu.Lock()
	w.seq++
	seq := w.seq
	ks, ok := w.keys[key]
	if !ok {
		ks = &keyState{}
		w.keys[key] = ks
	}
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ks.mu.Lock()
		defer ks.mu.Unlock()

		if seq < ks.written {
			// a newer value for this key already landed
			return
		}

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = 50 * time.Millisecond
		bo.MaxElapsedTime = 5 * time.Second

		err := backoff.Retry(func() error {
			return w.store.Set(key, data)
		}, backoff.WithMaxRetries(bo, writeRetries))
		if err != nil {
			log.Printf("failed to persist %s (changes held in memory): %v\n", key, err)
			return
		}
		ks.written = seq
	}()
}

// wait blocks until every in-flight write has finished or given up.
func (w *writer) wait() {
	w.wg.Wait()
}
