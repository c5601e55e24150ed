/*Package ledger owns the transaction collection, the preference flags and
every derived number the app shows. It is the only writer to persistent
state; in-memory state is authoritative for the running session.
*/
package ledger

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/voidshard/pocketledger/pkg/domain"
	"github.com/voidshard/pocketledger/pkg/kv"
)

// storage keys, one per concern
const (
	keyTransactions = "transactions"
	keyDarkMode     = "darkmode"
	keyOnboarded    = "onboarded"
	keyBudget       = "budget"
)

// Input is what a caller supplies to record a new transaction.
type Input struct {
	Type        domain.TransactionType
	Amount      float64
	CategoryID  string
	Description string
	Date        string
}

// Patch holds optional replacement fields for an update.
// Nil fields are left as they are; id and createdAt are immutable.
type Patch struct {
	Type        *domain.TransactionType
	Amount      *float64
	CategoryID  *string
	Description *string
	Date        *string
}

// Ledger is the single store behind the app. Construct once with New,
// call Load, hand the same instance to every consumer.
type Ledger struct {
	mu sync.RWMutex

	txns     []*domain.Transaction
	cats     []*domain.Category
	prefs    domain.Preferences
	warnings []string
	ready    bool

	idSeq uint64
	w     *writer
}

func New(store kv.Store) *Ledger {
	return &Ledger{
		txns: []*domain.Transaction{},
		cats: domain.DefaultCategories(),
		w:    newWriter(store),
	}
}

// Load pulls all persisted keys in parallel and decodes each
// independently, so one corrupt key cannot take down the rest.
// The ledger always comes up ready, worst case empty.
func (l *Ledger) Load() {
	var txData, dmData, obData, bgData []byte

	wg := &sync.WaitGroup{}
	read := func(key string, dst *[]byte) {
		defer wg.Done()
		data, err := l.w.store.Get(key)
		if err != nil {
			log.Printf("failed to read %s: %v\n", key, err)
			return
		}
		*dst = data
	}
	wg.Add(4)
	go read(keyTransactions, &txData)
	go read(keyDarkMode, &dmData)
	go read(keyOnboarded, &obData)
	go read(keyBudget, &bgData)
	wg.Wait()

	txns, warnings := decodeTransactions(txData)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.txns = txns
	l.warnings = warnings
	for _, w := range warnings {
		log.Println(w)
	}

	if dmData != nil {
		if err := json.Unmarshal(dmData, &l.prefs.DarkMode); err != nil {
			log.Printf("failed to parse %s: %v\n", keyDarkMode, err)
		}
	}
	if obData != nil {
		if err := json.Unmarshal(obData, &l.prefs.Onboarded); err != nil {
			log.Printf("failed to parse %s: %v\n", keyOnboarded, err)
		}
	}
	if bgData != nil {
		var goal float64
		if err := json.Unmarshal(bgData, &goal); err != nil || goal < 0 || math.IsNaN(goal) {
			log.Printf("failed to parse %s: %v\n", keyBudget, err)
		} else {
			l.prefs.BudgetGoal = goal
		}
	}

	l.ready = true
}

// decodeTransactions unmarshals element by element so a single malformed
// record is dropped with a warning rather than discarding the lot.
func decodeTransactions(data []byte) ([]*domain.Transaction, []string) {
	txns := []*domain.Transaction{}
	warnings := []string{}

	if data == nil {
		return txns, warnings
	}

	raw := []json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return txns, []string{fmt.Sprintf("stored transactions unreadable, starting empty: %v", err)}
	}

	for i, blob := range raw {
		t := &domain.Transaction{}
		if err := json.Unmarshal(blob, t); err != nil {
			warnings = append(warnings, fmt.Sprintf("dropped stored transaction #%d: %v", i, err))
			continue
		}
		if !t.ShapeOK() {
			warnings = append(warnings, fmt.Sprintf("dropped stored transaction #%d (id %q): bad shape", i, t.ID))
			continue
		}
		txns = append(txns, t)
	}
	return txns, warnings
}

// Ready reports whether Load has completed.
func (l *Ledger) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

// Warnings returns messages about persisted records dropped during
// Load or ReplaceAll.
func (l *Ledger) Warnings() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.warnings))
	copy(out, l.warnings)
	return out
}

// Close drains in-flight persistence writes. Mutations made before
// Close are durable once it returns (or their failure has been logged).
func (l *Ledger) Close() {
	l.w.wait()
}

// Categories returns the static catalog.
func (l *Ledger) Categories() []*domain.Category {
	return l.cats
}

// Transactions returns a snapshot copy, newest first.
func (l *Ledger) Transactions() []*domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() []*domain.Transaction {
	out := make([]*domain.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

func validAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &ValidationError{Field: "amount", Reason: "not a finite number"}
	}
	if amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}

// Add validates and records a new transaction, newest first.
func (l *Ledger) Add(in Input) (*domain.Transaction, error) {
	if err := validAmount(in.Amount); err != nil {
		return nil, err
	}
	if !in.Type.Valid() {
		return nil, &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return nil, &ValidationError{Field: "category", Reason: "must not be empty"}
	}

	now := time.Now()
	date := in.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	l.mu.Lock()
	t := &domain.Transaction{
		ID:          l.nextIDLocked(now),
		Type:        in.Type,
		Amount:      in.Amount,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		Date:        date,
		CreatedAt:   now.Unix(),
	}
	l.txns = append([]*domain.Transaction{t}, l.txns...)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.w.save(keyTransactions, snap)
	return t, nil
}

// nextIDLocked returns an id unique for this store's lifetime.
func (l *Ledger) nextIDLocked(now time.Time) string {
	l.idSeq++
	return strconv.FormatInt(now.UnixNano(), 10) + "-" + strconv.FormatUint(l.idSeq, 10)
}

// Update merges the patch over the existing record and re-validates the
// merged amount. The in-memory record is only swapped once valid.
func (l *Ledger) Update(id string, p Patch) (*domain.Transaction, error) {
	l.mu.Lock()

	var existing *domain.Transaction
	idx := -1
	for i, t := range l.txns {
		if t.ID == id {
			existing, idx = t, i
			break
		}
	}
	if existing == nil {
		l.mu.Unlock()
		return nil, &NotFoundError{ID: id}
	}

	merged := *existing
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.CategoryID != nil {
		merged.CategoryID = *p.CategoryID
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}

	if err := validAmount(merged.Amount); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	if !merged.Type.Valid() {
		l.mu.Unlock()
		return nil, &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if strings.TrimSpace(merged.Description) == "" {
		l.mu.Unlock()
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	l.txns[idx] = &merged
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.w.save(keyTransactions, snap)
	return &merged, nil
}

// Remove deletes by id. Removing an absent id is a no-op, not an error.
func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	kept := l.txns[:0]
	removed := false
	for _, t := range l.txns {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	l.txns = kept
	snap := l.snapshotLocked()
	l.mu.Unlock()

	if removed {
		l.w.save(keyTransactions, snap)
	}
}

// ReplaceAll bulk-overwrites the collection, eg. when importing.
// It trusts the caller but still drops entries that would corrupt
// aggregate sums, recording a warning per drop.
func (l *Ledger) ReplaceAll(txns []*domain.Transaction) {
	kept := []*domain.Transaction{}
	warnings := []string{}
	for i, t := range txns {
		if !t.ShapeOK() {
			id := ""
			if t != nil {
				id = t.ID
			}
			warnings = append(warnings, fmt.Sprintf("dropped imported transaction #%d (id %q): bad shape", i, id))
			continue
		}
		kept = append(kept, t)
	}
	for _, w := range warnings {
		log.Println(w)
	}

	l.mu.Lock()
	l.txns = kept
	l.warnings = append(l.warnings, warnings...)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.w.save(keyTransactions, snap)
}

// ClearAll empties the collection.
func (l *Ledger) ClearAll() {
	l.mu.Lock()
	l.txns = []*domain.Transaction{}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.w.save(keyTransactions, snap)
}

// Search returns transactions whose description, category display name
// or decimal amount contains the query (case-insensitive). An empty
// query returns the full collection. Order is preserved; nothing is
// ever truncated here, display windows belong to the caller.
func (l *Ledger) Search(query string) []*domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l.snapshotLocked()
	}

	out := []*domain.Transaction{}
	for _, t := range l.txns {
		if strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
			continue
		}
		if strings.Contains(strings.ToLower(l.categoryNameLocked(t.CategoryID)), query) {
			out = append(out, t)
			continue
		}
		if strings.Contains(strconv.FormatFloat(t.Amount, 'f', -1, 64), query) {
			out = append(out, t)
		}
	}
	return out
}

// categoryNameLocked resolves a category id to its display name.
// Unknown ids land in "Other", matching what the screens show.
func (l *Ledger) categoryNameLocked(id string) string {
	c := domain.CategoryByID(l.cats, id)
	if c == nil {
		return "Other"
	}
	return c.Name
}
