package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/pocketledger/pkg/domain"
	"github.com/voidshard/pocketledger/pkg/kv"
)

func newTestLedger() (*Ledger, *kv.Memory) {
	mem := kv.NewMemory()
	l := New(mem)
	l.Load()
	return l, mem
}

func TestAddAndSearch(t *testing.T) {
	l, _ := newTestLedger()

	added, err := l.Add(Input{
		Type:        domain.Expense,
		Amount:      12.5,
		CategoryID:  "food",
		Description: "Burrito night",
		Date:        "2024-03-10",
	})

	assert.Nil(t, err)
	assert.NotEmpty(t, added.ID)
	assert.NotZero(t, added.CreatedAt)

	found := l.Search("burrito")
	assert.Len(t, found, 1)
	assert.Equal(t, added.ID, found[0].ID)
}

func TestAddPrependsNewestFirst(t *testing.T) {
	l, _ := newTestLedger()

	first, err := l.Add(Input{Type: domain.Income, Amount: 1, CategoryID: "salary", Description: "a"})
	assert.Nil(t, err)
	second, err := l.Add(Input{Type: domain.Income, Amount: 2, CategoryID: "salary", Description: "b"})
	assert.Nil(t, err)

	txns := l.Transactions()
	assert.Len(t, txns, 2)
	assert.Equal(t, second.ID, txns[0].ID)
	assert.Equal(t, first.ID, txns[1].ID)
}

func TestAddValidation(t *testing.T) {
	l, _ := newTestLedger()

	cases := []struct {
		name string
		in   Input
	}{
		{"negative amount", Input{Type: domain.Expense, Amount: -5, CategoryID: "food", Description: "x"}},
		{"zero amount", Input{Type: domain.Expense, Amount: 0, CategoryID: "food", Description: "x"}},
		{"empty description", Input{Type: domain.Expense, Amount: 5, CategoryID: "food", Description: "  "}},
		{"empty category", Input{Type: domain.Expense, Amount: 5, CategoryID: "", Description: "x"}},
		{"bad type", Input{Type: "transfer", Amount: 5, CategoryID: "food", Description: "x"}},
	}

	for _, c := range cases {
		_, err := l.Add(c.in)

		verr := &ValidationError{}
		assert.True(t, errors.As(err, &verr), c.name)
	}

	// store state unchanged throughout
	assert.Len(t, l.Transactions(), 0)
}

func TestUpdateMergesPatch(t *testing.T) {
	l, _ := newTestLedger()

	added, _ := l.Add(Input{Type: domain.Expense, Amount: 10, CategoryID: "food", Description: "Lunch", Date: "2024-03-10"})

	amount := 15.0
	desc := "Long lunch"
	updated, err := l.Update(added.ID, Patch{Amount: &amount, Description: &desc})

	assert.Nil(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, added.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 15.0, updated.Amount)
	assert.Equal(t, "Long lunch", updated.Description)
	assert.Equal(t, "food", updated.CategoryID)
	assert.Equal(t, "2024-03-10", updated.Date)
}

func TestUpdateNotFound(t *testing.T) {
	l, _ := newTestLedger()

	l.Add(Input{Type: domain.Expense, Amount: 10, CategoryID: "food", Description: "Lunch"})
	before := l.Transactions()

	amount := 99.0
	_, err := l.Update("no-such-id", Patch{Amount: &amount})

	nferr := &NotFoundError{}
	assert.True(t, errors.As(err, &nferr))
	assert.Equal(t, before, l.Transactions())
}

func TestUpdateRevalidatesAmount(t *testing.T) {
	l, _ := newTestLedger()

	added, _ := l.Add(Input{Type: domain.Expense, Amount: 10, CategoryID: "food", Description: "Lunch"})

	bad := -1.0
	_, err := l.Update(added.ID, Patch{Amount: &bad})

	verr := &ValidationError{}
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, 10.0, l.Transactions()[0].Amount)
}

func TestRemoveIdempotent(t *testing.T) {
	l, _ := newTestLedger()

	added, _ := l.Add(Input{Type: domain.Expense, Amount: 10, CategoryID: "food", Description: "Lunch"})
	keep, _ := l.Add(Input{Type: domain.Income, Amount: 100, CategoryID: "salary", Description: "Pay"})

	l.Remove(added.ID)
	once := l.Transactions()

	l.Remove(added.ID) // second time is a no-op, not an error
	twice := l.Transactions()

	assert.Equal(t, once, twice)
	assert.Len(t, twice, 1)
	assert.Equal(t, keep.ID, twice[0].ID)
}

func TestReplaceAllDropsMalformed(t *testing.T) {
	l, _ := newTestLedger()

	l.ReplaceAll([]*domain.Transaction{
		{ID: "good", Type: domain.Income, Amount: 50, CategoryID: "salary", Description: "ok", Date: "2024-01-01"},
		{ID: "", Type: domain.Income, Amount: 50},     // missing id
		{ID: "no-amount", Type: domain.Expense},       // zero amount
		{ID: "bad-type", Type: "transfer", Amount: 1}, // unknown type
		nil,
	})

	txns := l.Transactions()
	assert.Len(t, txns, 1)
	assert.Equal(t, "good", txns[0].ID)
	assert.Len(t, l.Warnings(), 4)
}

func TestClearAll(t *testing.T) {
	l, _ := newTestLedger()

	l.Add(Input{Type: domain.Expense, Amount: 10, CategoryID: "food", Description: "Lunch"})
	l.ClearAll()

	assert.Len(t, l.Transactions(), 0)
	assert.Equal(t, 0.0, l.Balance())
}

func TestSearchMatchesCategoryNameAndAmount(t *testing.T) {
	l, _ := newTestLedger()

	lunch, _ := l.Add(Input{Type: domain.Expense, Amount: 45, CategoryID: "food", Description: "Lunch"})
	l.Add(Input{Type: domain.Expense, Amount: 9.99, CategoryID: "transport", Description: "Bus ticket"})

	// category display name, case-insensitive
	found := l.Search("DINING")
	assert.Len(t, found, 1)
	assert.Equal(t, lunch.ID, found[0].ID)

	// decimal string of the amount
	found = l.Search("9.99")
	assert.Len(t, found, 1)
	assert.Equal(t, "Bus ticket", found[0].Description)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	l, _ := newTestLedger()

	l.Add(Input{Type: domain.Expense, Amount: 1, CategoryID: "food", Description: "a"})
	l.Add(Input{Type: domain.Income, Amount: 2, CategoryID: "salary", Description: "b"})

	assert.Len(t, l.Search(""), 2)
	assert.Len(t, l.Search("   "), 2)
}

func TestSalaryLunchScenario(t *testing.T) {
	l, _ := newTestLedger()

	_, err := l.Add(Input{Type: domain.Income, Amount: 2500, CategoryID: "salary", Description: "Salary"})
	assert.Nil(t, err)
	_, err = l.Add(Input{Type: domain.Expense, Amount: 45, CategoryID: "food", Description: "Lunch"})
	assert.Nil(t, err)

	assert.Equal(t, 2500.0, l.TotalIncome())
	assert.Equal(t, 45.0, l.TotalExpenses())
	assert.Equal(t, 2455.0, l.Balance())
}
