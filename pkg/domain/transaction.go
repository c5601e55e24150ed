package domain

import (
	"encoding/json"
	"math"
)

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single recorded money movement.
// Amount is always positive; direction is carried by Type.
type Transaction struct {
	ID string `json:"id"`

	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	CategoryID  string          `json:"category"`
	Description string          `json:"description"`

	// Date is when the transaction occurred (ISO 8601 date), as opposed
	// to CreatedAt which is when the record was entered.
	Date      string `json:"date"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

func (t *Transaction) JSON() ([]byte, error) {
	return json.Marshal(t)
}

// ShapeOK reports whether a record read back from storage is usable.
// Records that fail this would corrupt aggregate sums, so loaders drop them.
func (t *Transaction) ShapeOK() bool {
	if t == nil || t.ID == "" {
		return false
	}
	if !t.Type.Valid() {
		return false
	}
	return t.Amount > 0 && !math.IsNaN(t.Amount) && !math.IsInf(t.Amount, 0)
}
