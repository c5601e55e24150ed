package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/pocketledger/pkg/domain"
)

func testTxns() []*domain.Transaction {
	return []*domain.Transaction{
		{ID: "1", Type: domain.Income, Amount: 2500, CategoryID: "salary", Description: "Salary", Date: "2024-03-01"},
		{ID: "2", Type: domain.Expense, Amount: 45, CategoryID: "food", Description: "Lunch", Date: "2024-03-02"},
	}
}

func TestJSONFileWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	jf := NewJSONFile(path)

	err := jf.Write(testTxns())
	assert.Nil(t, err)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)

	got := []*domain.Transaction{}
	assert.Nil(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, 45.0, got[1].Amount)
}

func TestCSVFileWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	cf := NewCSVFile(path)

	err := cf.Write(testTxns())
	assert.Nil(t, err)

	fd, err := os.Open(path)
	assert.Nil(t, err)
	defer fd.Close()

	rows, err := csv.NewReader(fd).ReadAll()
	assert.Nil(t, err)
	assert.Len(t, rows, 3) // header + 2 records
	assert.Equal(t, []string{"id", "type", "amount", "category", "description", "date"}, rows[0])
	assert.Equal(t, "2500.00", rows[1][2])
	assert.Equal(t, "Lunch", rows[2][4])
}
