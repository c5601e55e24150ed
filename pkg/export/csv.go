package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/voidshard/pocketledger/pkg/domain"
)

type CSVFile struct {
	filename string
}

func NewCSVFile(filename string) Sink {
	return &CSVFile{filename: filename}
}

func (f *CSVFile) Write(txns []*domain.Transaction) error {
	fd, err := os.Create(f.filename)
	if err != nil {
		return err
	}
	defer fd.Close()

	w := csv.NewWriter(fd)
	err = w.Write([]string{"id", "type", "amount", "category", "description", "date"})
	if err != nil {
		return err
	}
	for _, t := range txns {
		err = w.Write([]string{
			t.ID,
			string(t.Type),
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.CategoryID,
			t.Description,
			t.Date,
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
