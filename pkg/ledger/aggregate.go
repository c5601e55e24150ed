package ledger

import (
	"sort"
	"time"

	"github.com/voidshard/pocketledger/pkg/domain"
)

// Aggregate queries: pure functions of current state, no side effects.

// CategoryTotal is an amount summed per category display name.
type CategoryTotal struct {
	Name   string
	Amount float64
}

// MonthlyData holds separate income and expense sums for one calendar month.
type MonthlyData struct {
	Month    string // "2024-03"
	Income   float64
	Expenses float64
}

func (l *Ledger) sumByType(tt domain.TransactionType) float64 {
	total := 0.0
	for _, t := range l.txns {
		if t.Type == tt {
			total += t.Amount
		}
	}
	return total
}

// TotalIncome sums all income amounts. Empty set sums to 0.
func (l *Ledger) TotalIncome() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sumByType(domain.Income)
}

// TotalExpenses sums all expense amounts.
func (l *Ledger) TotalExpenses() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sumByType(domain.Expense)
}

// Balance is income minus expenses over the whole collection.
func (l *Ledger) Balance() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sumByType(domain.Income) - l.sumByType(domain.Expense)
}

// ByCategory sums amounts of the given type per category display name,
// sorted by descending amount. Ties keep first-encountered order.
func (l *Ledger) ByCategory(tt domain.TransactionType) []CategoryTotal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totals := map[string]float64{}
	order := []string{}
	for _, t := range l.txns {
		if t.Type != tt {
			continue
		}
		name := l.categoryNameLocked(t.CategoryID)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += t.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryTotal{Name: name, Amount: totals[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

// parseDate accepts the date forms the app has ever written: a plain
// ISO date or a full timestamp.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ByMonth buckets income and expense sums into the trailing n calendar
// months ending at the current month. Months with no transactions are
// zero-filled, not omitted; oldest month first.
func (l *Ledger) ByMonth(n int) []MonthlyData {
	return l.byMonthEnding(time.Now(), n)
}

func (l *Ledger) byMonthEnding(end time.Time, n int) []MonthlyData {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		return []MonthlyData{}
	}

	buckets := map[string]*MonthlyData{}
	out := make([]MonthlyData, n)
	for i := 0; i < n; i++ {
		m := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-n+1, 0)
		key := m.Format("2006-01")
		out[i] = MonthlyData{Month: key}
		buckets[key] = &out[i]
	}

	for _, t := range l.txns {
		d, ok := parseDate(t.Date)
		if !ok {
			continue
		}
		b, ok := buckets[d.Format("2006-01")]
		if !ok {
			continue // outside the requested window
		}
		if t.Type == domain.Income {
			b.Income += t.Amount
		} else {
			b.Expenses += t.Amount
		}
	}
	return out
}

// TransactionsInMonth returns the records dated within the given month.
func (l *Ledger) TransactionsInMonth(month time.Month, year int) []*domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []*domain.Transaction{}
	for _, t := range l.txns {
		d, ok := parseDate(t.Date)
		if ok && d.Month() == month && d.Year() == year {
			out = append(out, t)
		}
	}
	return out
}

func (l *Ledger) monthSums(month time.Month, year int) (income, expenses float64) {
	for _, t := range l.txns {
		d, ok := parseDate(t.Date)
		if !ok || d.Month() != month || d.Year() != year {
			continue
		}
		if t.Type == domain.Income {
			income += t.Amount
		} else {
			expenses += t.Amount
		}
	}
	return income, expenses
}

// MonthlyBalance is income minus expenses for one month.
func (l *Ledger) MonthlyBalance(month time.Month, year int) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	income, expenses := l.monthSums(month, year)
	return income - expenses
}

// SavingsRate is the fraction of a month's income left after expenses.
// A month with no income has a savings rate of 0, never NaN or Inf.
func (l *Ledger) SavingsRate(month time.Month, year int) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	income, expenses := l.monthSums(month, year)
	if income == 0 {
		return 0
	}
	return (income - expenses) / income
}
