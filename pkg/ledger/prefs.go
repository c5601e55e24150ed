package ledger

import (
	"math"

	"github.com/voidshard/pocketledger/pkg/domain"
)

// Preference store: trivial toggle state, persisted write-through one
// key at a time.

// Prefs returns a copy of the current preferences.
func (l *Ledger) Prefs() domain.Preferences {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefs
}

// Theme returns the active theme record for the current dark mode flag.
func (l *Ledger) Theme() domain.Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.ThemeFor(l.prefs.DarkMode)
}

// ToggleDarkMode flips the flag and returns the new value.
func (l *Ledger) ToggleDarkMode() bool {
	l.mu.Lock()
	l.prefs.DarkMode = !l.prefs.DarkMode
	v := l.prefs.DarkMode
	l.mu.Unlock()

	l.w.save(keyDarkMode, v)
	return v
}

// SetOnboarded records that the user finished (or reset) onboarding.
func (l *Ledger) SetOnboarded(v bool) {
	l.mu.Lock()
	l.prefs.Onboarded = v
	l.mu.Unlock()

	l.w.save(keyOnboarded, v)
}

// SetBudgetGoal stores the monthly spending target. Zero clears it.
func (l *Ledger) SetBudgetGoal(goal float64) error {
	if goal < 0 || math.IsNaN(goal) || math.IsInf(goal, 0) {
		return &ValidationError{Field: "budget", Reason: "must be zero or more"}
	}

	l.mu.Lock()
	l.prefs.BudgetGoal = goal
	l.mu.Unlock()

	l.w.save(keyBudget, goal)
	return nil
}
