package domain

// Preferences holds the user's toggle state. Created with defaults on
// first run, overwritten in place on change.
type Preferences struct {
	DarkMode   bool    `json:"isDarkMode"`
	Onboarded  bool    `json:"isOnboarded"`
	BudgetGoal float64 `json:"budgetGoal"`
}

// Theme is a static palette record the presentation layer renders with.
type Theme struct {
	Name          string `json:"name"`
	Primary       string `json:"primary"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Income        string `json:"income"`
	Expense       string `json:"expense"`
	Border        string `json:"border"`
	Card          string `json:"card"`
}

var (
	LightTheme = Theme{
		Name:          "light",
		Primary:       "#3A86FF",
		Background:    "#F0F0F0",
		Surface:       "#FFFFFF",
		Text:          "#333333",
		TextSecondary: "#666666",
		Income:        "#06D6A0",
		Expense:       "#FF4C4C",
		Border:        "#E0E0E0",
		Card:          "#FFFFFF",
	}

	DarkTheme = Theme{
		Name:          "dark",
		Primary:       "#3A86FF",
		Background:    "#121212",
		Surface:       "#1E1E1E",
		Text:          "#FFFFFF",
		TextSecondary: "#CCCCCC",
		Income:        "#06D6A0",
		Expense:       "#FF4C4C",
		Border:        "#333333",
		Card:          "#1E1E1E",
	}
)

// ThemeFor returns the active theme record for the dark mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}
