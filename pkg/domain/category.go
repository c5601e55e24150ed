package domain

// CategoryBoth marks a category usable for either direction.
const CategoryBoth TransactionType = "both"

// Category is a classification bucket. Icon and Color are opaque
// presentation hints; the store persists them but never interprets them.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Type  TransactionType `json:"type"`
}

// Accepts reports whether a transaction of the given type may use this category.
func (c *Category) Accepts(t TransactionType) bool {
	return c.Type == CategoryBoth || c.Type == t
}

// DefaultCategories is the fixed catalog loaded at store initialization.
// Categories are not user mutable.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: "salary", Name: "Salary", Icon: "Briefcase", Color: "#10B981", Type: Income},
		{ID: "business", Name: "Business", Icon: "Building", Color: "#059669", Type: Income},
		{ID: "freelance", Name: "Freelance", Icon: "Laptop", Color: "#0891B2", Type: Income},
		{ID: "investment", Name: "Investment", Icon: "TrendingUp", Color: "#0D9488", Type: Income},
		{ID: "gift", Name: "Gift", Icon: "Gift", Color: "#7C3AED", Type: Income},
		{ID: "other-income", Name: "Other Income", Icon: "PlusCircle", Color: "#059669", Type: Income},

		{ID: "food", Name: "Food & Dining", Icon: "Utensils", Color: "#EF4444", Type: Expense},
		{ID: "transport", Name: "Transportation", Icon: "Car", Color: "#F97316", Type: Expense},
		{ID: "shopping", Name: "Shopping", Icon: "ShoppingBag", Color: "#EC4899", Type: Expense},
		{ID: "entertainment", Name: "Entertainment", Icon: "Music", Color: "#8B5CF6", Type: Expense},
		{ID: "bills", Name: "Bills & Utilities", Icon: "Zap", Color: "#06B6D4", Type: Expense},
		{ID: "healthcare", Name: "Healthcare", Icon: "Heart", Color: "#10B981", Type: Expense},
		{ID: "education", Name: "Education", Icon: "Book", Color: "#3B82F6", Type: Expense},
		{ID: "other-expense", Name: "Other Expenses", Icon: "MoreHorizontal", Color: "#6B7280", Type: Expense},
	}
}

// CategoryByID finds a category in the given catalog, or nil.
func CategoryByID(cats []*Category, id string) *Category {
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CategoriesFor filters a catalog down to those usable for the given type.
func CategoriesFor(cats []*Category, t TransactionType) []*Category {
	out := []*Category{}
	for _, c := range cats {
		if c.Accepts(t) {
			out = append(out, c)
		}
	}
	return out
}
