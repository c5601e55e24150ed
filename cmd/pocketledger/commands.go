package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/voidshard/pocketledger/pkg/domain"
	"github.com/voidshard/pocketledger/pkg/export"
	"github.com/voidshard/pocketledger/pkg/ledger"
)

type addCmd struct {
	Type        string  `arg enum:"income,expense" help:"Direction: income or expense."`
	Amount      float64 `arg help:"Positive amount."`
	Description string  `arg help:"What this was."`

	Category string `required help:"Category id (see 'categories')."`
	Date     string `help:"When it occurred (YYYY-MM-DD). Defaults to today."`
}

func (c *addCmd) Run(ctx *context) error {
	t, err := ctx.ledger.Add(ledger.Input{
		Type:        domain.TransactionType(c.Type),
		Amount:      c.Amount,
		CategoryID:  c.Category,
		Description: c.Description,
		Date:        c.Date,
	})
	if err != nil {
		return err
	}
	fmt.Println("recorded", t.ID)
	return nil
}

type editCmd struct {
	ID string `arg help:"Transaction id."`

	Type        *string  `help:"New direction."`
	Amount      *float64 `help:"New amount."`
	Category    *string  `help:"New category id."`
	Description *string  `help:"New description."`
	Date        *string  `help:"New date (YYYY-MM-DD)."`
}

func (c *editCmd) Run(ctx *context) error {
	patch := ledger.Patch{
		Amount:      c.Amount,
		CategoryID:  c.Category,
		Description: c.Description,
		Date:        c.Date,
	}
	if c.Type != nil {
		tt := domain.TransactionType(*c.Type)
		patch.Type = &tt
	}

	t, err := ctx.ledger.Update(c.ID, patch)
	if err != nil {
		return err
	}
	fmt.Println("updated", t.ID)
	return nil
}

type rmCmd struct {
	ID string `arg help:"Transaction id."`
}

func (c *rmCmd) Run(ctx *context) error {
	ctx.ledger.Remove(c.ID)
	fmt.Println("removed", c.ID)
	return nil
}

type listCmd struct {
	Search string `help:"Substring to match against description, category or amount."`
	Limit  int    `default:"20" help:"Max rows to show, 0 for all."`
}

func (c *listCmd) Run(ctx *context) error {
	txns := ctx.ledger.Search(c.Search)
	if len(txns) == 0 {
		fmt.Println("no transactions")
		return nil
	}

	shown := txns
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	cats := ctx.ledger.Categories()
	for _, t := range shown {
		name := t.CategoryID
		if cat := domain.CategoryByID(cats, t.CategoryID); cat != nil {
			name = cat.Name
		}
		sign := "+"
		if t.Type == domain.Expense {
			sign = "-"
		}
		fmt.Printf("%s  %s%9.2f  %-18s %-30s %s\n", t.Date, sign, t.Amount, name, t.Description, t.ID)
	}
	if len(shown) < len(txns) {
		fmt.Printf("... %d of %d shown, use --limit 0 for all\n", len(shown), len(txns))
	}
	return nil
}

type categoriesCmd struct {
	Type string `enum:"income,expense," default:"" help:"Restrict to one direction."`
}

func (c *categoriesCmd) Run(ctx *context) error {
	cats := ctx.ledger.Categories()
	if c.Type != "" {
		cats = domain.CategoriesFor(cats, domain.TransactionType(c.Type))
	}
	for _, cat := range cats {
		fmt.Printf("%-14s %-18s %s\n", cat.ID, cat.Name, cat.Type)
	}
	return nil
}

type summaryCmd struct{}

func (c *summaryCmd) Run(ctx *context) error {
	now := time.Now()

	fmt.Printf("balance:       %10.2f\n", ctx.ledger.Balance())
	fmt.Printf("total income:  %10.2f\n", ctx.ledger.TotalIncome())
	fmt.Printf("total expense: %10.2f\n", ctx.ledger.TotalExpenses())
	fmt.Printf("this month:    %10.2f (savings rate %.0f%%)\n",
		ctx.ledger.MonthlyBalance(now.Month(), now.Year()),
		ctx.ledger.SavingsRate(now.Month(), now.Year())*100,
	)

	goal := ctx.ledger.Prefs().BudgetGoal
	if goal > 0 {
		spent := 0.0
		for _, t := range ctx.ledger.TransactionsInMonth(now.Month(), now.Year()) {
			if t.Type == domain.Expense {
				spent += t.Amount
			}
		}
		fmt.Printf("budget:        %10.2f of %.2f used\n", spent, goal)
	}

	top := ctx.ledger.ByCategory(domain.Expense)
	if len(top) > 0 {
		fmt.Println("top expense categories:")
		for i, ct := range top {
			if i >= 6 {
				break
			}
			fmt.Printf("  %-18s %10.2f\n", ct.Name, ct.Amount)
		}
	}
	return nil
}

type monthsCmd struct {
	N int `default:"6" help:"How many trailing months."`
}

func (c *monthsCmd) Run(ctx *context) error {
	for _, m := range ctx.ledger.ByMonth(c.N) {
		fmt.Printf("%s  income %10.2f  expenses %10.2f\n", m.Month, m.Income, m.Expenses)
	}
	return nil
}

type budgetCmd struct {
	Amount *float64 `arg optional help:"Monthly spending target, 0 to clear."`
}

func (c *budgetCmd) Run(ctx *context) error {
	if c.Amount == nil {
		goal := ctx.ledger.Prefs().BudgetGoal
		if goal == 0 {
			fmt.Println("no budget goal set")
		} else {
			fmt.Printf("budget goal: %.2f\n", goal)
		}
		return nil
	}
	err := ctx.ledger.SetBudgetGoal(*c.Amount)
	if err != nil {
		return err
	}
	fmt.Printf("budget goal set to %.2f\n", *c.Amount)
	return nil
}

type themeCmd struct{}

func (c *themeCmd) Run(ctx *context) error {
	ctx.ledger.ToggleDarkMode()
	fmt.Println("theme:", ctx.ledger.Theme().Name)
	return nil
}

type onboardCmd struct{}

func (c *onboardCmd) Run(ctx *context) error {
	ctx.ledger.SetOnboarded(true)
	fmt.Println("onboarding complete")
	return nil
}

type clearCmd struct {
	Force bool `help:"Actually do it."`
}

func (c *clearCmd) Run(ctx *context) error {
	if !c.Force {
		return fmt.Errorf("refusing to delete %d transactions without --force", len(ctx.ledger.Transactions()))
	}
	ctx.ledger.ClearAll()
	fmt.Println("cleared")
	return nil
}

type exportCmd struct {
	Out string `default:"jsonfile:out.json" help:"Where to write [jsonfile:/path/file.json csv:/path/file.csv es8:http://myelasticsearch:9200]"`
}

func (c *exportCmd) Run(ctx *context) error {
	sink, err := getSink(c.Out)
	if err != nil {
		return err
	}
	return sink.Write(ctx.ledger.Transactions())
}

func getSink(out string) (export.Sink, error) {
	bits := strings.SplitN(out, ":", 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("invalid out path, expected [jsonfile:/path/to/file.json], [csv:/path/to/file.csv] or [es8:http://elasticsearch:9200]")
	}

	switch bits[0] {
	case "es8":
		return export.NewElasticsearchV8(bits[1]), nil
	case "csv":
		return export.NewCSVFile(bits[1]), nil
	}
	return export.NewJSONFile(bits[1]), nil
}
