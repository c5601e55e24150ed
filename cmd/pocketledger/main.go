/*Basic command structure*/
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/voidshard/pocketledger/pkg/crypto"
	"github.com/voidshard/pocketledger/pkg/kv"
	"github.com/voidshard/pocketledger/pkg/ledger"
)

const (
	envKey = "POCKETLEDGER_KEY"
	envSig = "POCKETLEDGER_SIG"
)

// context holds global options & the opened ledger
type context struct {
	ledger *ledger.Ledger
}

// cli commands / args available
var cli struct {
	Ctx context `embed`

	Data string `help:"Directory holding ledger state." default:"~/.pocketledger" type:"path"`

	Add        addCmd        `cmd help:"Record a transaction."`
	Edit       editCmd       `cmd help:"Edit a transaction by id."`
	Rm         rmCmd         `cmd help:"Delete a transaction by id."`
	List       listCmd       `cmd help:"List or search transactions."`
	Categories categoriesCmd `cmd help:"Show the category catalog."`
	Summary    summaryCmd    `cmd help:"Show balance, totals and budget."`
	Months     monthsCmd     `cmd help:"Income vs expenses per calendar month."`
	Budget     budgetCmd     `cmd help:"Show or set the monthly budget goal."`
	Theme      themeCmd      `cmd help:"Toggle dark mode."`
	Onboard    onboardCmd    `cmd help:"Mark onboarding as finished."`
	Clear      clearCmd      `cmd help:"Delete every transaction."`
	Export     exportCmd     `cmd help:"Dump transactions to a sink."`
}

func main() {
	godotenv.Load() // optional .env, fine if absent

	ctx := kong.Parse(&cli)

	led, err := openLedger(cli.Data)
	ctx.FatalIfErrorf(err)
	cli.Ctx.ledger = led

	err = ctx.Run(&cli.Ctx)
	led.Close() // drain pending writes before we exit
	ctx.FatalIfErrorf(err)
}

func openLedger(dir string) (*ledger.Ledger, error) {
	store, err := kv.NewDir(dir)
	if err != nil {
		return nil, err
	}

	// both keys set -> seal state at rest
	enc := os.Getenv(envKey)
	sig := os.Getenv(envSig)
	if enc != "" && sig != "" {
		store = kv.NewEncrypted(store, &crypto.Keys{Encryption: enc, Signature: sig})
	}

	led := ledger.New(store)
	led.Load()
	return led, nil
}
