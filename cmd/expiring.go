package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type expiringCmd struct {
	within int
}

func (*expiringCmd) Name() string     { return "expiring" }
func (*expiringCmd) Synopsis() string { return "list groceries expiring soon" }
func (*expiringCmd) Usage() string {
	return `ics expiring [-within <days>]

  Lists every grocery whose expiry date falls between today and today plus
  the given number of days, boundaries included.
`
}

func (c *expiringCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.within, "within", 7, "Number of days ahead to look at")
}

func (c *expiringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.within < 0 {
		fmt.Fprintln(os.Stderr, "Error: -within must be non-negative.")
		return subcommands.ExitUsageError
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	today := inventory.Today()
	window := inventory.NewRange(today, today.Add(c.within))

	var expiring []inventory.Product
	for _, p := range inv.SearchByType(string(inventory.TypeGrocery)) {
		if g, ok := p.(*inventory.Grocery); ok && window.Contains(g.Expiry) {
			expiring = append(expiring, p)
		}
	}

	printMarkdown(renderer.Products(expiring, today))
	return subcommands.ExitSuccess
}
