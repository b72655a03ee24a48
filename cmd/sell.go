package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	id       string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a quantity of a product" }
func (*sellCmd) Usage() string {
	return `ics sell -id <id> -quantity <n>

  Decreases the stock of a product. The sale fails if the quantity exceeds
  the current stock, leaving the stock unchanged.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier (required)")
	f.IntVar(&c.quantity, "quantity", 0, "Units to sell (required, positive)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.quantity <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and a positive -quantity are required.")
		return subcommands.ExitUsageError
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := inv.Sell(c.id, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Sold %d × %q, %d left in stock.\n", c.quantity, p.Name(), p.Stock())
	return subcommands.ExitSuccess
}
