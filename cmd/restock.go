package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	id       string
	quantity int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "restock a quantity of a product" }
func (*restockCmd) Usage() string {
	return `ics restock -id <id> -quantity <n>

  Increases the stock of a product.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier (required)")
	f.IntVar(&c.quantity, "quantity", 0, "Units to add (required, positive)")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.quantity <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and a positive -quantity are required.")
		return subcommands.ExitUsageError
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := inv.Restock(c.id, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Restocked %d × %q, %d in stock.\n", c.quantity, p.Name(), p.Stock())
	return subcommands.ExitSuccess
}
