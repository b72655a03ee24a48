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

type searchCmd struct {
	name        string
	productType string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search products by name or by variant" }
func (*searchCmd) Usage() string {
	return `ics search [-name <substring> | -type <variant>]

  Searches the inventory, case-insensitively:
  - by name: every product whose name contains the substring.
  - by type: every product of the given variant.

  No match is not an error: the result is simply empty.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Substring to match against product names")
	f.StringVar(&c.productType, "type", "", "Variant name to match (Electronics, Grocery, Clothing)")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.name == "") == (c.productType == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -name or -type is required.")
		return subcommands.ExitUsageError
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	var matches []inventory.Product
	if c.name != "" {
		matches = inv.SearchByName(c.name)
	} else {
		matches = inv.SearchByType(c.productType)
	}

	printMarkdown(renderer.Products(matches, inventory.Today()))
	return subcommands.ExitSuccess
}
