package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import products from a supplier catalog export" }
func (*importCmd) Usage() string {
	return `ics import -f <catalog.json> [-path <jsonpath>]

  Reads a supplier catalog export and adds its product records to the
  inventory. The -path expression locates the records inside the supplier's
  envelope, e.g. '$.catalog.items'. The import is all-or-nothing: one invalid
  or duplicate record fails the whole import and nothing is saved.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Supplier catalog file (required)")
	f.StringVar(&c.path, "path", "$", "JSONPath expression locating the product records")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f flag is required.")
		return subcommands.ExitUsageError
	}

	catalog, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer catalog.Close()

	products, err := inventory.DecodeCatalog(catalog, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, p := range products {
		if err := inv.Add(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := encodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Imported %d products from %q.\n", len(products), c.file)
	return subcommands.ExitSuccess
}
