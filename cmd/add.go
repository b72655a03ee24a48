package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type addCmd struct {
	productType string
	id          string
	name        string
	price       float64
	quantity    int

	brand    string
	warranty int
	expiry   string
	size     string
	material string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the inventory" }
func (*addCmd) Usage() string {
	return `ics add -type <variant> -id <id> -name <name> -price <price> -quantity <n> [variant flags]

  Adds a new product:
  - Electronics: -brand <brand> -warranty <years>
  - Grocery:     -expiry <YYYY-MM-DD>
  - Clothing:    -size <size> -material <material>

  The id must be unique across the whole inventory, regardless of variant.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.productType, "type", "", "Product variant: Electronics, Grocery or Clothing (required)")
	f.StringVar(&c.id, "id", "", "Unique product identifier (required)")
	f.StringVar(&c.name, "name", "", "Product display name (required)")
	f.Float64Var(&c.price, "price", 0, "Unit price (required, non-negative)")
	f.IntVar(&c.quantity, "quantity", 0, "Initial stock count (non-negative)")
	f.StringVar(&c.brand, "brand", "", "Electronics: brand")
	f.IntVar(&c.warranty, "warranty", 0, "Electronics: warranty in years")
	f.StringVar(&c.expiry, "expiry", "", "Grocery: expiry date (YYYY-MM-DD)")
	f.StringVar(&c.size, "size", "", "Clothing: size")
	f.StringVar(&c.material, "material", "", "Clothing: material")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -name flags are required.")
		return subcommands.ExitUsageError
	}
	if c.price < 0 || c.quantity < 0 {
		fmt.Fprintln(os.Stderr, "Error: -price and -quantity must be non-negative.")
		return subcommands.ExitUsageError
	}

	kind, err := inventory.ParseProductType(c.productType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var product inventory.Product
	switch kind {
	case inventory.TypeElectronics:
		product = inventory.NewElectronics(c.id, c.name, inventory.P(c.price), c.quantity, c.brand, c.warranty)
	case inventory.TypeGrocery:
		expiry, err := inventory.ParseDate(c.expiry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing expiry date: %v\n", err)
			return subcommands.ExitUsageError
		}
		product = inventory.NewGrocery(c.id, c.name, inventory.P(c.price), c.quantity, expiry)
	case inventory.TypeClothing:
		product = inventory.NewClothing(c.id, c.name, inventory.P(c.price), c.quantity, c.size, c.material)
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := inv.Add(product); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully added %s %q to the inventory.\n", kind, c.id)
	return subcommands.ExitSuccess
}
