package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ics fmt

  Reads the whole inventory file, validating every record, and writes it back
  sorted by product id with a fixed key order. A hand-edited file that does
  not decode is left untouched.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully formatted %q.\n", *inventoryFile)
	return subcommands.ExitSuccess
}
