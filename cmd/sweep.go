package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type sweepCmd struct{}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "remove all expired groceries" }
func (*sweepCmd) Usage() string {
	return `ics sweep

  Removes every grocery whose expiry date is strictly before today.
  Electronics, clothing and non-expired groceries are untouched.
`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {}

func (c *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	removed := inv.RemoveExpired(inventory.Today())
	if len(removed) == 0 {
		fmt.Println("No expired groceries.")
		return subcommands.ExitSuccess
	}

	if err := encodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Removed %d expired groceries:\n", len(removed))
	for _, id := range removed {
		fmt.Printf("  - %s\n", id)
	}
	return subcommands.ExitSuccess
}
