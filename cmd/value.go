package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "report the total inventory value" }
func (*valueCmd) Usage() string {
	return `ics value

  Reports the number of products and the sum of price × stock over the whole
  inventory. An empty inventory values to zero.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(inv.Len(), inv.TotalValue()))
	return subcommands.ExitSuccess
}
