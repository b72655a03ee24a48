package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/inventory/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion.
// Complete() exits the process when invoked by the shell, and is a no-op otherwise.
func completion() {
	variants := predict.Set{"Electronics", "Grocery", "Clothing"}
	id := predict.Nothing

	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"inventory-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"type": variants, "id": id, "name": predict.Nothing,
				"price": predict.Nothing, "quantity": predict.Nothing,
				"brand": predict.Nothing, "warranty": predict.Nothing,
				"expiry": predict.Nothing, "size": predict.Nothing, "material": predict.Nothing,
			}},
			"sell":    {Flags: map[string]complete.Predictor{"id": id, "quantity": predict.Nothing}},
			"restock": {Flags: map[string]complete.Predictor{"id": id, "quantity": predict.Nothing}},
			"remove":  {Flags: map[string]complete.Predictor{"id": id}},
			"search":  {Flags: map[string]complete.Predictor{"name": predict.Nothing, "type": variants}},
			"list":    {},
			"value":   {},
			"expiring": {Flags: map[string]complete.Predictor{
				"within": predict.Nothing,
			}},
			"sweep": {},
			"fmt":   {},
			"import": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.json"), "path": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "products", "file-format", "import"}},
		},
	}
	c.Complete("ics")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
