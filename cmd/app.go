// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&sellCmd{}, "inventory")
	c.Register(&restockCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")

	c.Register(&listCmd{}, "reports")
	c.Register(&searchCmd{}, "reports")
	c.Register(&valueCmd{}, "reports")
	c.Register(&expiringCmd{}, "reports")

	c.Register(&sweepCmd{}, "maintenance")
	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&importCmd{}, "maintenance")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "inventory.jsonl", "Path to the inventory file (JSONL format)")

// decodeInventory loads the app inventory file. A missing file is not an
// error: the store starts empty and is created on the first save.
func decodeInventory() (*inventory.Inventory, error) {
	inv, err := inventory.LoadInventory(*inventoryFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, inventory file does not exist, starting with an empty inventory instead")
		return inventory.NewInventory(), nil
	}
	return inv, err
}

// encodeInventory persists the store back into the app inventory file.
func encodeInventory(inv *inventory.Inventory) error {
	return inventory.SaveInventory(*inventoryFile, inv)
}
