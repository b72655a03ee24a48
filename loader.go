package inventory

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadInventory opens, decodes, and returns the inventory persisted at path.
// The file is read in full before anything is returned: a malformed file
// yields an error and no inventory.
func LoadInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return inv, nil
}

// SaveInventory persists the inventory to the given path in canonical JSONL
// form, overwriting any existing file. The parent directory is created if
// needed.
func SaveInventory(path string, inv *Inventory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for inventory %q: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening inventory file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeInventory(f, inv)
}
