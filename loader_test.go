package inventory

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadInventory_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock", "inventory.jsonl")
	original := filled("2026-09-15")

	// SaveInventory creates the missing "stock" directory.
	if err := SaveInventory(path, original); err != nil {
		t.Fatalf("SaveInventory() returned an unexpected error: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory() returned an unexpected error: %v", err)
	}
	if got, want := loaded.Len(), original.Len(); got != want {
		t.Fatalf("loaded store has %d products, want %d", got, want)
	}
	for _, p := range original.Products() {
		q, err := loaded.Get(p.ID())
		if err != nil {
			t.Fatalf("loaded store lost product %q: %v", p.ID(), err)
		}
		if !p.Equal(q) {
			t.Errorf("loaded product %q differs from the saved one", p.ID())
		}
	}
}

func TestSaveInventory_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.jsonl")

	if err := SaveInventory(path, filled("2030-01-01")); err != nil {
		t.Fatalf("SaveInventory() returned an unexpected error: %v", err)
	}
	if err := SaveInventory(path, NewInventory()); err != nil {
		t.Fatalf("second SaveInventory() returned an unexpected error: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory() returned an unexpected error: %v", err)
	}
	if got := loaded.Len(); got != 0 {
		t.Errorf("loaded store has %d products, want 0 (file overwritten)", got)
	}
}

func TestLoadInventory_Missing(t *testing.T) {
	_, err := LoadInventory(filepath.Join(t.TempDir(), "nope.jsonl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadInventory() on a missing file error = %v, want fs.ErrNotExist", err)
	}
}

// TestLoadInventory_DoesNotTouchCaller pins the staging behavior of loads: a
// failed load returns an error and no store, so whatever inventory the caller
// already holds stays exactly as it was.
func TestLoadInventory_DoesNotTouchCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.jsonl")
	bad := `{"type":"Furniture","product_id":"F1","name":"Desk","price":120,"quantity":3}` + "\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	current := filled("2030-01-01")

	loaded, err := LoadInventory(path)
	if !errors.Is(err, ErrInvalidProductData) {
		t.Fatalf("LoadInventory() error = %v, want ErrInvalidProductData", err)
	}
	if loaded != nil {
		t.Error("LoadInventory() returned a partial store on failure")
	}
	if got := current.Len(); got != 3 {
		t.Errorf("caller's store has %d products after failed load, want 3", got)
	}
}
