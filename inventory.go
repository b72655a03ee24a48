package inventory

import (
	"fmt"
	"sort"
	"strings"
)

// Inventory is an in-memory store of products keyed by their unique id.
//
// The store owns its products exclusively: products are copied on the way in
// and on the way out, so no caller-held reference can bypass the stock
// invariants. Listing and searching iterate in ascending id order, which also
// makes the persisted form canonical.
type Inventory struct {
	products map[string]Product
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{products: make(map[string]Product)}
}

// Len returns the number of products in the store.
func (inv *Inventory) Len() int { return len(inv.products) }

// Add inserts a product into the store. It fails with ErrDuplicateProductID
// if a product with the same id is already present.
func (inv *Inventory) Add(p Product) error {
	if _, exists := inv.products[p.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateProductID, p.ID())
	}
	inv.products[p.ID()] = p.clone()
	return nil
}

// Remove deletes the product with the given id. It fails with
// ErrProductNotFound if the id is absent.
func (inv *Inventory) Remove(id string) error {
	if _, exists := inv.products[id]; !exists {
		return fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	delete(inv.products, id)
	return nil
}

// Get returns a copy of the product with the given id.
func (inv *Inventory) Get(id string) (Product, error) {
	p, exists := inv.products[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	return p.clone(), nil
}

// Sell decreases the stock of the identified product and returns its updated
// copy. It fails with ErrProductNotFound for an absent id and propagates
// ErrInsufficientStock from the product, leaving the stock unchanged.
func (inv *Inventory) Sell(id string, quantity int) (Product, error) {
	p, exists := inv.products[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	if err := p.Sell(quantity); err != nil {
		return nil, err
	}
	return p.clone(), nil
}

// Restock increases the stock of the identified product and returns its
// updated copy. It fails with ErrProductNotFound for an absent id.
func (inv *Inventory) Restock(id string, amount int) (Product, error) {
	p, exists := inv.products[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	p.Restock(amount)
	return p.clone(), nil
}

// Products returns a copy of every product in the store, in ascending id order.
func (inv *Inventory) Products() []Product {
	ids := make([]string, 0, len(inv.products))
	for id := range inv.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	list := make([]Product, 0, len(ids))
	for _, id := range ids {
		list = append(list, inv.products[id].clone())
	}
	return list
}

// SearchByName returns every product whose name contains the given substring,
// ignoring case. No match yields an empty result, not an error.
func (inv *Inventory) SearchByName(substr string) []Product {
	needle := strings.ToLower(substr)
	var matches []Product
	for _, p := range inv.Products() {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

// SearchByType returns every product whose variant discriminator equals the
// given name, ignoring case. An unknown type name yields an empty result.
func (inv *Inventory) SearchByType(typeName string) []Product {
	var matches []Product
	for _, p := range inv.Products() {
		if strings.EqualFold(string(p.What()), typeName) {
			matches = append(matches, p)
		}
	}
	return matches
}

// TotalValue returns the sum of every product's total value. An empty store
// values to zero.
func (inv *Inventory) TotalValue() Price {
	var total Price
	for _, p := range inv.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// RemoveExpired removes every grocery that is expired when observed on the
// given date, and returns the removed ids in ascending order. Other variants
// and non-expired groceries are untouched. Ids are collected first and
// deleted after the scan, so the sweep never mutates the map while ranging
// over it.
func (inv *Inventory) RemoveExpired(on Date) []string {
	var expired []string
	for id, p := range inv.products {
		if g, ok := p.(*Grocery); ok && g.IsExpired(on) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(inv.products, id)
	}
	sort.Strings(expired)
	return expired
}
