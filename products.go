package inventory

import (
	"fmt"
	"strings"
)

// ProductType is a typed string identifying a product variant. It is the
// discriminator persisted in the "type" field of every product record.
type ProductType string

// Product variants known to the store.
const (
	TypeElectronics ProductType = "Electronics"
	TypeGrocery     ProductType = "Grocery"
	TypeClothing    ProductType = "Clothing"
)

// ParseProductType parses a string into a ProductType, ignoring case.
func ParseProductType(s string) (ProductType, error) {
	switch strings.ToLower(s) {
	case "electronics":
		return TypeElectronics, nil
	case "grocery":
		return TypeGrocery, nil
	case "clothing":
		return TypeClothing, nil
	default:
		return "", fmt.Errorf("%w: unknown product type: %q", ErrInvalidProductData, s)
	}
}

// Product defines the common capability set of all product variants held in
// the inventory. The set of implementations is closed: Electronics, Grocery,
// and Clothing. Variant-specific behavior is reached by type switching, not
// by widening this interface.
type Product interface {
	What() ProductType // What returns the variant discriminator.
	ID() string        // ID returns the unique product identifier.
	Name() string      // Name returns the display name.
	Price() Price      // Price returns the unit price.
	Stock() int        // Stock returns the current number of units in stock.

	// Sell decreases the stock by quantity. It fails with ErrInsufficientStock
	// when quantity exceeds the current stock, leaving the stock unchanged.
	Sell(quantity int) error
	// Restock increases the stock by amount. There is no upper bound; the
	// amount is assumed non-negative by caller contract.
	Restock(amount int)
	// TotalValue returns price multiplied by the units in stock.
	TotalValue() Price

	Equal(Product) bool

	// clone returns an independent copy, so the store never hands out a
	// reference that could mutate its own state.
	clone() Product
}

// baseProduct carries the fields shared by every variant. The fields are
// unexported: stock can only move through Sell and Restock, which is what
// keeps it non-negative.
type baseProduct struct {
	kind  ProductType
	id    string
	name  string
	price Price
	stock int
}

func (p *baseProduct) What() ProductType { return p.kind }
func (p *baseProduct) ID() string        { return p.id }
func (p *baseProduct) Name() string      { return p.name }
func (p *baseProduct) Price() Price      { return p.price }
func (p *baseProduct) Stock() int        { return p.stock }

func (p *baseProduct) Sell(quantity int) error {
	if quantity > p.stock {
		return fmt.Errorf("%w: not enough stock for %q, available: %d, want: %d", ErrInsufficientStock, p.name, p.stock, quantity)
	}
	p.stock -= quantity
	return nil
}

func (p *baseProduct) Restock(amount int) { p.stock += amount }

func (p *baseProduct) TotalValue() Price { return p.price.Mul(p.stock) }

func (p *baseProduct) equal(q *baseProduct) bool {
	return p.kind == q.kind && p.id == q.id && p.name == q.name &&
		p.price.Equal(q.price) && p.stock == q.stock
}

// MarshalJSON implements the json.Marshaler interface for baseProduct,
// fixing the order of the shared record fields.
func (p baseProduct) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", p.kind)
	w.Append("product_id", p.id)
	w.Append("name", p.name)
	w.Append("price", p.price)
	w.Append("quantity", p.stock)
	return w.MarshalJSON()
}

// Electronics is a product with a brand and a warranty.
type Electronics struct {
	baseProduct
	Brand         string
	WarrantyYears int
}

// NewElectronics creates a new Electronics product.
func NewElectronics(id, name string, price Price, stock int, brand string, warrantyYears int) *Electronics {
	return &Electronics{
		baseProduct:   baseProduct{kind: TypeElectronics, id: id, name: name, price: price, stock: stock},
		Brand:         brand,
		WarrantyYears: warrantyYears,
	}
}

// MarshalJSON implements the json.Marshaler interface for Electronics.
func (p Electronics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.baseProduct)
	w.Append("brand", p.Brand)
	w.Append("warranty_years", p.WarrantyYears)
	return w.MarshalJSON()
}

func (p *Electronics) Equal(other Product) bool {
	o, ok := other.(*Electronics)
	return ok && p.baseProduct.equal(&o.baseProduct) &&
		p.Brand == o.Brand && p.WarrantyYears == o.WarrantyYears
}

func (p *Electronics) clone() Product { c := *p; return &c }

// Grocery is a perishable product with an expiry date.
type Grocery struct {
	baseProduct
	Expiry Date
}

// NewGrocery creates a new Grocery product.
func NewGrocery(id, name string, price Price, stock int, expiry Date) *Grocery {
	return &Grocery{
		baseProduct: baseProduct{kind: TypeGrocery, id: id, name: name, price: price, stock: stock},
		Expiry:      expiry,
	}
}

// IsExpired reports whether the grocery is expired when observed on the given
// date. It is a pure predicate: callers pass Today() for wall-clock checks,
// and tests pass a fixed date.
func (p *Grocery) IsExpired(on Date) bool { return on.After(p.Expiry) }

// MarshalJSON implements the json.Marshaler interface for Grocery.
func (p Grocery) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.baseProduct)
	w.Append("expiry_date", p.Expiry)
	return w.MarshalJSON()
}

func (p *Grocery) Equal(other Product) bool {
	o, ok := other.(*Grocery)
	return ok && p.baseProduct.equal(&o.baseProduct) && p.Expiry == o.Expiry
}

func (p *Grocery) clone() Product { c := *p; return &c }

// Clothing is a product with a size and a material.
type Clothing struct {
	baseProduct
	Size     string
	Material string
}

// NewClothing creates a new Clothing product.
func NewClothing(id, name string, price Price, stock int, size, material string) *Clothing {
	return &Clothing{
		baseProduct: baseProduct{kind: TypeClothing, id: id, name: name, price: price, stock: stock},
		Size:        size,
		Material:    material,
	}
}

// MarshalJSON implements the json.Marshaler interface for Clothing.
func (p Clothing) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(p.baseProduct)
	w.Append("size", p.Size)
	w.Append("material", p.Material)
	return w.MarshalJSON()
}

func (p *Clothing) Equal(other Product) bool {
	o, ok := other.(*Clothing)
	return ok && p.baseProduct.equal(&o.baseProduct) &&
		p.Size == o.Size && p.Material == o.Material
}

func (p *Clothing) clone() Product { c := *p; return &c }
