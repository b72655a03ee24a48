package inventory

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// productCmd holds every shared field a product record can carry. Variant
// decoding embeds it in a temporary struct together with the variant fields.
type productCmd struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     Price  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// validate checks the shared record fields common to every variant.
func (c productCmd) validate() error {
	if c.ProductID == "" {
		return fmt.Errorf("%w: missing product_id", ErrInvalidProductData)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: product %q has no name", ErrInvalidProductData, c.ProductID)
	}
	if c.Price.IsNegative() {
		return fmt.Errorf("%w: product %q has a negative price", ErrInvalidProductData, c.ProductID)
	}
	if c.Quantity < 0 {
		return fmt.Errorf("%w: product %q has a negative quantity", ErrInvalidProductData, c.ProductID)
	}
	return nil
}

// DecodeProduct decodes a single tagged product record. It is the only place
// that fails with ErrInvalidProductData: missing or malformed fields, an
// unparseable expiry date, or an unknown discriminator.
func DecodeProduct(data []byte) (Product, error) {
	var identifier struct {
		Type ProductType `json:"type"`
	}
	if err := json.Unmarshal(data, &identifier); err != nil {
		return nil, fmt.Errorf("%w: could not identify record %q: %v", ErrInvalidProductData, string(data), err)
	}

	switch identifier.Type {
	case TypeElectronics:
		var temp struct {
			productCmd
			Brand         string `json:"brand"`
			WarrantyYears int    `json:"warranty_years"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProductData, err)
		}
		if err := temp.validate(); err != nil {
			return nil, err
		}
		return NewElectronics(temp.ProductID, temp.Name, temp.Price, temp.Quantity, temp.Brand, temp.WarrantyYears), nil

	case TypeGrocery:
		var temp struct {
			productCmd
			ExpiryDate string `json:"expiry_date"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProductData, err)
		}
		if err := temp.validate(); err != nil {
			return nil, err
		}
		expiry, err := ParseDate(temp.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: product %q: %v", ErrInvalidProductData, temp.ProductID, err)
		}
		return NewGrocery(temp.ProductID, temp.Name, temp.Price, temp.Quantity, expiry), nil

	case TypeClothing:
		var temp struct {
			productCmd
			Size     string `json:"size"`
			Material string `json:"material"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProductData, err)
		}
		if err := temp.validate(); err != nil {
			return nil, err
		}
		return NewClothing(temp.ProductID, temp.Name, temp.Price, temp.Quantity, temp.Size, temp.Material), nil

	default:
		return nil, fmt.Errorf("%w: unknown product type: %q", ErrInvalidProductData, identifier.Type)
	}
}

// DecodeInventory decodes a stream of JSONL product records into a fresh
// inventory. On any invalid record it fails without returning a partial
// store, so a caller's existing inventory is never affected by a failed load.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := NewInventory()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		p, err := DecodeProduct(lineBytes)
		if err != nil {
			return nil, err
		}
		if err := inv.Add(p); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return inv, nil
}

// EncodeProduct marshals a single product to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeProduct(w io.Writer, p Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal product %q: %w", p.ID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write product %q: %w", p.ID(), err)
	}
	return nil
}

// EncodeInventory persists every product to an io.Writer in JSONL format.
// Records are written in ascending id order with a fixed key order, so the
// output is canonical: encoding the same store twice yields identical bytes.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	for _, p := range inv.Products() {
		if err := EncodeProduct(w, p); err != nil {
			return err
		}
	}
	return nil
}
