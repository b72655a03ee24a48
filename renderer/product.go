package renderer

import (
	"fmt"

	"github.com/etnz/inventory"
)

// Product renders a product to a single descriptive line. The observation
// date decides how a grocery's expiry status is reported.
func Product(p inventory.Product, on inventory.Date) string {
	line := fmt.Sprintf("%s (ID: %s) - %s, Stock: %d", p.Name(), p.ID(), p.Price(), p.Stock())
	switch v := p.(type) {
	case *inventory.Electronics:
		return line + fmt.Sprintf(", Brand: %s, Warranty: %d yrs", v.Brand, v.WarrantyYears)
	case *inventory.Grocery:
		return line + fmt.Sprintf(", Expires: %s (%s)", v.Expiry, expiryStatus(v, on))
	case *inventory.Clothing:
		return line + fmt.Sprintf(", Size: %s, Material: %s", v.Size, v.Material)
	default:
		return line
	}
}

func expiryStatus(g *inventory.Grocery, on inventory.Date) string {
	if g.IsExpired(on) {
		return "EXPIRED"
	}
	return "Valid"
}
