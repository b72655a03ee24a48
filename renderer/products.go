package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/inventory"
)

// Products renders a product list as a markdown report, one section per
// variant. Variants with no product in the list are skipped entirely.
func Products(products []inventory.Product, on inventory.Date) string {
	var b strings.Builder

	if len(products) == 0 {
		b.WriteString("No products.\n")
		return b.String()
	}

	electronics := Header(func(w io.Writer) {
		fmt.Fprintf(w, "## Electronics\n\n")
		fmt.Fprintf(w, "| ID | Name | Price | Stock | Brand | Warranty |\n")
		fmt.Fprintf(w, "|:---|:---|---:|---:|:---|---:|\n")
	}).Footer(func(w io.Writer) { fmt.Fprintf(w, "\n") })

	groceries := Header(func(w io.Writer) {
		fmt.Fprintf(w, "## Groceries\n\n")
		fmt.Fprintf(w, "| ID | Name | Price | Stock | Expires | Status |\n")
		fmt.Fprintf(w, "|:---|:---|---:|---:|:---|:---|\n")
	}).Footer(func(w io.Writer) { fmt.Fprintf(w, "\n") })

	clothing := Header(func(w io.Writer) {
		fmt.Fprintf(w, "## Clothing\n\n")
		fmt.Fprintf(w, "| ID | Name | Price | Stock | Size | Material |\n")
		fmt.Fprintf(w, "|:---|:---|---:|---:|:---|:---|\n")
	}).Footer(func(w io.Writer) { fmt.Fprintf(w, "\n") })

	// One pass per variant keeps each section's rows together while
	// preserving the list order within a section.
	for _, p := range products {
		if v, ok := p.(*inventory.Electronics); ok {
			electronics.PrintHeader(&b)
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %d yrs |\n",
				v.ID(), v.Name(), v.Price(), v.Stock(), v.Brand, v.WarrantyYears)
		}
	}
	electronics.PrintFooter(&b)

	for _, p := range products {
		if v, ok := p.(*inventory.Grocery); ok {
			groceries.PrintHeader(&b)
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
				v.ID(), v.Name(), v.Price(), v.Stock(), v.Expiry, expiryStatus(v, on))
		}
	}
	groceries.PrintFooter(&b)

	for _, p := range products {
		if v, ok := p.(*inventory.Clothing); ok {
			clothing.PrintHeader(&b)
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
				v.ID(), v.Name(), v.Price(), v.Stock(), v.Size, v.Material)
		}
	}
	clothing.PrintFooter(&b)

	return b.String()
}

// Summary renders the store-wide aggregate: product count and total value.
func Summary(count int, total inventory.Price) string {
	var b strings.Builder
	b.WriteString("# Inventory Summary\n\n")
	fmt.Fprintf(&b, "- Products: **%d**\n", count)
	fmt.Fprintf(&b, "- Total value: **%s**\n", total)
	return b.String()
}
