package inventory

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeCatalog(t *testing.T) {
	catalog := `{
  "supplier": "acme",
  "catalog": {
    "items": [
      {"type":"Clothing","product_id":"C7","name":"Hoodie","price":35,"quantity":12,"size":"L","material":"Fleece"},
      {"type":"Grocery","product_id":"G7","name":"Coffee","price":8.9,"quantity":30,"expiry_date":"2027-03-01"}
    ]
  }
}`
	products, err := DecodeCatalog(strings.NewReader(catalog), "$.catalog.items")
	if err != nil {
		t.Fatalf("DecodeCatalog() returned an unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("DecodeCatalog() returned %d products, want 2", len(products))
	}
	if !products[0].Equal(NewClothing("C7", "Hoodie", P(35), 12, "L", "Fleece")) {
		t.Errorf("first product differs from the catalog record: %#v", products[0])
	}
	if !products[1].Equal(NewGrocery("G7", "Coffee", P(8.9), 30, MustParseDate("2027-03-01"))) {
		t.Errorf("second product differs from the catalog record: %#v", products[1])
	}
}

func TestDecodeCatalog_SingleRecord(t *testing.T) {
	catalog := `{"item":{"type":"Electronics","product_id":"E7","name":"Webcam","price":49.9,"quantity":4,"brand":"Logi","warranty_years":1}}`

	products, err := DecodeCatalog(strings.NewReader(catalog), "$.item")
	if err != nil {
		t.Fatalf("DecodeCatalog() returned an unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("DecodeCatalog() returned %d products, want 1", len(products))
	}
	if got := products[0].What(); got != TypeElectronics {
		t.Errorf("product type = %s, want %s", got, TypeElectronics)
	}
}

func TestDecodeCatalog_Errors(t *testing.T) {
	t.Run("invalid record", func(t *testing.T) {
		catalog := `{"items":[{"type":"Furniture","product_id":"F1","name":"Desk","price":120,"quantity":3}]}`
		_, err := DecodeCatalog(strings.NewReader(catalog), "$.items")
		if !errors.Is(err, ErrInvalidProductData) {
			t.Errorf("DecodeCatalog() error = %v, want ErrInvalidProductData", err)
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeCatalog(strings.NewReader("not json at all"), "$.items")
		if !errors.Is(err, ErrInvalidProductData) {
			t.Errorf("DecodeCatalog() error = %v, want ErrInvalidProductData", err)
		}
	})

	t.Run("bad path", func(t *testing.T) {
		_, err := DecodeCatalog(strings.NewReader(`{"items":[]}`), "$.nope.deeper")
		if err == nil {
			t.Error("DecodeCatalog() with an unresolvable path did not fail")
		}
	})
}
