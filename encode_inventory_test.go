package inventory

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeInventory(t *testing.T) {
	// A multi-line string representing a JSONL stream with all product types
	jsonlStream := `
{"type":"Electronics","product_id":"E1","name":"Laptop","price":999.99,"quantity":5,"brand":"Lenovo","warranty_years":2}
{"type":"Grocery","product_id":"G1","name":"Milk","price":2.5,"quantity":20,"expiry_date":"2030-01-01"}
{"type":"Clothing","product_id":"C1","name":"T-Shirt","price":15,"quantity":40,"size":"M","material":"Cotton"}
`
	inv, err := DecodeInventory(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}

	if got := inv.Len(); got != 3 {
		t.Fatalf("DecodeInventory() decoded %d products, want 3", got)
	}

	expectedTypes := map[string]reflect.Type{
		"E1": reflect.TypeOf(&Electronics{}),
		"G1": reflect.TypeOf(&Grocery{}),
		"C1": reflect.TypeOf(&Clothing{}),
	}
	for id, want := range expectedTypes {
		p, err := inv.Get(id)
		if err != nil {
			t.Fatalf("Get(%q) returned an unexpected error: %v", id, err)
		}
		if got := reflect.TypeOf(p); got != want {
			t.Errorf("product %q has wrong type. Got: %v, want: %v", id, got, want)
		}
	}

	g, _ := inv.Get("G1")
	grocery := g.(*Grocery)
	if got, want := grocery.Expiry, MustParseDate("2030-01-01"); got != want {
		t.Errorf("grocery expiry = %s, want %s", got, want)
	}
}

func TestDecodeInventory_InvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown type", `{"type":"Furniture","product_id":"F1","name":"Desk","price":120,"quantity":3}`},
		{"missing id", `{"type":"Clothing","name":"Socks","price":3,"quantity":10,"size":"M","material":"Wool"}`},
		{"missing name", `{"type":"Clothing","product_id":"C9","price":3,"quantity":10}`},
		{"negative price", `{"type":"Electronics","product_id":"E9","name":"Mouse","price":-5,"quantity":1}`},
		{"negative quantity", `{"type":"Electronics","product_id":"E9","name":"Mouse","price":5,"quantity":-1}`},
		{"bad expiry date", `{"type":"Grocery","product_id":"G9","name":"Milk","price":2.5,"quantity":1,"expiry_date":"not-a-date"}`},
		{"missing expiry date", `{"type":"Grocery","product_id":"G9","name":"Milk","price":2.5,"quantity":1}`},
		{"not json", `{"type":"Grocery",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := DecodeInventory(strings.NewReader(tt.line + "\n"))
			if !errors.Is(err, ErrInvalidProductData) {
				t.Errorf("DecodeInventory() error = %v, want ErrInvalidProductData", err)
			}
			if inv != nil {
				t.Errorf("DecodeInventory() returned a partial store on failure")
			}
		})
	}
}

func TestDecodeInventory_DuplicateID(t *testing.T) {
	jsonlStream := `
{"type":"Clothing","product_id":"C1","name":"T-Shirt","price":15,"quantity":40,"size":"M","material":"Cotton"}
{"type":"Clothing","product_id":"C1","name":"T-Shirt","price":15,"quantity":40,"size":"L","material":"Cotton"}
`
	_, err := DecodeInventory(strings.NewReader(jsonlStream))
	if !errors.Is(err, ErrDuplicateProductID) {
		t.Errorf("DecodeInventory() error = %v, want ErrDuplicateProductID", err)
	}
}

func TestEncodeInventory_Canonical(t *testing.T) {
	// Products added in a deliberately scrambled order are written back
	// sorted by id with a fixed key order.
	inv := NewInventory()
	inv.Add(NewGrocery("G1", "Milk", P(2.5), 20, MustParseDate("2030-01-01")))
	inv.Add(NewClothing("C1", "T-Shirt", P(15), 40, "M", "Cotton"))
	inv.Add(NewElectronics("E1", "Laptop", P(999.99), 5, "Lenovo", 2))

	var buffer bytes.Buffer
	if err := EncodeInventory(&buffer, inv); err != nil {
		t.Fatalf("EncodeInventory() returned an unexpected error: %v", err)
	}

	want := `{"type":"Clothing","product_id":"C1","name":"T-Shirt","price":15,"quantity":40,"size":"M","material":"Cotton"}
{"type":"Electronics","product_id":"E1","name":"Laptop","price":999.99,"quantity":5,"brand":"Lenovo","warranty_years":2}
{"type":"Grocery","product_id":"G1","name":"Milk","price":2.5,"quantity":20,"expiry_date":"2030-01-01"}
`
	if got := buffer.String(); got != want {
		t.Errorf("EncodeInventory() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeDecodeInventory_RoundTrip(t *testing.T) {
	original := NewInventory()
	original.Add(NewElectronics("E1", "Laptop", P(999.99), 5, "Lenovo", 2))
	original.Add(NewElectronics("E2", "Headphones", P(59), 0, "Sony", 1))
	original.Add(NewGrocery("G1", "Milk", P(2.5), 20, MustParseDate("2026-09-15")))
	original.Add(NewClothing("C1", "T-Shirt", P(15), 40, "M", "Cotton"))

	var buffer bytes.Buffer
	if err := EncodeInventory(&buffer, original); err != nil {
		t.Fatalf("EncodeInventory() returned an unexpected error: %v", err)
	}

	loaded, err := DecodeInventory(&buffer)
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}

	if got, want := loaded.Len(), original.Len(); got != want {
		t.Fatalf("round-trip store has %d products, want %d", got, want)
	}
	for _, p := range original.Products() {
		q, err := loaded.Get(p.ID())
		if err != nil {
			t.Fatalf("round-trip lost product %q: %v", p.ID(), err)
		}
		if !p.Equal(q) {
			t.Errorf("round-trip altered product %q:\ngot:  %#v\nwant: %#v", p.ID(), q, p)
		}
	}
}
