package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeCatalog reads a supplier catalog export and extracts the product
// records found at the given JSONPath expression, e.g. "$.catalog.items".
// Suppliers wrap their item lists in arbitrary envelopes; the path tells the
// decoder where the records live. The records themselves must follow the
// tagged product schema.
func DecodeCatalog(r io.Reader, path string) ([]Product, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("%w: catalog is not valid JSON: %v", ErrInvalidProductData, err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q on catalog: %w", path, err)
	}

	// jsonpath may return a single record or a list of them depending on the
	// expression; normalize to a list.
	records, ok := jval.([]any)
	if !ok {
		records = []any{jval}
	}

	products := make([]Product, 0, len(records))
	for i, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("%w: catalog record %d: %v", ErrInvalidProductData, i, err)
		}
		p, err := DecodeProduct(data)
		if err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}
