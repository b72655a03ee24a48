package inventory

import "errors"

// Errors returned by the store and the product variants. They are wrapped
// with context at the failure site, so call sites test them with errors.Is.
var (
	// ErrDuplicateProductID is returned when adding a product whose id is already in the store.
	ErrDuplicateProductID = errors.New("duplicate product id")
	// ErrProductNotFound is returned by any operation referencing an absent product id.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned by a sell exceeding the current stock. Stock is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidProductData is returned when decoding a malformed or unknown product record.
	ErrInvalidProductData = errors.New("invalid product data")
)
