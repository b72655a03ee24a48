package inventory

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the currency used to format prices for humans.
// Persisted records carry plain numbers, so it never reaches the file.
const displayCurrency = "USD"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Price represents a unit price. The value is kept as an exact decimal so
// that valuations never accumulate float drift.
type Price struct {
	value decimal.Decimal
}

// P creates a Price from any usual numeric type.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

func (p Price) Equal(q Price) bool { return p.value.Equal(q.value) }
func (p Price) IsZero() bool       { return p.value.IsZero() }
func (p Price) IsNegative() bool   { return p.value.IsNegative() }
func (p Price) Add(q Price) Price  { return Price{value: p.value.Add(q.value)} }

// Mul returns the price multiplied by a unit count.
func (p Price) Mul(n int) Price {
	return Price{value: p.value.Mul(decimal.NewFromInt(int64(n)))}
}

// currency returns the full display currency definition.
func (p Price) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency.
	return *money.New(0, displayCurrency).Currency()
}

// String formats the price for humans, e.g. "$1,299.99".
func (p Price) String() string {
	cur := p.currency()
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// MarshalJSON implements the json.Marshaler interface for Price.
// Prices are persisted as plain JSON numbers.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Price.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.value.UnmarshalJSON(data)
}
