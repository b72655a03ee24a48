package inventory

import "testing"

func TestPrice_Arithmetic(t *testing.T) {
	if got, want := P(100).Mul(5), P(500); !got.Equal(want) {
		t.Errorf("P(100).Mul(5) = %s, want %s", got, want)
	}
	if got, want := P(2.5).Mul(20), P(50); !got.Equal(want) {
		t.Errorf("P(2.5).Mul(20) = %s, want %s", got, want)
	}
	if got := P(99.99).Mul(0); !got.IsZero() {
		t.Errorf("P(99.99).Mul(0) = %s, want 0", got)
	}
	if got, want := P(500).Add(P(50)).Add(P(600)), P(1150); !got.Equal(want) {
		t.Errorf("sum = %s, want %s", got, want)
	}

	// Exactness: the textbook float trap 0.1+0.2 stays exact in decimal.
	if got, want := P(0.1).Add(P(0.2)), P(0.3); !got.Equal(want) {
		t.Errorf("P(0.1)+P(0.2) = %s, want %s", got, want)
	}
}

func TestPrice_String(t *testing.T) {
	tests := []struct {
		price Price
		want  string
	}{
		{P(0), "$0.00"},
		{P(2.5), "$2.50"},
		{P(100), "$100.00"},
		{P(1299.99), "$1,299.99"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.price.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrice_JSON(t *testing.T) {
	data, err := P(999.99).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	// Prices persist as plain JSON numbers, not strings.
	if want := "999.99"; string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}

	var p Price
	if err := p.UnmarshalJSON([]byte("2.5")); err != nil {
		t.Fatalf("UnmarshalJSON() returned an unexpected error: %v", err)
	}
	if !p.Equal(P(2.5)) {
		t.Errorf("UnmarshalJSON(2.5) = %s, want %s", p, P(2.5))
	}
}
