package inventory

// helpers to create the sample products used across the package tests.

func laptop() *Electronics { return NewElectronics("E1", "Laptop", P(100), 5, "Lenovo", 2) }

func milk(expiry string) *Grocery {
	return NewGrocery("G1", "Milk", P(2.5), 20, MustParseDate(expiry))
}

func tshirt() *Clothing { return NewClothing("C1", "T-Shirt", P(15), 40, "M", "Cotton") }

// filled returns a store populated with one product of each variant.
func filled(expiry string) *Inventory {
	inv := NewInventory()
	inv.Add(laptop())
	inv.Add(milk(expiry))
	inv.Add(tshirt())
	return inv
}
