package entity

// CartLine is a single cart line item as reported by the checkout context.
type CartLine struct {
	ProductID   int64
	VariationID int64 // Zero when the product has no variation.
	Quantity    int64
}

// CartDemand maps a product identifier to the total requested quantity.
// The identifier is the variation id when present, else the product id.
type CartDemand map[int64]int64

// BuildDemand aggregates cart lines into per-product demand. Lines with a
// non-positive quantity are ignored.
func BuildDemand(lines []CartLine) CartDemand {
	demand := make(CartDemand, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}

		id := line.ProductID
		if line.VariationID != 0 {
			id = line.VariationID
		}
		demand[id] += line.Quantity
	}

	return demand
}
