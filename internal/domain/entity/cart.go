package entity

// CartSummary is the derived view of a cart returned after every read or
// mutation. Item count and the pricing breakdown are always recomputed from
// the line items, never stored.
type CartSummary struct {
	Items     []LineItem       `json:"items"`
	ItemCount int              `json:"item_count"`
	Pricing   PricingBreakdown `json:"pricing"`
}

// CountItems sums the quantities of all line items.
func CountItems(items []LineItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}

	return count
}
