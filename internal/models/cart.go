package models

// CartLine is one line of a session cart. At most one line exists per
// (ProductID, Size) pair and Quantity is always >= 1.
type CartLine struct {
	ProductID string `json:"product_id"`
	Size      Size   `json:"size"`
	Quantity  int    `json:"quantity"`
}

// Cart is the volatile per-session cart state. Open mirrors the drawer
// visibility flag of the storefront UI.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Open  bool       `json:"open"`
}

// Find returns the index of the line matching (productID, size), or -1.
func (c *Cart) Find(productID string, size Size) int {
	for i, l := range c.Lines {
		if l.ProductID == productID && l.Size == size {
			return i
		}
	}
	return -1
}

// Clone deep-copies the cart so store snapshots never alias caller state.
func (c Cart) Clone() Cart {
	out := Cart{Open: c.Open}
	if len(c.Lines) > 0 {
		out.Lines = make([]CartLine, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	return out
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}
