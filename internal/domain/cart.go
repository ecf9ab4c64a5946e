package domain

// CartLine is one cart entry. Lines are unique by product ID; adding an
// already-present product increments Quantity instead of appending a line.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
