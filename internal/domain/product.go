package domain

// Product is a read-only catalogue record. The core never mutates products;
// invariant: Price <= OriginalPrice.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Rating        float64  `json:"rating"`
	Tags          []string `json:"tags"`
	Image         string   `json:"image"`
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Savings is the gap between the list price and the current price.
func (p Product) Savings() float64 {
	return p.OriginalPrice - p.Price
}
