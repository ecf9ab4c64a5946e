package domain

import "time"

// OrderStatus is the state of a placed order. Orders are created confirmed
// and never change state afterwards; payment capture is simulated.
type OrderStatus string

const StatusConfirmed OrderStatus = "confirmed"

// Order is the immutable record produced by completing a checkout.
type Order struct {
	OrderNumber       string      `json:"order_number"`
	Items             []CartLine  `json:"items"`
	Total             float64     `json:"total"`
	Discount          Discount    `json:"discount"`
	Tax               float64     `json:"tax"`
	Shipping          float64     `json:"shipping"`
	FinalTotal        float64     `json:"final_total"`
	EstimatedDelivery string      `json:"estimated_delivery"`
	Timestamp         time.Time   `json:"timestamp"`
	Status            OrderStatus `json:"status"`
}

// OrderSummary is the checkout preview attached to payment responses. Its
// numbers must match what a subsequent CompleteOrder produces for the same
// cart or selected-product state.
type OrderSummary struct {
	Items              []CartLine `json:"items"`
	Subtotal           float64    `json:"subtotal"`
	Discount           Discount   `json:"discount"`
	DiscountedSubtotal float64    `json:"discounted_subtotal"`
	Tax                float64    `json:"tax"`
	Shipping           float64    `json:"shipping"`
	FinalTotal         float64    `json:"final_total"`
	AdditionalOffers   []Offer    `json:"additional_offers,omitempty"`
	DeliveryDate       string     `json:"delivery_date"`
}
