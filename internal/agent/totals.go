package agent

import (
	"github.com/sparkyshop/sparky/internal/discount"
	"github.com/sparkyshop/sparky/internal/domain"
)

const (
	taxRate         = 0.08
	shippingFee     = 5.99
	freeShippingMin = 35.0
)

// totals is the checkout math shared by the payment handler and
// CompleteOrder. Both must go through computeTotals so a completed order
// always matches the last summary shown for the same state.
type totals struct {
	Subtotal   float64
	Discount   domain.Discount
	Discounted float64
	Tax        float64
	Shipping   float64
	Final      float64
}

func computeTotals(amount float64, purchase domain.PurchaseType) totals {
	d := discount.Best(amount, purchase)
	discounted := amount - d.Amount

	shipping := shippingFee
	if discounted > freeShippingMin {
		shipping = 0
	}

	tax := discounted * taxRate
	return totals{
		Subtotal:   amount,
		Discount:   d,
		Discounted: discounted,
		Tax:        tax,
		Shipping:   shipping,
		Final:      discounted + tax + shipping,
	}
}
