package agent

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/session"
)

// ErrNothingToOrder means neither a cart nor a selected product exists to
// complete an order from.
var ErrNothingToOrder = errors.New("agent: nothing to order")

const deliveryFormat = "Monday, Jan 2, 3:04 PM"

// CompleteOrder finalizes the pending purchase into an immutable confirmed
// order and clears the cart and selection. The math goes through
// computeTotals, so the order always matches the last payment summary shown
// for the same state.
func (r *Router) CompleteOrder(sc *session.Context) (domain.Order, error) {
	var (
		amount   float64
		purchase domain.PurchaseType
		items    []domain.CartLine
	)

	switch {
	case !sc.CartEmpty():
		amount = sc.CartTotal()
		purchase = domain.PurchaseCartCheckout
		items = make([]domain.CartLine, len(sc.Cart))
		copy(items, sc.Cart)
	case sc.SelectedProduct != nil:
		amount = sc.SelectedProduct.Price
		purchase = domain.PurchaseDirect
		items = []domain.CartLine{{Product: *sc.SelectedProduct, Quantity: 1}}
	default:
		return domain.Order{}, ErrNothingToOrder
	}

	t := computeTotals(amount, purchase)
	now := r.now()

	order := domain.Order{
		OrderNumber:       r.nextOrderNumber(),
		Items:             items,
		Total:             t.Discounted,
		Discount:          t.Discount,
		Tax:               t.Tax,
		Shipping:          t.Shipping,
		FinalTotal:        t.Final,
		EstimatedDelivery: now.Add(24 * time.Hour).Format(deliveryFormat),
		Timestamp:         now,
		Status:            domain.StatusConfirmed,
	}

	sc.ClearPurchase()

	r.log.Info("order confirmed",
		zap.String("session", sc.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("purchase_type", string(purchase)),
		zap.Float64("final_total", order.FinalTotal))

	return order, nil
}

func (r *Router) nextOrderNumber() string {
	return fmt.Sprintf("WM%08d", r.orderSeq.Add(1)%100_000_000)
}
