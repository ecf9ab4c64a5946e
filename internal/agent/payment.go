package agent

import (
	"fmt"
	"strings"

	"github.com/sparkyshop/sparky/internal/discount"
	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/intent"
	"github.com/sparkyshop/sparky/internal/session"
)

const deliveryPromise = "Tomorrow by 2 PM"

// payment branches on buy-now versus cart checkout. Buy-now needs a selected
// product; cart checkout needs a non-empty cart. Anything else becomes a
// guidance message, never an error.
func (r *Router) payment(sc *session.Context, message string) domain.Response {
	// a selected product implies buy-now even without the phrase; detail
	// flows set the selection exactly so "purchase it" works afterwards
	isBuyNow := intent.IsBuyNow(message) || sc.SelectedProduct != nil

	if isBuyNow && sc.SelectedProduct != nil {
		return r.buyNow(sc)
	}

	if sc.CartEmpty() {
		return domain.Response{
			Agent: domain.AgentPayment,
			Message: "💳 **Payment Agent here!**\n\n" +
				"Your cart is currently empty. Add some items to your cart first, " +
				"then I'll help you checkout with the best available discounts!",
			Actions:  []string{"continue_shopping"},
			NextStep: "add_items",
		}
	}

	return r.cartCheckout(sc)
}

func (r *Router) buyNow(sc *session.Context) domain.Response {
	product := *sc.SelectedProduct
	t := computeTotals(product.Price, domain.PurchaseDirect)
	offers := discount.AdditionalOffers(product.Price)

	var b strings.Builder
	fmt.Fprintf(&b, "💳 **Payment Agent - Buy Now Express Checkout!**\n\n")
	fmt.Fprintf(&b, "**🛒 %s**\n\n", product.Name)
	fmt.Fprintf(&b, "**💰 BEST PRICE GUARANTEED:**\n")
	fmt.Fprintf(&b, "• Original Price: $%.2f\n", t.Subtotal)
	fmt.Fprintf(&b, "• **%s**: -$%.2f 🎉\n", t.Discount.Name, t.Discount.Amount)
	fmt.Fprintf(&b, "• **Your Price**: $%.2f\n\n", t.Discounted)

	fmt.Fprintf(&b, "**🎁 EXCLUSIVE OFFERS AVAILABLE:**\n")
	for _, offer := range offers {
		fmt.Fprintf(&b, "• %s **%s** - %s\n", offer.Emoji, offer.Name, offer.Description)
	}

	fmt.Fprintf(&b, "\n**📦 Order Summary:**\n")
	fmt.Fprintf(&b, "• Product: %s\n", product.Name)
	fmt.Fprintf(&b, "• Discounted Price: $%.2f\n", t.Discounted)
	fmt.Fprintf(&b, "• Tax (8%%): $%.2f\n", t.Tax)
	fmt.Fprintf(&b, "• Shipping: %s\n\n", shippingLabel(t.Shipping))
	fmt.Fprintf(&b, "**💵 TOTAL: $%.2f**\n", t.Final)
	fmt.Fprintf(&b, "**🚚 Delivery:** %s\n\n", deliveryPromise)
	b.WriteString("Ready to complete your purchase with these savings?")

	return domain.Response{
		Agent:   domain.AgentPayment,
		Message: b.String(),
		OrderSummary: &domain.OrderSummary{
			Items:              []domain.CartLine{{Product: product, Quantity: 1}},
			Subtotal:           t.Subtotal,
			Discount:           t.Discount,
			DiscountedSubtotal: t.Discounted,
			Tax:                t.Tax,
			Shipping:           t.Shipping,
			FinalTotal:         t.Final,
			AdditionalOffers:   offers,
			DeliveryDate:       deliveryPromise,
		},
		PurchaseType: domain.PurchaseDirect,
		Actions:      []string{"confirm_purchase", "apply_more_coupons"},
		NextStep:     "payment_confirmation",
	}
}

func (r *Router) cartCheckout(sc *session.Context) domain.Response {
	t := computeTotals(sc.CartTotal(), domain.PurchaseCartCheckout)

	var b strings.Builder
	fmt.Fprintf(&b, "💳 **Payment Agent - Checkout Ready!**\n\n")
	fmt.Fprintf(&b, "**💰 Best Discount Applied:**\n")
	fmt.Fprintf(&b, "• Subtotal: $%.2f\n", t.Subtotal)
	fmt.Fprintf(&b, "• **%s**: -$%.2f 🎉\n", t.Discount.Name, t.Discount.Amount)
	fmt.Fprintf(&b, "• **Discounted Total**: $%.2f\n\n", t.Discounted)

	fmt.Fprintf(&b, "**📦 Final Order Summary:**\n")
	for _, line := range sc.Cart {
		fmt.Fprintf(&b, "• %s - $%.2f x%d\n", line.Product.Name, line.Product.Price, line.Quantity)
	}
	fmt.Fprintf(&b, "\n• Tax: $%.2f\n", t.Tax)
	fmt.Fprintf(&b, "• Shipping: %s\n\n", shippingLabel(t.Shipping))
	fmt.Fprintf(&b, "**💵 Total: $%.2f**\n", t.Final)
	fmt.Fprintf(&b, "**🚚 Estimated Delivery:** %s\n\n", deliveryPromise)
	fmt.Fprintf(&b, "Great savings with %s! Ready to complete your purchase?", t.Discount.Name)

	items := make([]domain.CartLine, len(sc.Cart))
	copy(items, sc.Cart)

	return domain.Response{
		Agent:   domain.AgentPayment,
		Message: b.String(),
		OrderSummary: &domain.OrderSummary{
			Items:              items,
			Subtotal:           t.Subtotal,
			Discount:           t.Discount,
			DiscountedSubtotal: t.Discounted,
			Tax:                t.Tax,
			Shipping:           t.Shipping,
			FinalTotal:         t.Final,
			DeliveryDate:       deliveryPromise,
		},
		PurchaseType: domain.PurchaseCartCheckout,
		Actions:      []string{"confirm_purchase", "apply_more_coupons"},
		NextStep:     "payment_confirmation",
	}
}

func shippingLabel(shipping float64) string {
	if shipping == 0 {
		return "FREE (over $35!)"
	}
	return fmt.Sprintf("$%.2f", shipping)
}
