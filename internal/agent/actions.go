package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/session"
)

// Quick actions the caller's UI can trigger without a chat message.
const (
	ActionShowCart      = "show_cart"
	ActionCheckout      = "checkout"
	ActionCompleteOrder = "complete_order"
)

// HandleAction resolves a quick action. Unknown identifiers get a generic
// "not recognized" response rather than failing the turn.
func (r *Router) HandleAction(sc *session.Context, action string) domain.Response {
	switch action {
	case ActionShowCart:
		return r.cartView(sc)
	case ActionCheckout:
		return r.payment(sc, "proceed to checkout")
	case ActionCompleteOrder:
		return r.completeOrderAction(sc)
	default:
		return domain.Response{
			Agent:    domain.AgentError,
			Message:  "Action not recognized",
			Actions:  []string{},
			NextStep: "awaiting_user_input",
		}
	}
}

func (r *Router) completeOrderAction(sc *session.Context) domain.Response {
	order, err := r.CompleteOrder(sc)
	if errors.Is(err, ErrNothingToOrder) {
		return domain.Response{
			Agent: domain.AgentPayment,
			Message: "💳 There's nothing to order yet. Add items to your cart " +
				"or pick a product first, then I'll complete the purchase for you!",
			Actions:  []string{"continue_shopping"},
			NextStep: "add_items",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎉 **Order Confirmed Successfully!**\n\n")
	fmt.Fprintf(&b, "**Order #%s**\n", order.OrderNumber)
	fmt.Fprintf(&b, "💰 **Total Paid:** $%.2f\n", order.FinalTotal)
	fmt.Fprintf(&b, "🚚 **Delivery:** %s\n", order.EstimatedDelivery)
	fmt.Fprintf(&b, "📧 **Confirmation sent to your email**\n\n")
	if order.Discount.Amount > 0 {
		fmt.Fprintf(&b, "💸 **You saved $%.2f with %s!**\n\n", order.Discount.Amount, order.Discount.Name)
	}
	b.WriteString("🎊 **Thank you for shopping with us!**\n" +
		"Your order is being processed and will be shipped soon.\n\n" +
		"Need anything else? I'm here to help!")

	return domain.Response{
		Agent:    domain.AgentPayment,
		Message:  b.String(),
		Actions:  []string{"start_shopping"},
		NextStep: "order_complete",
	}
}
