package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/session"
)

func TestPayment_EmptyCartCheckoutGivesGuidance(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()

	resp := r.ProcessMessage(sc, "Checkout")

	assert.Equal(t, domain.AgentPayment, resp.Agent)
	assert.Nil(t, resp.OrderSummary)
	assert.Equal(t, "add_items", resp.NextStep)
	assert.Contains(t, resp.Actions, "continue_shopping")
}

func TestPayment_BuyNowUsesDirectPurchaseDiscount(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()
	tablet, ok := r.catalog.ByID(11) // $89.99
	require.True(t, ok)
	sc.SelectedProduct = &tablet

	resp := r.ProcessMessage(sc, "buy it now")

	require.NotNil(t, resp.OrderSummary)
	s := resp.OrderSummary
	assert.Equal(t, domain.PurchaseDirect, resp.PurchaseType)
	assert.Equal(t, "Buy Now Special", s.Discount.Name)
	assert.InDelta(t, tablet.Price, s.Subtotal, 1e-9)
	assert.InDelta(t, 0.20*tablet.Price, s.Discount.Amount, 1e-9)
	assert.InDelta(t, s.Subtotal-s.Discount.Amount, s.DiscountedSubtotal, 1e-9)
	assert.InDelta(t, 0.08*s.DiscountedSubtotal, s.Tax, 1e-9)
	assert.Zero(t, s.Shipping, "discounted subtotal above $35 ships free")
	assert.InDelta(t, s.DiscountedSubtotal+s.Tax+s.Shipping, s.FinalTotal, 1e-9)
	assert.NotEmpty(t, s.AdditionalOffers)
	assert.LessOrEqual(t, len(s.AdditionalOffers), 3)
}

func TestPayment_CartCheckoutSummary(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()
	pokemon, _ := r.catalog.ByID(2) // $19.99
	sc.AddToCart(pokemon, 2)        // subtotal 39.98

	resp := r.ProcessMessage(sc, "proceed to checkout")

	require.NotNil(t, resp.OrderSummary)
	s := resp.OrderSummary
	assert.Equal(t, domain.PurchaseCartCheckout, resp.PurchaseType)
	assert.Equal(t, "First-Time Customer", s.Discount.Name)
	assert.InDelta(t, 39.98, s.Subtotal, 1e-9)
	assert.InDelta(t, s.Subtotal-s.Discount.Amount, s.DiscountedSubtotal, 1e-9)
	assert.InDelta(t, shippingFee, s.Shipping, 1e-9, "discounted subtotal below $35 pays shipping")
	assert.InDelta(t, s.DiscountedSubtotal+s.Tax+s.Shipping, s.FinalTotal, 1e-9)
	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
}

func TestPayment_CartCheckoutBelowAllThresholds(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()
	smores, _ := r.catalog.ByID(12) // $9.98
	sc.AddToCart(smores, 1)

	resp := r.ProcessMessage(sc, "checkout")

	require.NotNil(t, resp.OrderSummary)
	assert.Equal(t, "Standard Pricing", resp.OrderSummary.Discount.Name)
	assert.Zero(t, resp.OrderSummary.Discount.Amount)
}

func TestPayment_SelectedProductTakesPriorityOverCart(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()
	pokemon, _ := r.catalog.ByID(2)
	lego, _ := r.catalog.ByID(1)
	sc.AddToCart(pokemon, 1)
	sc.SelectedProduct = &lego

	resp := r.ProcessMessage(sc, "purchase")

	assert.Equal(t, domain.PurchaseDirect, resp.PurchaseType)
	require.NotNil(t, resp.OrderSummary)
	require.Len(t, resp.OrderSummary.Items, 1)
	assert.Equal(t, lego.ID, resp.OrderSummary.Items[0].Product.ID)
}
