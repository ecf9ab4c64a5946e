package discount

import (
	"testing"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBest_DirectPurchaseOverride(t *testing.T) {
	// Buy Now Special wins on the direct path even though it is also the
	// highest saver here; the override, not the comparison, selects it.
	d := Best(100, domain.PurchaseDirect)
	assert.Equal(t, "Buy Now Special", d.Name)
	assert.InDelta(t, 20.0, d.Amount, 1e-9)
	assert.Equal(t, "BUYNOW20", d.Code)
}

func TestBest_OverrideBeatsHigherSavers(t *testing.T) {
	// at $21 only Buy Now Special is eligible on the direct path
	d := Best(21, domain.PurchaseDirect)
	assert.Equal(t, "Buy Now Special", d.Name)
	assert.InDelta(t, 4.2, d.Amount, 1e-9)
}

func TestBest_CartCheckoutNeverSelectsBuyNowSpecial(t *testing.T) {
	// direct-only exclusion: at $100 the 20% promo would out-save everyone,
	// but the cart path must pick First-Time Customer (15%)
	d := Best(100, domain.PurchaseCartCheckout)
	assert.Equal(t, "First-Time Customer", d.Name)
	assert.InDelta(t, 15.0, d.Amount, 1e-9)
}

func TestBest_CartCheckoutBelowAllThresholds(t *testing.T) {
	// 24.99 clears only Buy Now Special's threshold, which the cart path
	// excludes, so Standard Pricing applies
	d := Best(24.99, domain.PurchaseCartCheckout)
	assert.Equal(t, Standard, d)
}

func TestBest_DirectAtEligibilityBoundary(t *testing.T) {
	d := Best(24.99, domain.PurchaseDirect)
	assert.Equal(t, "Buy Now Special", d.Name)

	d = Best(19.99, domain.PurchaseDirect)
	assert.Equal(t, Standard, d)
}

func TestBest_ExactThreshold(t *testing.T) {
	// minAmount <= amount is inclusive
	d := Best(25, domain.PurchaseCartCheckout)
	assert.Equal(t, "First-Time Customer", d.Name)
	assert.InDelta(t, 3.75, d.Amount, 1e-9)
}

func TestBest_PicksHighestSaverOnCartPath(t *testing.T) {
	// at $45: 15% = 6.75, 10% = 4.50, Summer Sale = 8, Cart Saver = 5
	d := Best(45, domain.PurchaseCartCheckout)
	assert.Equal(t, "Summer Sale", d.Name)
	assert.InDelta(t, 8.0, d.Amount, 1e-9)
}

func TestBest_StrictComparisonKeepsEarlierEntry(t *testing.T) {
	// selection uses strictly-greater, so an equal later saver can never
	// displace an earlier one; at $35 the 15% promo (5.25) beats Cart
	// Saver's flat 5 and the order of checks is observable via the winner
	d := Best(35, domain.PurchaseCartCheckout)
	assert.Equal(t, "First-Time Customer", d.Name)
	assert.InDelta(t, 5.25, d.Amount, 1e-9)
}

func TestBest_NeverExceedsSubjectAmount(t *testing.T) {
	for _, amount := range []float64{20, 24.99, 25, 30, 35, 40, 50, 100} {
		for _, pt := range []domain.PurchaseType{domain.PurchaseDirect, domain.PurchaseCartCheckout} {
			d := Best(amount, pt)
			assert.LessOrEqual(t, d.Amount, amount, "amount=%v type=%v", amount, pt)
		}
	}
}

func TestAdditionalOffers_Evergreen(t *testing.T) {
	offers := AdditionalOffers(10)
	assert.Len(t, offers, 3)
	assert.Equal(t, "Walmart+ Free Trial", offers[0].Name)
	assert.Equal(t, "Price Match Guarantee", offers[1].Name)
	assert.Equal(t, "Extended Warranty", offers[2].Name)
}

func TestAdditionalOffers_CappedAtThree(t *testing.T) {
	// both conditional offers qualify at 50+, but the cap keeps the first 3
	offers := AdditionalOffers(75)
	assert.Len(t, offers, 3)
	for _, o := range offers {
		assert.True(t, o.Available)
	}
}
