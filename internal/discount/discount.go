// Package discount selects the single best applicable promotion for a
// monetary amount and purchase type, plus the informational offers shown
// alongside checkout summaries.
package discount

import "github.com/sparkyshop/sparky/internal/domain"

// promo is a table entry. Percentage promos set percent, fixed promos set
// flat. directOnly promos never apply to cart checkouts.
type promo struct {
	name       string
	percent    float64
	flat       float64
	minAmount  float64
	code       string
	directOnly bool
}

// table order matters twice: it is the tie-break order for equal savings, and
// "Buy Now Special" is the entry the direct-purchase override looks for.
var table = []promo{
	{name: "First-Time Customer", percent: 0.15, minAmount: 25, code: "WELCOME15"},
	{name: "Walmart+ Member Discount", percent: 0.10, minAmount: 30, code: "PLUS10"},
	{name: "Summer Sale", flat: 8, minAmount: 40, code: "SUMMER8"},
	{name: "Buy Now Special", percent: 0.20, minAmount: 20, code: "BUYNOW20", directOnly: true},
	{name: "Cart Saver", flat: 5, minAmount: 35, code: "CART5"},
}

const buyNowSpecial = "Buy Now Special"

// Standard is the sentinel returned when no promotion qualifies.
var Standard = domain.Discount{Name: "Standard Pricing", Amount: 0, Code: "NONE"}

func (p promo) resolve(amount float64) domain.Discount {
	value := p.flat
	if p.percent > 0 {
		value = p.percent * amount
	}
	if value > amount {
		value = amount
	}
	return domain.Discount{
		Name:      p.name,
		Amount:    value,
		MinAmount: p.minAmount,
		Code:      p.code,
	}
}

// Best returns the applicable promotion with the greatest savings. Rules:
//   - eligibility requires minAmount <= amount
//   - direct-only promos are excluded from cart checkouts
//   - a direct purchase with "Buy Now Special" eligible selects it
//     unconditionally, even when another promo would save more
//   - ties keep the first entry in table order
//   - nothing eligible yields Standard
func Best(amount float64, purchase domain.PurchaseType) domain.Discount {
	var eligible []promo
	for _, p := range table {
		if amount < p.minAmount {
			continue
		}
		if p.directOnly && purchase != domain.PurchaseDirect {
			continue
		}
		eligible = append(eligible, p)
	}

	if purchase == domain.PurchaseDirect {
		for _, p := range eligible {
			if p.name == buyNowSpecial {
				return p.resolve(amount)
			}
		}
	}

	best := Standard
	for _, p := range eligible {
		if d := p.resolve(amount); d.Amount > best.Amount {
			best = d
		}
	}
	return best
}

// AdditionalOffers lists non-exclusive informational promotions: three
// evergreen entries plus amount-gated extras, capped at three after the
// availability filter.
func AdditionalOffers(amount float64) []domain.Offer {
	offers := []domain.Offer{
		{
			Name:        "Walmart+ Free Trial",
			Description: "30 days free shipping + member prices",
			Emoji:       "⭐",
			Savings:     "Save $98/year",
			Available:   true,
		},
		{
			Name:        "Price Match Guarantee",
			Description: "We'll match any competitor's price",
			Emoji:       "🎯",
			Savings:     "Best price guaranteed",
			Available:   true,
		},
		{
			Name:        "Extended Warranty",
			Description: "2-year protection plan available",
			Emoji:       "🛡️",
			Savings:     "Starting at $4.99",
			Available:   true,
		},
	}

	if amount >= 50 {
		offers = append(offers, domain.Offer{
			Name:        "Buy 2 Get 1 Free",
			Description: "On select similar items",
			Emoji:       "🎁",
			Savings:     "Up to 33% off",
			Available:   true,
		})
	}
	if amount >= 30 {
		offers = append(offers, domain.Offer{
			Name:        "Free Gift Wrapping",
			Description: "Perfect for birthdays & gifts",
			Emoji:       "🎀",
			Savings:     "$4.99 value",
			Available:   true,
		})
	}

	available := offers[:0]
	for _, o := range offers {
		if o.Available {
			available = append(available, o)
		}
	}
	if len(available) > 3 {
		available = available[:3]
	}
	return available
}
