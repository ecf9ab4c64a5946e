package domain

// PurchaseType distinguishes a direct buy-now purchase from a cart checkout.
// The discount engine treats the two paths differently.
type PurchaseType string

const (
	PurchaseCartCheckout PurchaseType = "cart_checkout"
	PurchaseDirect       PurchaseType = "direct_purchase"
)

// Discount is a resolved promotion. Amount is an absolute currency value,
// already computed from the promotion's percentage or fixed formula, and
// never exceeds the amount it was computed against.
type Discount struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	MinAmount float64 `json:"min_amount"`
	Code      string  `json:"code"`
}

// Offer is an informational, non-exclusive promotion shown alongside a
// checkout summary. Available exists for future gating; all offers are
// currently available.
type Offer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Savings     string `json:"savings"`
	Available   bool   `json:"available"`
}
