// Package intent classifies raw utterances into a fixed set of intent
// categories. Classification is deterministic, stateless and
// case-insensitive.
package intent

import "strings"

type Intent string

const (
	PaymentProcessing Intent = "payment_processing"
	CartManagement    Intent = "cart_management"
	ProductDetails    Intent = "product_details"
	ProductDiscovery  Intent = "product_discovery"
	GeneralQuestion   Intent = "general_question"
	Coordinator       Intent = "coordinator"
)

// Rule matches an utterance when any of its substrings is present. Rules are
// evaluated in declaration order and the first hit wins.
type Rule struct {
	Intent     Intent
	Substrings []string
}

// rules is an ordering contract, not an implementation detail. Categories
// overlap lexically: payment must pre-empt discovery (both match "buy"),
// cart and details must pre-empt discovery phrasings like "gift"/"need".
var rules = []Rule{
	{PaymentProcessing, []string{"buy now", "buy it now", "checkout", "pay", "order", "purchase"}},
	{CartManagement, []string{"cart", "add", "remove", "total"}},
	{ProductDetails, []string{
		"details", "tell me more", "rating", "review", "specs", "features",
		"questions", "age", "size", "dimensions", "shipping", "delivery",
		"return", "warranty",
	}},
	{ProductDiscovery, []string{"gift", "buy", "need", "looking for", "recommend", "plan", "bbq", "similar"}},
	{GeneralQuestion, []string{"hello", "hi", "help", "what can you do"}},
}

// Rules returns a copy of the prioritized rule list so the ordering contract
// can be asserted in isolation from routing.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify maps an utterance to an intent. "Buy <anything> now" outranks
// every substring rule so long utterances like "buy the lego set now" still
// reach payment.
func Classify(message string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	words := strings.Fields(msg)
	if len(words) > 0 && words[0] == "buy" && words[len(words)-1] == "now" {
		return PaymentProcessing
	}

	for _, r := range rules {
		for _, s := range r.Substrings {
			if strings.Contains(msg, s) {
				return r.Intent
			}
		}
	}
	return Coordinator
}

// IsBuyNow reports whether the utterance is an explicit buy-now request.
// The payment agent uses it to pick the direct-purchase branch.
func IsBuyNow(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	words := strings.Fields(msg)
	if len(words) > 0 && words[0] == "buy" && words[len(words)-1] == "now" {
		return true
	}
	return strings.Contains(msg, "buy now") || strings.Contains(msg, "buy it now")
}
