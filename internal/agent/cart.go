package agent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/session"
)

var addToCartRe = regexp.MustCompile(`add (.+?) to (?:my )?cart`)

// cart renders the cart, or mutates it when the message is an
// "add <product name> to cart" request.
func (r *Router) cart(sc *session.Context, message string) domain.Response {
	msg := strings.ToLower(message)

	if m := addToCartRe.FindStringSubmatch(msg); m != nil {
		return r.addByName(sc, strings.TrimSpace(m[1]))
	}

	return r.cartView(sc)
}

func (r *Router) cartView(sc *session.Context) domain.Response {
	var b strings.Builder
	b.WriteString("🛒 **Cart Management Agent ready!**\n\nYour current cart:\n")
	if sc.CartEmpty() {
		b.WriteString("• Empty cart\n")
	} else {
		for _, line := range sc.Cart {
			fmt.Fprintf(&b, "• %s - $%.2f x%d\n", line.Product.Name, line.Product.Price, line.Quantity)
		}
	}
	fmt.Fprintf(&b, "\n**Total: $%.2f**\n\nWhat would you like to do next?", sc.CartTotal())

	return domain.Response{
		Agent:    domain.AgentCart,
		Message:  b.String(),
		Cart:     sc.Cart,
		Total:    sc.CartTotal(),
		Actions:  []string{"modify_cart", "proceed_to_checkout", "continue_shopping"},
		NextStep: "cart_action",
	}
}

func (r *Router) addByName(sc *session.Context, name string) domain.Response {
	product, ok := r.resolveProduct(sc, name)
	if !ok {
		return domain.Response{
			Agent: domain.AgentCart,
			Message: fmt.Sprintf("🛒 I couldn't find %q in the catalogue. "+
				"Could you tell me the exact product name, or ask me to search for something first?", name),
			Actions:  []string{"search_products", "continue_shopping"},
			NextStep: "product_search",
		}
	}

	sc.AddToCart(product, 1)
	return domain.Response{
		Agent:    domain.AgentCart,
		Message:  fmt.Sprintf("✅ Added %q to your cart! Total items: %d", product.Name, len(sc.Cart)),
		Cart:     sc.Cart,
		Total:    sc.CartTotal(),
		Actions:  []string{"proceed_to_checkout", "continue_shopping"},
		NextStep: "cart_action",
	}
}

// resolveProduct matches a user-typed name against the presented products
// first, then the whole catalogue. Substring matching wins; fuzzy matching
// is the fallback for partial names like "lego set".
func (r *Router) resolveProduct(sc *session.Context, name string) (domain.Product, bool) {
	name = strings.ToLower(name)

	for _, pool := range [][]domain.Product{sc.CurrentProducts, r.catalog.All()} {
		for _, p := range pool {
			if strings.Contains(strings.ToLower(p.Name), name) {
				return p, true
			}
		}
	}

	all := r.catalog.All()
	matches := fuzzy.FindFrom(name, productSource(all))
	if len(matches) == 0 {
		return domain.Product{}, false
	}
	return all[matches[0].Index], true
}

type productSource []domain.Product

func (s productSource) String(i int) string { return strings.ToLower(s[i].Name) }
func (s productSource) Len() int            { return len(s) }
