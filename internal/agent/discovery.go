package agent

import (
	"fmt"
	"strings"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/extract"
	"github.com/sparkyshop/sparky/internal/recommend"
	"github.com/sparkyshop/sparky/internal/session"
)

var discoveryTips = []string{
	"💡 Click any product to **view details**",
	"🛒 Say 'add [product name] to cart' to add items",
	"📋 Ask 'tell me more about [product]' for reviews & specs",
	"🔄 Say 'show me more options' for additional products",
}

// discovery runs the requirement extractor and scorer, or the
// similar-products variant when the user asks for "similar" and a product is
// selected. Results land in CurrentProducts for follow-up references.
func (r *Router) discovery(sc *session.Context, message string) domain.Response {
	msg := strings.ToLower(message)

	if strings.Contains(msg, "similar") && sc.SelectedProduct != nil {
		return r.similarProducts(sc)
	}

	req := extract.Requirements(message)
	sc.Requirements = req

	matches := recommend.Filter(r.catalog.All(), req)
	sc.CurrentProducts = matches

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 **Product Discovery Agent activated!**\n\n")
	fmt.Fprintf(&b, "I found **%d matches** for you:\n", len(matches))
	if req.HasBudget() {
		fmt.Fprintf(&b, "\n**💰 Budget:** Under $%d", req.Budget)
	}
	if req.HasAge() {
		fmt.Fprintf(&b, "\n**🎂 Age:** %d years old", req.Age)
	}
	if req.Occasion != domain.OccasionNone {
		fmt.Fprintf(&b, "\n**🎉 Occasion:** %s", req.Occasion)
	}
	b.WriteString("\n\nHere are my **top recommendations**:")

	return domain.Response{
		Agent:           domain.AgentDiscovery,
		Message:         b.String(),
		Products:        recommend.Top(matches, topRecommendations),
		Requirements:    &req,
		Actions:         []string{"view_details", "add_to_cart", "see_more_options"},
		InteractionTips: discoveryTips,
		NextStep:        "product_interaction",
	}
}

func (r *Router) similarProducts(sc *session.Context) domain.Response {
	selected := *sc.SelectedProduct
	similar := recommend.Similar(r.catalog.All(), selected)
	sc.CurrentProducts = similar

	msg := fmt.Sprintf(
		"🔍 **Product Discovery Agent - Similar Products**\n\n"+
			"Found **%d similar products** in the **%s** category.\n\n"+
			"Here are products similar to %q:",
		len(similar), selected.Category, selected.Name)

	return domain.Response{
		Agent:    domain.AgentDiscovery,
		Message:  msg,
		Products: recommend.Top(similar, topRecommendations),
		Actions:  []string{"view_details", "add_to_cart", "compare_products"},
		InteractionTips: []string{
			"💡 Click any product to **view details**",
			"🛒 Say 'add [product name] to cart' to add items",
			"⚖️ Say 'compare products' to see differences",
			"🔄 Say 'show me more options' for additional products",
		},
		NextStep: "product_interaction",
	}
}
