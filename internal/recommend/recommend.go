// Package recommend narrows and ranks catalogue entries against a
// requirement profile. Each filter stage strictly narrows; ranking is a
// stable sort so catalogue order breaks score ties.
package recommend

import (
	"sort"

	"github.com/sparkyshop/sparky/internal/domain"
)

const (
	ratingWeight = 0.7
	budgetWeight = 0.3

	childAgeLimit = 12
	toysCategory  = "Toys"
)

var (
	childTags    = []string{"game", "toy", "fun"}
	birthdayTags = []string{"fun", "party"}
	bbqTags      = []string{"grilling", "bbq", "outdoor"}
)

// Score ranks a product for a profile: 0.7 * rating plus a budget-fit term.
// With a budget set the fit is (budget - price) / budget; without one the
// budget term is a flat 0.3 so rating alone decides.
func Score(p domain.Product, req domain.RequirementProfile) float64 {
	score := ratingWeight * p.Rating
	if req.HasBudget() {
		budget := float64(req.Budget)
		score += budgetWeight * ((budget - p.Price) / budget)
	} else {
		score += budgetWeight
	}
	return score
}

// Filter applies the narrowing stages (budget, age, occasion) and returns the
// survivors ranked by descending score. The sort is stable: products with
// identical scores keep their catalogue order.
func Filter(products []domain.Product, req domain.RequirementProfile) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if req.HasBudget() && p.Price > float64(req.Budget) {
			continue
		}
		if req.HasAge() && req.Age <= childAgeLimit && !childSuitable(p) {
			continue
		}
		if !occasionSuitable(p, req.Occasion) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return Score(filtered[i], req) > Score(filtered[j], req)
	})
	return filtered
}

// Similar returns products sharing the selected product's category,
// excluding the product itself. Catalogue order is preserved; the scoring
// pipeline is bypassed.
func Similar(products []domain.Product, selected domain.Product) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.Category == selected.Category && p.ID != selected.ID {
			out = append(out, p)
		}
	}
	return out
}

// Top truncates ranked results to n, tolerating short inputs.
func Top(products []domain.Product, n int) []domain.Product {
	if len(products) <= n {
		return products
	}
	return products[:n]
}

func childSuitable(p domain.Product) bool {
	if p.Category == toysCategory {
		return true
	}
	return hasAnyTag(p, childTags)
}

func occasionSuitable(p domain.Product, occasion domain.Occasion) bool {
	switch occasion {
	case domain.OccasionBirthday:
		return p.Category == toysCategory || hasAnyTag(p, birthdayTags)
	case domain.OccasionBBQ:
		return p.Category == "Outdoor" || hasAnyTag(p, bbqTags)
	default:
		return true
	}
}

func hasAnyTag(p domain.Product, tags []string) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}
