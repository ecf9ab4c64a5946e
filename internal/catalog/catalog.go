// Package catalog is the read-only query surface over the product data
// source. The catalogue is loaded once and never mutated; all query methods
// return copies so callers cannot reach the backing slice.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sparkyshop/sparky/internal/domain"
)

//go:embed products.json
var productsJSON []byte

var (
	ErrEmptyCatalog = errors.New("catalog: no products")
	ErrDuplicateID  = errors.New("catalog: duplicate product id")
)

// Catalog holds the ordered product list. Order is significant: it is the
// tie-breaker for ranking and the display order for similar-product results.
type Catalog struct {
	products []domain.Product
	byID     map[int64]int
}

// New builds a catalog from an ordered product list, validating the
// price <= original price invariant and ID uniqueness.
func New(products []domain.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if p.Price > p.OriginalPrice {
			return nil, fmt.Errorf("catalog: product %d priced above original price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("catalog: product %d rating out of range", p.ID)
		}
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Load parses the embedded product data.
func Load() (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("catalog: parse products: %w", err)
	}
	return New(products)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns the full catalogue in source order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id int64) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) ByCategory(category string) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByTag(tag string) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}
