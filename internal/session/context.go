// Package session owns the per-conversation shopping state. A Context is
// exclusively owned by one conversation and is mutated by exactly one turn at
// a time, so it carries no locking of its own; the Manager isolates
// concurrent conversations from each other.
package session

import (
	"github.com/google/uuid"

	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/intent"
)

// Context is the mutable state of one conversation.
type Context struct {
	ID              string
	Cart            []domain.CartLine
	SelectedProduct *domain.Product
	Requirements    domain.RequirementProfile
	CurrentProducts []domain.Product
	Conversation    []domain.Message
	LastIntent      intent.Intent
}

func NewContext() *Context {
	return &Context{ID: uuid.NewString()}
}

// AddToCart merges a product into the cart. A product already present has
// its quantity incremented; insertion order of lines is preserved for
// display. Quantities below one count as one.
func (c *Context) AddToCart(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Cart {
		if c.Cart[i].Product.ID == p.ID {
			c.Cart[i].Quantity += quantity
			return
		}
	}
	c.Cart = append(c.Cart, domain.CartLine{Product: p, Quantity: quantity})
}

// RemoveFromCart deletes the line with the given product id. Removing an
// absent id is a no-op.
func (c *Context) RemoveFromCart(productID int64) {
	for i := range c.Cart {
		if c.Cart[i].Product.ID == productID {
			c.Cart = append(c.Cart[:i], c.Cart[i+1:]...)
			return
		}
	}
}

func (c *Context) CartTotal() float64 {
	var total float64
	for _, line := range c.Cart {
		total += line.Subtotal()
	}
	return total
}

func (c *Context) CartEmpty() bool {
	return len(c.Cart) == 0
}

// AppendUser and AppendAssistant push write-once entries onto the
// conversation log. Entries are never mutated or removed.
func (c *Context) AppendUser(content string) {
	c.Conversation = append(c.Conversation, domain.Message{Role: domain.RoleUser, Content: content})
}

func (c *Context) AppendAssistant(content string) {
	c.Conversation = append(c.Conversation, domain.Message{Role: domain.RoleAssistant, Content: content})
}

// ClearPurchase resets cart and selection after an order completes. The
// conversation log and requirement profile survive.
func (c *Context) ClearPurchase() {
	c.Cart = nil
	c.SelectedProduct = nil
}
