// Package cart owns the line items of a single ordering session.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"pizzeria/internal/catalog"
	"pizzeria/internal/pricing"
)

var (
	ErrQuantityInvalid = errors.New("quantity must be at least 1")
	ErrUnknownSize     = errors.New("product has no such size")
	ErrCheckoutBusy    = errors.New("a checkout is already in progress for this cart")
)

// Key identifies one line: a product plus the chosen size, if any.
// At most one line per key exists at a time.
type Key struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
}

// Line is one cart entry. UnitPrice is the snapshot taken when the line was
// first created; later catalog price changes never touch it.
type Line struct {
	Key
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Engine holds the ordered line collection of one session. Every operation
// is atomic, so interleaved calls from the same session never observe a
// half-applied mutation in Totals or Count.
type Engine struct {
	mu    sync.Mutex
	lines []Line

	// checkout serializes order submission: one outstanding checkout per
	// session, a second attempt is rejected instead of queued.
	checkout sync.Mutex
	busy     bool
}

func NewEngine() *Engine { return &Engine{} }

// AddItem appends a line for the product (size price wins over base price
// when a size is chosen), or bumps the quantity of the existing line with
// the same key. The price snapshot of an existing line is left untouched.
func (e *Engine) AddItem(p *catalog.Product, size string, qty int) error {
	if qty < 1 {
		return ErrQuantityInvalid
	}
	unit := p.Price
	if size != "" {
		s, ok := p.SizeByName(size)
		if !ok {
			return ErrUnknownSize
		}
		unit = s.Price
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := Key{ProductID: p.ID, Size: size}
	for i := range e.lines {
		if e.lines[i].Key == key {
			e.lines[i].Quantity += qty
			return nil
		}
	}
	e.lines = append(e.lines, Line{
		Key:       key,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		UnitPrice: unit,
		Quantity:  qty,
	})
	return nil
}

// UpdateQuantity sets the line's quantity outright. A value of zero or less
// removes the line. Unknown keys are ignored so UI retries stay idempotent.
func (e *Engine) UpdateQuantity(key Key, qty int) {
	if qty <= 0 {
		e.RemoveItem(key)
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.lines {
		if e.lines[i].Key == key {
			e.lines[i].Quantity = qty
			return
		}
	}
}

// RemoveItem deletes the line with the given key; no-op when absent.
func (e *Engine) RemoveItem(key Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.lines {
		if e.lines[i].Key == key {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Line(nil), e.lines...)
}

// Totals prices the current lines.
func (e *Engine) Totals() pricing.Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	pl := make([]pricing.Line, len(e.lines))
	for i, l := range e.lines {
		pl[i] = pricing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity}
	}
	return pricing.Calculate(pl)
}

// Count is the summed quantity over all lines.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, l := range e.lines {
		n += l.Quantity
	}
	return n
}

// BeginCheckout marks the cart as submitting. It fails instead of blocking
// when a checkout is already in flight.
func (e *Engine) BeginCheckout() error {
	e.checkout.Lock()
	defer e.checkout.Unlock()
	if e.busy {
		return ErrCheckoutBusy
	}
	e.busy = true
	return nil
}

// EndCheckout releases the submission guard.
func (e *Engine) EndCheckout() {
	e.checkout.Lock()
	defer e.checkout.Unlock()
	e.busy = false
}
