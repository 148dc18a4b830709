package domain

import "time"

// PendingAdd is an accepted add-to-cart request waiting for its delay to
// elapse. Item is the product snapshot taken when the request was made.
type PendingAdd struct {
	Ticket      string    `json:"ticket"`
	ProductID   int       `json:"product_id"`
	Size        string    `json:"size"`
	Item        CartItem  `json:"item"`
	RequestedAt time.Time `json:"requested_at"`
}

// Session is the state of one shopper's storefront.
type Session struct {
	ID             string       `json:"id"`
	Language       Language     `json:"language"`
	ActiveCategory Category     `json:"active_category"`
	Query          string       `json:"query"`
	SearchOpen     bool         `json:"search_open"`
	CartOpen       bool         `json:"cart_open"`
	Cart           Cart         `json:"cart"`
	Checkout       *Checkout    `json:"checkout,omitempty"`
	PendingAdds    []PendingAdd `json:"pending_adds,omitempty"`
	LastReceipt    *Receipt     `json:"last_receipt,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewSession creates a session with an empty cart and no filters.
func NewSession(id string, lang Language, now time.Time) *Session {
	if !lang.IsSupported() {
		lang = DefaultLanguage
	}
	return &Session{
		ID:             id,
		Language:       lang,
		ActiveCategory: CategoryAll,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Touch records a mutation time.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// SelectLanguage switches the display language; unsupported codes select
// DefaultLanguage.
func (s *Session) SelectLanguage(code string) Language {
	s.Language = ParseLanguage(code)
	return s.Language
}

// SelectCategory sets the active category; unknown values select CategoryAll.
func (s *Session) SelectCategory(category string) Category {
	s.ActiveCategory = ParseCategory(category)
	return s.ActiveCategory
}

// SetQuery stores the raw search text.
func (s *Session) SetQuery(q string) {
	s.Query = q
}

// SetSearchOpen opens or closes the search panel.
func (s *Session) SetSearchOpen(open bool) {
	s.SearchOpen = open
}

// ResetFilters restores the full collection view.
func (s *Session) ResetFilters() {
	s.ActiveCategory = CategoryAll
	s.Query = ""
	s.SearchOpen = false
}

// SetCartOpen opens or closes the cart drawer.
func (s *Session) SetCartOpen(open bool) {
	s.CartOpen = open
}

// RequestAdd validates the size for p and queues a pending add under ticket.
// It reports false, queuing nothing, when the size is missing or unknown.
// Requests made while the cart is frozen are refused the same way.
func (s *Session) RequestAdd(p Product, size, ticket string, now time.Time) (PendingAdd, bool) {
	if s.CartFrozen() {
		return PendingAdd{}, false
	}
	resolved, ok := p.ResolveSize(size)
	if !ok {
		return PendingAdd{}, false
	}

	pending := PendingAdd{
		Ticket:      ticket,
		ProductID:   p.ID,
		Size:        resolved,
		Item:        NewCartItem(p, resolved),
		RequestedAt: now,
	}
	s.PendingAdds = append(s.PendingAdds, pending)
	return pending, true
}

// ApplyAdd appends the line queued under ticket, together with every add
// queued before it, and opens the cart drawer. Lines land in request order.
// Unknown tickets return nil and change nothing.
func (s *Session) ApplyAdd(ticket string) []PendingAdd {
	idx := -1
	for i, p := range s.PendingAdds {
		if p.Ticket == ticket {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	applied := append([]PendingAdd(nil), s.PendingAdds[:idx+1]...)
	s.PendingAdds = append([]PendingAdd(nil), s.PendingAdds[idx+1:]...)
	for _, p := range applied {
		s.Cart.Append(p.Item)
	}
	s.CartOpen = true
	return applied
}

// DropPendingAdds discards every queued add whose ticket keep rejects and
// returns the dropped tickets in order.
func (s *Session) DropPendingAdds(keep func(ticket string) bool) []string {
	var dropped []string
	kept := s.PendingAdds[:0]
	for _, p := range s.PendingAdds {
		if keep(p.Ticket) {
			kept = append(kept, p)
			continue
		}
		dropped = append(dropped, p.Ticket)
	}
	if len(kept) == 0 {
		kept = nil
	}
	s.PendingAdds = kept
	return dropped
}

// CartFrozen reports whether a submitted checkout holds the cart. While it
// does, lines can be neither requested nor removed.
func (s *Session) CartFrozen() bool {
	return s.Checkout != nil && s.Checkout.Status == CheckoutSubmitting
}

// RemoveFromCart removes the line at index; out-of-range indexes and a
// frozen cart are a no-op.
func (s *Session) RemoveFromCart(index int) bool {
	if s.CartFrozen() {
		return false
	}
	return s.Cart.RemoveAt(index)
}

// OpenCheckout opens a checkout with checkoutID. With an empty cart the cart
// drawer opens instead and it reports false. An open, unfinished checkout is
// kept as is.
func (s *Session) OpenCheckout(checkoutID string, now time.Time) bool {
	if s.Cart.IsEmpty() {
		s.CartOpen = true
		return false
	}

	s.CartOpen = false
	if s.Checkout == nil || s.Checkout.Status.IsTerminal() {
		s.Checkout = NewCheckout(checkoutID, now)
	}
	return true
}

// CloseCheckout discards the open checkout and returns it, or nil when none
// was open. The cart is left untouched.
func (s *Session) CloseCheckout() *Checkout {
	c := s.Checkout
	s.Checkout = nil
	return c
}

// BackToCart closes the checkout and re-opens the cart drawer.
func (s *Session) BackToCart() *Checkout {
	c := s.CloseCheckout()
	s.CartOpen = true
	return c
}

// SubmitCheckout submits the open checkout and records the cart lines and
// total it is paying for. It reports false when there is no idle checkout
// or its form is incomplete.
func (s *Session) SubmitCheckout(now time.Time) bool {
	c := s.Checkout
	if c == nil || !c.Submit(now) {
		return false
	}
	c.Items = s.Cart.Lines()
	c.Total = s.Cart.Total()
	return true
}

// CompleteCheckout finishes the checkout identified by checkoutID. The
// receipt is built from the lines recorded at submission, and those lines
// leave the cart together. Adds queued before submission that landed while
// it was pending stay in the cart. A closed, replaced or not submitting
// checkout reports false and changes nothing.
func (s *Session) CompleteCheckout(checkoutID string, now time.Time) (*Receipt, bool) {
	c := s.Checkout
	if c == nil || c.ID != checkoutID {
		return nil, false
	}

	paid := len(c.Items)
	receipt, ok := c.Complete(c.Items, c.Total, now)
	if !ok {
		return nil, false
	}
	c.Items = nil
	c.Total = 0
	s.Cart.DropFront(paid)
	s.LastReceipt = receipt
	return receipt, true
}
