package domain

import (
	"strings"
	"time"
	"unicode"
)

// CheckoutStatus represents the state of a checkout.
type CheckoutStatus string

const (
	CheckoutIdle       CheckoutStatus = "idle"
	CheckoutSubmitting CheckoutStatus = "submitting"
	CheckoutDone       CheckoutStatus = "done"
)

// IsTerminal returns true if no further transition is possible.
func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutDone
}

const (
	maxCardDigits   = 16
	maxExpiryChars  = 5
	maxCVVDigits    = 4
	minCardDigits   = 12
	minExpiryChars  = 4
	minCVVDigits    = 3
	referencePrefix = "AF-"
)

// CheckoutForm holds the raw text a shopper typed.
type CheckoutForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Card    string `json:"card"`
	Expiry  string `json:"expiry"`
	CVV     string `json:"cvv"`
	Address string `json:"address"`
}

// CheckoutFormPatch carries a partial form update; nil fields are left alone.
type CheckoutFormPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Card    *string `json:"card,omitempty"`
	Expiry  *string `json:"expiry,omitempty"`
	CVV     *string `json:"cvv,omitempty"`
	Address *string `json:"address,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p CheckoutFormPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Card == nil &&
		p.Expiry == nil && p.CVV == nil && p.Address == nil
}

// Apply copies every non-nil patch field onto f. Payment fields are stored
// already sanitized so raw card text never reaches the session store.
func (f *CheckoutForm) Apply(p CheckoutFormPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&f.Name, p.Name)
	set(&f.Email, p.Email)
	set(&f.Card, p.Card)
	set(&f.Expiry, p.Expiry)
	set(&f.CVV, p.CVV)
	set(&f.Address, p.Address)

	f.Card = f.CleanCard()
	f.Expiry = f.CleanExpiry()
	f.CVV = f.CleanCVV()
}

// CleanCard keeps the digits of the card number, at most 16.
func (f CheckoutForm) CleanCard() string {
	return keep(f.Card, unicode.IsDigit, maxCardDigits)
}

// CleanExpiry keeps digits and slashes of the expiry, at most 5 characters.
func (f CheckoutForm) CleanExpiry() string {
	return keep(f.Expiry, func(r rune) bool { return unicode.IsDigit(r) || r == '/' }, maxExpiryChars)
}

// CleanCVV keeps the digits of the security code, at most 4.
func (f CheckoutForm) CleanCVV() string {
	return keep(f.CVV, unicode.IsDigit, maxCVVDigits)
}

// DisplayCard groups the clean card digits in blocks of four.
func (f CheckoutForm) DisplayCard() string {
	digits := f.CleanCard()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CanSubmit reports whether every required field is present and long enough.
func (f CheckoutForm) CanSubmit() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		len(f.CleanCard()) >= minCardDigits &&
		len(f.CleanExpiry()) >= minExpiryChars &&
		len(f.CleanCVV()) >= minCVVDigits &&
		strings.TrimSpace(f.Address) != ""
}

// wipeSensitive clears the payment fields.
func (f *CheckoutForm) wipeSensitive() {
	f.Card = ""
	f.Expiry = ""
	f.CVV = ""
}

// keep returns the first limit runes of s accepted by ok. Accepted runes
// are ASCII, so rune and byte counts agree.
func keep(s string, ok func(rune) bool, limit int) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == limit {
			break
		}
		if r > unicode.MaxASCII || !ok(r) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Receipt records a completed checkout.
type Receipt struct {
	Reference   string     `json:"reference"`
	CheckoutID  string     `json:"checkout_id"`
	Items       []CartItem `json:"items"`
	Total       int64      `json:"total"`
	Email       string     `json:"email"`
	CompletedAt time.Time  `json:"completed_at"`
}

// Checkout is a short-lived payment form moving idle -> submitting -> done.
type Checkout struct {
	ID          string         `json:"id"`
	Form        CheckoutForm   `json:"form"`
	Status      CheckoutStatus `json:"status"`
	OpenedAt    time.Time      `json:"opened_at"`
	SubmittedAt *time.Time     `json:"submitted_at,omitempty"`
	Items       []CartItem     `json:"items,omitempty"`
	Total       int64          `json:"total,omitempty"`
	Receipt     *Receipt       `json:"receipt,omitempty"`
}

// NewCheckout opens an idle checkout.
func NewCheckout(id string, now time.Time) *Checkout {
	return &Checkout{ID: id, Status: CheckoutIdle, OpenedAt: now}
}

// UpdateForm applies p while the checkout is idle. Edits in any other state
// are ignored and report false.
func (c *Checkout) UpdateForm(p CheckoutFormPatch) bool {
	if c.Status != CheckoutIdle {
		return false
	}
	c.Form.Apply(p)
	return true
}

// Submit moves an idle checkout with a complete form to submitting. It
// reports false when the checkout is not idle or the form is incomplete.
func (c *Checkout) Submit(now time.Time) bool {
	if c.Status != CheckoutIdle || !c.Form.CanSubmit() {
		return false
	}
	c.Status = CheckoutSubmitting
	c.SubmittedAt = &now
	return true
}

// Complete moves a submitting checkout to done, recording a receipt for
// items and wiping the payment fields.
func (c *Checkout) Complete(items []CartItem, total int64, now time.Time) (*Receipt, bool) {
	if c.Status != CheckoutSubmitting {
		return nil, false
	}

	c.Status = CheckoutDone
	c.Receipt = &Receipt{
		Reference:   ReceiptReference(c.ID),
		CheckoutID:  c.ID,
		Items:       items,
		Total:       total,
		Email:       strings.TrimSpace(c.Form.Email),
		CompletedAt: now,
	}
	c.Form.wipeSensitive()
	return c.Receipt, true
}

// ReceiptReference derives a short order reference from a uuid.
func ReceiptReference(id string) string {
	ref := strings.ReplaceAll(id, "-", "")
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return referencePrefix + strings.ToUpper(ref)
}
