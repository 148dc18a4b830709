package service

import (
	"strings"
	"time"

	"github.com/QuantumCastro/L-Artisan/internal/catalog"
	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/filter"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
)

// View is everything the presentation shell renders for a session. It is
// derived from the session and the catalog on every call.
type View struct {
	SessionID   string                    `json:"session_id"`
	Language    domain.Language           `json:"language"`
	Category    domain.Category           `json:"category"`
	Query       string                    `json:"query"`
	SearchOpen  bool                      `json:"search_open"`
	CartOpen    bool                      `json:"cart_open"`
	Products    []domain.LocalizedProduct `json:"products"`
	Summary     filter.Summary            `json:"summary"`
	Cart        CartView                  `json:"cart"`
	Checkout    *CheckoutView             `json:"checkout"`
	PendingAdds []PendingAddView          `json:"pending_adds"`
	LastReceipt *domain.Receipt           `json:"last_receipt,omitempty"`
	Text        TextView                  `json:"text"`
}

// CartView is the cart drawer content.
type CartView struct {
	Lines        []CartLineView `json:"lines"`
	Total        int64          `json:"total"`
	TotalDisplay string         `json:"total_display"`
	Count        int            `json:"count"`
	OrderID      string         `json:"order_id"`
}

// CartLineView is one cart line resolved to the session language. Index is
// the position to pass to RemoveFromCart.
type CartLineView struct {
	Index        int    `json:"index"`
	ProductID    int    `json:"product_id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Size         string `json:"size"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Image        string `json:"image"`
}

// CheckoutView is the checkout drawer content. Payment fields are shown
// sanitized; the security code is masked.
type CheckoutView struct {
	ID        string                `json:"id"`
	Status    domain.CheckoutStatus `json:"status"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Card      string                `json:"card"`
	Expiry    string                `json:"expiry"`
	CVV       string                `json:"cvv"`
	Address   string                `json:"address"`
	CanSubmit bool                  `json:"can_submit"`
	Receipt   *domain.Receipt       `json:"receipt,omitempty"`
}

// PendingAddView is an add-to-cart request still being "crafted".
type PendingAddView struct {
	Ticket      string    `json:"ticket"`
	ProductID   int       `json:"product_id"`
	Size        string    `json:"size"`
	RequestedAt time.Time `json:"requested_at"`
}

// TextView carries the parameterised bundle lines for the current state.
type TextView struct {
	CategoryLabel   string `json:"category_label"`
	CollectionCount string `json:"collection_count"`
	Showing         string `json:"showing"`
	SearchResults   string `json:"search_results"`
	SearchTag       string `json:"search_tag,omitempty"`
}

// BuildView derives the view of s over cat.
func BuildView(s *domain.Session, cat *catalog.Catalog) View {
	msgs := i18n.For(s.Language)
	res := filter.Apply(cat.All(), s.ActiveCategory, s.Query)

	products := make([]domain.LocalizedProduct, len(res.Products))
	for i, p := range res.Products {
		products[i] = p.Localize(s.Language)
	}

	v := View{
		SessionID:   s.ID,
		Language:    s.Language,
		Category:    s.ActiveCategory,
		Query:       s.Query,
		SearchOpen:  s.SearchOpen,
		CartOpen:    s.CartOpen,
		Products:    products,
		Summary:     res.Summary,
		Cart:        buildCartView(s, msgs),
		Checkout:    buildCheckoutView(s.Checkout),
		PendingAdds: make([]PendingAddView, len(s.PendingAdds)),
		LastReceipt: s.LastReceipt,
		Text: TextView{
			CategoryLabel:   msgs.CategoryLabel(s.ActiveCategory),
			CollectionCount: msgs.CollectionCount(cat.Len()),
			Showing:         msgs.Showing(res.Summary.Visible, res.Summary.Base),
			SearchResults:   msgs.SearchResults(res.Summary.Visible, s.ActiveCategory),
		},
	}
	if q := strings.TrimSpace(s.Query); q != "" {
		v.Text.SearchTag = msgs.SearchTag(q)
	}
	for i, p := range s.PendingAdds {
		v.PendingAdds[i] = PendingAddView{
			Ticket:      p.Ticket,
			ProductID:   p.ProductID,
			Size:        p.Size,
			RequestedAt: p.RequestedAt,
		}
	}
	return v
}

func buildCartView(s *domain.Session, msgs i18n.Messages) CartView {
	lines := make([]CartLineView, len(s.Cart.Items))
	for i, item := range s.Cart.Items {
		lines[i] = CartLineView{
			Index:        i,
			ProductID:    item.Product.ID,
			Slug:         item.Product.Slug,
			Name:         item.Product.Name.In(s.Language),
			Size:         item.SelectedSize,
			Price:        item.Product.Price,
			PriceDisplay: msgs.FormatPrice(item.Product.Price),
			Image:        item.Product.Image,
		}
	}

	total := s.Cart.Total()
	return CartView{
		Lines:        lines,
		Total:        total,
		TotalDisplay: msgs.FormatPrice(total),
		Count:        s.Cart.Count(),
		OrderID:      msgs.OrderID(domain.ReceiptReference(s.ID)),
	}
}

func buildCheckoutView(c *domain.Checkout) *CheckoutView {
	if c == nil {
		return nil
	}
	return &CheckoutView{
		ID:        c.ID,
		Status:    c.Status,
		Name:      c.Form.Name,
		Email:     c.Form.Email,
		Card:      c.Form.DisplayCard(),
		Expiry:    c.Form.CleanExpiry(),
		CVV:       strings.Repeat("•", len(c.Form.CleanCVV())),
		Address:   c.Form.Address,
		CanSubmit: c.Status == domain.CheckoutIdle && c.Form.CanSubmit(),
		Receipt:   c.Receipt,
	}
}
