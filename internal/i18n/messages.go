// Package i18n holds the storefront text bundles and language negotiation.
package i18n

import "github.com/QuantumCastro/L-Artisan/internal/domain"

// Messages is the complete text bundle of one language. Every bundle has
// the same shape; fields ending in a format verb are templates rendered by
// the helper methods.
type Messages struct {
	Lang       domain.Language    `json:"lang"`
	Brand      string             `json:"brand"`
	Nav        NavMessages        `json:"nav"`
	Hero       HeroMessages       `json:"hero"`
	Collection CollectionMessages `json:"collection"`
	Search     SearchMessages     `json:"search"`
	Filter     FilterMessages     `json:"filter"`
	Product    ProductMessages    `json:"product"`
	Empty      EmptyMessages      `json:"collection_empty"`
	Footer     FooterMessages     `json:"footer"`
	Cart       CartMessages       `json:"cart"`
	Checkout   CheckoutMessages   `json:"checkout"`
	Bespoke    BespokeMessages    `json:"bespoke"`
}

type NavMessages struct {
	Language   string                     `json:"language"`
	SearchAria string                     `json:"search_aria"`
	CartAria   string                     `json:"cart_aria"`
	Categories map[domain.Category]string `json:"categories"`
}

type HeroMessages struct {
	Tag      string `json:"tag"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Scroll   string `json:"scroll"`
}

type CollectionMessages struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Count    string `json:"count"`
}

type SearchMessages struct {
	Placeholder string `json:"placeholder"`
	Semantic    string `json:"semantic"`
	Clear       string `json:"clear"`
	Results     string `json:"results"`
}

type FilterMessages struct {
	Heading   string `json:"heading"`
	SearchTag string `json:"search_tag"`
	Clear     string `json:"clear"`
	Showing   string `json:"showing"`
}

type ProductMessages struct {
	PriceNote        string `json:"price_note"`
	Size             string `json:"size"`
	SizeGuide        string `json:"size_guide"`
	SelectSizePrompt string `json:"select_size_prompt"`
	Add              string `json:"add"`
	Adding           string `json:"adding"`
}

type EmptyMessages struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	CTA   string `json:"cta"`
}

type FooterMessages struct {
	BrandCopy        string   `json:"brand_copy"`
	CustomerTitle    string   `json:"customer_title"`
	LegalTitle       string   `json:"legal_title"`
	NewsletterTitle  string   `json:"newsletter_title"`
	NewsletterCTA    string   `json:"newsletter_cta"`
	CustomerLinks    []string `json:"customer_links"`
	LegalLinks       []string `json:"legal_links"`
	NewsletterThanks string   `json:"newsletter_thanks"`
}

type CartMessages struct {
	Title    string `json:"title"`
	Empty    string `json:"empty"`
	OrderID  string `json:"order_id"`
	Shipping string `json:"shipping"`
	Remove   string `json:"remove"`
	Total    string `json:"total"`
	Checkout string `json:"checkout"`
	Secure   string `json:"secure"`
}

type CheckoutMessages struct {
	Title          string `json:"title"`
	Secure         string `json:"secure"`
	Back           string `json:"back"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Card           string `json:"card"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	Address        string `json:"address"`
	Summary        string `json:"summary"`
	Note           string `json:"note"`
	Confirm        string `json:"confirm"`
	Processing     string `json:"processing"`
	SuccessTitle   string `json:"success_title"`
	SuccessCaption string `json:"success_caption"`
}

type BespokeMessages struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}
