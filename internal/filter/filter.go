// Package filter derives the visible product list from a category and a
// free-text query.
package filter

import (
	"strings"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/pkg/slug"
)

// Normalize lower-cases q and strips diacritics.
func Normalize(q string) string {
	return slug.Fold(q)
}

// ByCategory keeps products in category, preserving order. CategoryAll
// passes everything through.
func ByCategory(products []domain.Product, category domain.Category) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category == domain.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether either localized name of p contains the already
// normalized query.
func Matches(p domain.Product, normalized string) bool {
	for _, name := range p.Name.All() {
		if strings.Contains(Normalize(name), normalized) {
			return true
		}
	}
	return false
}

// Visible returns the products shown for category and query, in catalog
// order. A blank query skips text matching. Matching always checks both
// languages, whatever the display language.
func Visible(products []domain.Product, category domain.Category, query string) []domain.Product {
	base := ByCategory(products, category)

	q := Normalize(query)
	if strings.TrimSpace(q) == "" {
		return base
	}

	out := make([]domain.Product, 0, len(base))
	for _, p := range base {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Summary describes a filtered view.
type Summary struct {
	Category domain.Category `json:"category"`
	Query    string          `json:"query"`
	Visible  int             `json:"visible"`
	Base     int             `json:"base"`
	Empty    bool            `json:"empty"`
	Filtered bool            `json:"filtered"`
}

// Result is a filtered view together with its summary.
type Result struct {
	Products []domain.Product
	Summary  Summary
}

// Apply runs Visible and summarises it. Base counts the category before the
// text filter.
func Apply(products []domain.Product, category domain.Category, query string) Result {
	visible := Visible(products, category, query)
	base := len(ByCategory(products, category))

	return Result{
		Products: visible,
		Summary: Summary{
			Category: category,
			Query:    query,
			Visible:  len(visible),
			Base:     base,
			Empty:    len(visible) == 0,
			Filtered: category != domain.CategoryAll || strings.TrimSpace(query) != "",
		},
	}
}
