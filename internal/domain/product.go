package domain

import (
	"strings"

	"github.com/QuantumCastro/L-Artisan/pkg/slug"
)

// Category is a coarse product grouping. CategoryAll is a filter-only value
// that no product carries.
type Category string

const (
	CategoryAll         Category = "all"
	CategorySuits       Category = "suits"
	CategoryShirts      Category = "shirts"
	CategoryCoats       Category = "coats"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// Categories lists every category in navigation order, starting with CategoryAll.
var Categories = []Category{
	CategoryAll,
	CategorySuits,
	CategoryShirts,
	CategoryCoats,
	CategoryShoes,
	CategoryAccessories,
}

// ParseCategory normalises s and falls back to CategoryAll for unknown values.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return CategoryAll
	}
	return c
}

// IsValid reports whether c is one of Categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// sizeSentinels are folded size labels meaning "one size fits all".
var sizeSentinels = map[string]bool{"unica": true, "unique": true}

// Product is an immutable catalog entry. Prices are whole currency units.
type Product struct {
	ID          int           `json:"id"`
	Slug        string        `json:"slug"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       int64         `json:"price"`
	Category    Category      `json:"category"`
	Image       string        `json:"image"`
	Sizes       []string      `json:"sizes"`
}

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	return p
}

// NeedsSizeChoice reports whether a shopper must pick a size before adding p.
func (p Product) NeedsSizeChoice() bool {
	return len(p.Sizes) > 1 && !sizeSentinels[slug.Fold(strings.TrimSpace(p.Sizes[0]))]
}

// DefaultSize returns the size used when no choice is required.
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// ResolveSize maps a requested size onto one of the product's labels. An
// empty request resolves to DefaultSize unless a choice is required. Matching
// ignores case and diacritics and returns the catalog spelling.
func (p Product) ResolveSize(size string) (string, bool) {
	size = strings.TrimSpace(size)
	if size == "" {
		if p.NeedsSizeChoice() || len(p.Sizes) == 0 {
			return "", false
		}
		return p.DefaultSize(), true
	}

	want := slug.Fold(size)
	for _, s := range p.Sizes {
		if slug.Fold(s) == want {
			return s, true
		}
	}
	return "", false
}

// LocalizedProduct is a product resolved to a single display language.
type LocalizedProduct struct {
	ID              int      `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           int64    `json:"price"`
	Category        Category `json:"category"`
	Image           string   `json:"image"`
	Sizes           []string `json:"sizes"`
	NeedsSizeChoice bool     `json:"needs_size_choice"`
}

// Localize resolves p's text fields to lang.
func (p Product) Localize(lang Language) LocalizedProduct {
	return LocalizedProduct{
		ID:              p.ID,
		Slug:            p.Slug,
		Name:            p.Name.In(lang),
		Description:     p.Description.In(lang),
		Price:           p.Price,
		Category:        p.Category,
		Image:           p.Image,
		Sizes:           append([]string(nil), p.Sizes...),
		NeedsSizeChoice: p.NeedsSizeChoice(),
	}
}
