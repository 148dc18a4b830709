// Package catalog holds the fixed L'Artisan product list.
package catalog

import (
	"strconv"
	"strings"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/pkg/slug"
)

// Catalog is an immutable product list. Every accessor returns copies.
type Catalog struct {
	products []domain.Product
	byID     map[int]int
	bySlug   map[string]int
}

// New builds a catalog from products, deriving slugs from the English names
// where none is set.
func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for i, p := range products {
		p = p.Clone()
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Name.EN)
		}
		c.products[i] = p
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}
	return c
}

// Default returns the storefront's fixed collection.
func Default() *Catalog {
	return New(defaultProducts)
}

// All returns every product in catalog order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns the product with id.
func (c *Catalog) Get(id int) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i].Clone(), true
}

// GetBySlug returns the product with the given slug.
func (c *Catalog) GetBySlug(s string) (domain.Product, bool) {
	i, ok := c.bySlug[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i].Clone(), true
}

// Lookup resolves a numeric id or a slug.
func (c *Catalog) Lookup(idOrSlug string) (domain.Product, bool) {
	if id, err := strconv.Atoi(strings.TrimSpace(idOrSlug)); err == nil {
		return c.Get(id)
	}
	return c.GetBySlug(idOrSlug)
}
