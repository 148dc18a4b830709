// Package view renders the read-only HTML snapshot of a storefront view.
package view

import (
	"io"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
	"github.com/QuantumCastro/L-Artisan/internal/service"
)

// Render writes the full HTML document for v to w.
func Render(w io.Writer, v service.View) error {
	return Page(v).Render(w)
}

// Page builds the storefront document for v.
func Page(v service.View) g.Node {
	msgs := i18n.For(v.Language)

	return Doctype(
		HTML(Lang(string(v.Language)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(msgs.Brand+" "+msgs.Collection.Title)),
			),
			Body(
				header(v, msgs),
				Main(
					hero(msgs),
					collection(v, msgs),
				),
				cartDrawer(v, msgs),
				footer(msgs),
			),
		),
	)
}

func pageURL(lang domain.Language, category domain.Category, query string) string {
	q := url.Values{}
	q.Set("lang", string(lang))
	if category != domain.CategoryAll {
		q.Set("category", string(category))
	}
	if query != "" {
		q.Set("q", query)
	}
	return "/?" + q.Encode()
}

func header(v service.View, msgs i18n.Messages) g.Node {
	return Header(Class("site-header"),
		A(Class("brand"), Href(pageURL(v.Language, domain.CategoryAll, "")), g.Text(msgs.Brand)),
		Nav(Class("categories"),
			g.Map(domain.Categories, func(c domain.Category) g.Node {
				return A(
					Href(pageURL(v.Language, c, v.Query)),
					g.If(c == v.Category, Aria("current", "page")),
					g.Text(msgs.CategoryLabel(c)),
				)
			}),
		),
		Div(Class("languages"), Aria("label", msgs.Nav.Language),
			g.Map(domain.SupportedLanguages, func(l domain.Language) g.Node {
				return A(
					Href(pageURL(l, v.Category, v.Query)),
					g.If(l == v.Language, Class("active")),
					g.Text(string(l)),
				)
			}),
		),
		Form(Class("search"), Method("get"), Action("/"), Role("search"),
			Input(Type("hidden"), Name("lang"), Value(string(v.Language))),
			Input(Type("hidden"), Name("category"), Value(string(v.Category))),
			Input(Type("search"), Name("q"), Value(v.Query), Placeholder(msgs.Search.Placeholder), Aria("label", msgs.Nav.SearchAria)),
			Small(g.Text(msgs.Search.Semantic)),
		),
		Span(Class("cart-count"), Aria("label", msgs.Nav.CartAria), g.Text(strconv.Itoa(v.Cart.Count))),
	)
}

func hero(msgs i18n.Messages) g.Node {
	return Section(Class("hero"),
		Span(Class("hero-tag"), g.Text(msgs.Hero.Tag)),
		H1(g.Text(msgs.Hero.Title)),
		P(g.Text(msgs.Hero.Subtitle)),
		A(Href("#collection"), g.Text(msgs.Hero.Scroll)),
	)
}

func collection(v service.View, msgs i18n.Messages) g.Node {
	return Section(ID("collection"), Class("collection"),
		H2(g.Text(msgs.Collection.Title)),
		P(g.Text(msgs.Collection.Subtitle)),
		P(Class("collection-count"), g.Text(v.Text.CollectionCount)),
		g.If(v.Summary.Filtered, filterBar(v, msgs)),
		g.If(v.Summary.Query != "", P(Class("search-results"), g.Text(v.Text.SearchResults))),
		g.Iff(v.Summary.Empty, func() g.Node { return emptyState(v, msgs) }),
		g.If(!v.Summary.Empty,
			Ul(Class("product-grid"),
				g.Map(v.Products, func(p domain.LocalizedProduct) g.Node {
					return productCard(p, msgs)
				}),
			),
		),
	)
}

func filterBar(v service.View, msgs i18n.Messages) g.Node {
	return Div(Class("filter-bar"),
		Strong(g.Text(msgs.Filter.Heading)),
		Span(g.Text(v.Text.CategoryLabel)),
		g.If(v.Text.SearchTag != "", Span(Class("search-tag"), g.Text(v.Text.SearchTag))),
		Span(g.Text(v.Text.Showing)),
		A(Href(pageURL(v.Language, domain.CategoryAll, "")), g.Text(msgs.Filter.Clear)),
	)
}

func emptyState(v service.View, msgs i18n.Messages) g.Node {
	return Div(Class("empty"),
		H3(g.Text(msgs.Empty.Title)),
		P(g.Text(msgs.Empty.Body)),
		A(Href(pageURL(v.Language, domain.CategoryAll, "")), g.Text(msgs.Empty.CTA)),
	)
}

func productCard(p domain.LocalizedProduct, msgs i18n.Messages) g.Node {
	return Li(Class("product"), Data("product-id", strconv.Itoa(p.ID)), Data("category", string(p.Category)),
		Img(Src(p.Image), Alt(p.Name), g.Attr("loading", "lazy")),
		H3(g.Text(p.Name)),
		P(Class("description"), g.Text(p.Description)),
		P(Class("price"), g.Text(msgs.FormatPrice(p.Price)), Small(g.Text(" "+msgs.Product.PriceNote))),
		g.If(p.NeedsSizeChoice,
			Div(Class("sizes"),
				Span(g.Text(msgs.Product.Size)),
				g.Map(p.Sizes, func(s string) g.Node {
					return Span(Class("size"), g.Text(s))
				}),
			),
		),
	)
}

func cartDrawer(v service.View, msgs i18n.Messages) g.Node {
	return Aside(Class("cart"), g.If(!v.CartOpen, g.Attr("hidden")),
		H2(g.Text(msgs.Cart.Title)),
		g.If(v.SessionID != "", Small(Class("order-id"), g.Text(v.Cart.OrderID))),
		g.If(v.Cart.Count == 0, P(g.Text(msgs.Cart.Empty))),
		g.If(v.Cart.Count > 0,
			g.Group([]g.Node{
				Ol(Class("cart-lines"),
					g.Map(v.Cart.Lines, func(l service.CartLineView) g.Node {
						return Li(Data("index", strconv.Itoa(l.Index)),
							Span(Class("name"), g.Text(l.Name)),
							Span(Class("size"), g.Text(l.Size)),
							Span(Class("price"), g.Text(l.PriceDisplay)),
						)
					}),
				),
				P(Class("total"), g.Text(msgs.Cart.Total+": "), Strong(g.Text(v.Cart.TotalDisplay))),
				Small(g.Text(msgs.Cart.Secure)),
			}),
		),
	)
}

func footer(msgs i18n.Messages) g.Node {
	return Footer(Class("site-footer"),
		P(g.Text(msgs.Footer.BrandCopy)),
		linkList(msgs.Footer.CustomerTitle, msgs.Footer.CustomerLinks),
		linkList(msgs.Footer.LegalTitle, msgs.Footer.LegalLinks),
		Div(Class("newsletter"),
			H4(g.Text(msgs.Footer.NewsletterTitle)),
			Form(Data("endpoint", "/api/v1/newsletter"),
				Input(Type("email"), Name("email"), Required()),
				Button(Type("submit"), g.Text(msgs.Footer.NewsletterCTA)),
			),
		),
	)
}

func linkList(title string, links []string) g.Node {
	return Div(
		H4(g.Text(title)),
		Ul(g.Map(links, func(l string) g.Node { return Li(g.Text(l)) })),
	)
}
