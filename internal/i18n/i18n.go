package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
)

var bundles = map[domain.Language]*Messages{
	domain.LanguageEN: &english,
	domain.LanguageES: &spanish,
}

// supportedTags follows domain.SupportedLanguages; the first entry is the
// matcher's fallback.
var supportedTags = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supportedTags)

// Lookup returns the bundle for code, or the default language's bundle when
// code is unsupported. It never fails.
func Lookup(code string) Messages {
	return *bundles[domain.ParseLanguage(code)]
}

// For returns the bundle for lang.
func For(lang domain.Language) Messages {
	return Lookup(string(lang))
}

// All returns every bundle in domain.SupportedLanguages order.
func All() []Messages {
	out := make([]Messages, 0, len(domain.SupportedLanguages))
	for _, l := range domain.SupportedLanguages {
		out = append(out, *bundles[l])
	}
	return out
}

// Negotiate picks the best supported language for an Accept-Language header
// value. Empty or unparseable headers select domain.DefaultLanguage.
func Negotiate(acceptLanguage string) domain.Language {
	if acceptLanguage == "" {
		return domain.DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLanguage
	}
	return domain.SupportedLanguages[idx]
}

func (m Messages) printer() *message.Printer {
	return message.NewPrinter(language.Make(string(m.Lang)))
}

// CategoryLabel returns the display name of c, falling back to the raw value.
func (m Messages) CategoryLabel(c domain.Category) string {
	if label, ok := m.Nav.Categories[c]; ok {
		return label
	}
	return string(c)
}

// CollectionCount renders the "N curated pieces" line.
func (m Messages) CollectionCount(n int) string {
	return m.printer().Sprintf(m.Collection.Count, n)
}

// SearchResults renders the search panel result line.
func (m Messages) SearchResults(n int, c domain.Category) string {
	return m.printer().Sprintf(m.Search.Results, n, m.CategoryLabel(c))
}

// SearchTag renders the active-query chip.
func (m Messages) SearchTag(query string) string {
	return m.printer().Sprintf(m.Filter.SearchTag, query)
}

// Showing renders the "Showing X of Y" line.
func (m Messages) Showing(visible, total int) string {
	return m.printer().Sprintf(m.Filter.Showing, visible, total)
}

// OrderID renders the order sheet heading for reference.
func (m Messages) OrderID(reference string) string {
	return m.printer().Sprintf(m.Cart.OrderID, reference)
}

// FormatPrice renders a whole-unit USD amount with the language's digit
// grouping.
func (m Messages) FormatPrice(amount int64) string {
	return m.printer().Sprintf("$%d", amount)
}
