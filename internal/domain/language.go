package domain

import "strings"

// Language is a supported display language code.
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"

	// DefaultLanguage is used whenever a code is missing or unsupported.
	DefaultLanguage = LanguageEN
)

// SupportedLanguages lists the languages in the order the language picker shows them.
var SupportedLanguages = []Language{LanguageEN, LanguageES}

// ParseLanguage normalises code and falls back to DefaultLanguage for
// anything outside the supported set.
func ParseLanguage(code string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if !l.IsSupported() {
		return DefaultLanguage
	}
	return l
}

// IsSupported reports whether l is one of SupportedLanguages.
func (l Language) IsSupported() bool {
	switch l {
	case LanguageEN, LanguageES:
		return true
	}
	return false
}

// LocalizedText carries one value per supported language.
type LocalizedText struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

// In returns the value for lang, using English for unsupported codes.
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageES {
		return t.ES
	}
	return t.EN
}

// All returns the values in SupportedLanguages order.
func (t LocalizedText) All() []string {
	return []string{t.EN, t.ES}
}
