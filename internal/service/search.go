package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/filter"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
	apperrors "github.com/QuantumCastro/L-Artisan/pkg/errors"
)

// SearchResult is a filtered catalog view that belongs to no session.
type SearchResult struct {
	Language domain.Language           `json:"language"`
	Category domain.Category           `json:"category"`
	Query    string                    `json:"query"`
	Products []domain.LocalizedProduct `json:"products"`
	Summary  filter.Summary            `json:"summary"`
	Text     TextView                  `json:"text"`
}

// Search filters the catalog without touching any session. Unknown
// categories search everything and unsupported languages use the default.
func (s *StorefrontService) Search(category, query, lang string) SearchResult {
	sess := domain.NewSession("", domain.ParseLanguage(lang), time.Time{})
	sess.SelectCategory(category)
	sess.SetQuery(query)

	v := BuildView(sess, s.catalog)
	return SearchResult{
		Language: v.Language,
		Category: v.Category,
		Query:    v.Query,
		Products: v.Products,
		Summary:  v.Summary,
		Text:     v.Text,
	}
}

// Snapshot builds the view behind the HTML page. Filters and language come
// from the arguments; cart lines come from sessionID when it names a live
// session. Lookup failures degrade to an empty cart.
func (s *StorefrontService) Snapshot(ctx context.Context, sessionID, category, query string, lang domain.Language) View {
	snap := domain.NewSession("", lang, time.Time{})
	snap.SelectCategory(category)
	snap.SetQuery(query)

	if sessionID != "" {
		sess, err := s.repo.Get(ctx, sessionID)
		switch {
		case err == nil:
			snap.ID = sess.ID
			snap.Cart = domain.Cart{Items: sess.Cart.Lines()}
			snap.CartOpen = sess.CartOpen
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrSessionExpired):
		default:
			s.logger.WarnContext(ctx, "snapshot without session cart",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
		}
	}
	return BuildView(snap, s.catalog)
}

func newsletterThanks(lang domain.Language) string {
	return i18n.For(lang).Footer.NewsletterThanks
}
