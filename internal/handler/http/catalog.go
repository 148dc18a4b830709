package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
	"github.com/QuantumCastro/L-Artisan/internal/service"
	"github.com/QuantumCastro/L-Artisan/internal/view"
	"github.com/QuantumCastro/L-Artisan/pkg/httputil"
	"github.com/QuantumCastro/L-Artisan/pkg/middleware"
	"github.com/QuantumCastro/L-Artisan/pkg/pagination"
	"github.com/QuantumCastro/L-Artisan/pkg/validator"
)

// CatalogHandler serves the session-less endpoints: catalog, search, text
// bundles, newsletter and the HTML page.
type CatalogHandler struct {
	service *service.StorefrontService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.StorefrontService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// NewsletterRequest is the JSON body for a newsletter signup.
type NewsletterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Language string `json:"language" validate:"max=35"`
}

// NewsletterResponse carries the localized confirmation line.
type NewsletterResponse struct {
	Message string `json:"message"`
}

// ListProducts handles GET /api/v1/catalog
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.Products(requestLanguage(r))
	httputil.WriteData(w, http.StatusOK, pagination.Paginate(products, pagination.FromRequest(r)))
}

// GetProduct handles GET /api/v1/catalog/{idOrSlug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Product(chi.URLParam(r, "idOrSlug"), requestLanguage(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, product)
}

// Search handles GET /api/v1/catalog/search
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := h.service.Search(q.Get("category"), q.Get("q"), string(requestLanguage(r)))
	httputil.WriteData(w, http.StatusOK, res)
}

// ListBundles handles GET /api/v1/i18n
func (h *CatalogHandler) ListBundles(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, i18n.All())
}

// GetBundle handles GET /api/v1/i18n/{code}. Unsupported codes return the
// default bundle.
func (h *CatalogHandler) GetBundle(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, i18n.Lookup(chi.URLParam(r, "code")))
}

// Subscribe handles POST /api/v1/newsletter
func (h *CatalogHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	lang := domain.ParseLanguage(req.Language)
	if req.Language == "" {
		lang = requestLanguage(r)
	}

	msg, err := h.service.SubscribeNewsletter(r.Context(), req.Email, lang)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, NewsletterResponse{Message: msg})
}

// Page handles GET /
func (h *CatalogHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := h.service.Snapshot(r.Context(),
		middleware.SessionIDFromRequest(r),
		q.Get("category"),
		q.Get("q"),
		requestLanguage(r),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(v.Language))
	w.Header().Set("Cache-Control", "no-store")
	if err := view.Render(w, v); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", slog.String("error", err.Error()))
	}
}

// requestLanguage prefers an explicit ?lang= and falls back to
// Accept-Language negotiation.
func requestLanguage(r *http.Request) domain.Language {
	if code := r.URL.Query().Get("lang"); code != "" {
		return domain.ParseLanguage(code)
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}
