package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
	"github.com/QuantumCastro/L-Artisan/internal/service"
	"github.com/QuantumCastro/L-Artisan/pkg/httputil"
	"github.com/QuantumCastro/L-Artisan/pkg/middleware"
	"github.com/QuantumCastro/L-Artisan/pkg/validator"
)

// CookieConfig controls the session cookie issued by CreateSession.
type CookieConfig struct {
	MaxAge time.Duration
	Secure bool
}

// StorefrontHandler handles HTTP requests for session-scoped storefront endpoints.
type StorefrontHandler struct {
	service *service.StorefrontService
	logger  *slog.Logger
	cookie  CookieConfig
}

// NewStorefrontHandler creates a new storefront HTTP handler.
func NewStorefrontHandler(svc *service.StorefrontService, logger *slog.Logger, cookie CookieConfig) *StorefrontHandler {
	return &StorefrontHandler{
		service: svc,
		logger:  logger,
		cookie:  cookie,
	}
}

// --- Request DTOs ---

// CreateSessionRequest is the optional JSON body for creating a session.
type CreateSessionRequest struct {
	Language string `json:"language" validate:"max=35"`
}

// LanguageRequest is the JSON body for switching the display language.
// Unsupported codes fall back to the default language.
type LanguageRequest struct {
	Code string `json:"code" validate:"max=35"`
}

// CategoryRequest is the JSON body for selecting a category.
type CategoryRequest struct {
	Category string `json:"category" validate:"max=32"`
}

// QueryRequest is the JSON body for setting the search query.
type QueryRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// PanelRequest is the JSON body for opening or closing a panel.
type PanelRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// AddItemRequest is the JSON body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int    `json:"product_id" validate:"required,gt=0"`
	Size      string `json:"size" validate:"max=16"`
}

// CheckoutFormRequest carries checkout form edits. Omitted fields are left
// unchanged.
type CheckoutFormRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=200"`
	Email   *string `json:"email" validate:"omitempty,max=254"`
	Card    *string `json:"card" validate:"omitempty,max=64"`
	Expiry  *string `json:"expiry" validate:"omitempty,max=16"`
	CVV     *string `json:"cvv" validate:"omitempty,max=16"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

func (r CheckoutFormRequest) patch() domain.CheckoutFormPatch {
	return domain.CheckoutFormPatch{
		Name:    r.Name,
		Email:   r.Email,
		Card:    r.Card,
		Expiry:  r.Expiry,
		CVV:     r.CVV,
		Address: r.Address,
	}
}

// --- Handlers ---

// CreateSession handles POST /api/v1/sessions
func (h *StorefrontHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := validator.DecodeOptional(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	lang := domain.ParseLanguage(req.Language)
	if req.Language == "" {
		lang = i18n.Negotiate(r.Header.Get("Accept-Language"))
	}

	view, err := h.service.CreateSession(r.Context(), lang)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    view.SessionID,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(middleware.SessionHeader, view.SessionID)
	httputil.WriteData(w, http.StatusCreated, view)
}

// GetSession handles GET /api/v1/session
func (h *StorefrontHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), sessionID(r))
	h.writeView(w, r, view, err)
}

// EndSession handles DELETE /api/v1/session
func (h *StorefrontHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.EndSession(r.Context(), sessionID(r)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// SelectLanguage handles PUT /api/v1/session/language
func (h *StorefrontHandler) SelectLanguage(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	view, err := h.service.SelectLanguage(r.Context(), sessionID(r), req.Code)
	h.writeView(w, r, view, err)
}

// SelectCategory handles PUT /api/v1/session/category
func (h *StorefrontHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	view, err := h.service.SelectCategory(r.Context(), sessionID(r), req.Category)
	h.writeView(w, r, view, err)
}

// SetSearchQuery handles PUT /api/v1/session/query
func (h *StorefrontHandler) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	view, err := h.service.SetSearchQuery(r.Context(), sessionID(r), req.Query)
	h.writeView(w, r, view, err)
}

// SetSearchPanel handles PUT /api/v1/session/search-panel
func (h *StorefrontHandler) SetSearchPanel(w http.ResponseWriter, r *http.Request) {
	var req PanelRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	view, err := h.service.SetSearchOpen(r.Context(), sessionID(r), *req.Open)
	h.writeView(w, r, view, err)
}

// ResetFilters handles DELETE /api/v1/session/filters
func (h *StorefrontHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ResetFilters(r.Context(), sessionID(r))
	h.writeView(w, r, view, err)
}

// VisibleProducts handles GET /api/v1/session/products
func (h *StorefrontHandler) VisibleProducts(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, http.StatusOK, service.SearchResult{
		Language: view.Language,
		Category: view.Category,
		Query:    view.Query,
		Products: view.Products,
		Summary:  view.Summary,
		Text:     view.Text,
	})
}

// SetCartPanel handles PUT /api/v1/session/cart-panel
func (h *StorefrontHandler) SetCartPanel(w http.ResponseWriter, r *http.Request) {
	var req PanelRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	view, err := h.service.SetCartOpen(r.Context(), sessionID(r), *req.Open)
	h.writeView(w, r, view, err)
}

// AddItem handles POST /api/v1/session/cart/items
func (h *StorefrontHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	res, err := h.service.AddToCart(r.Context(), sessionID(r), req.ProductID, req.Size)
	h.writeResult(w, r, res, err)
}

// RemoveItem handles DELETE /api/v1/session/cart/items/{index}
func (h *StorefrontHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, ok := httputil.ParseIndex(w, "index", chi.URLParam(r, "index"))
	if !ok {
		return
	}

	res, err := h.service.RemoveFromCart(r.Context(), sessionID(r), index)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, res)
}

// OpenCheckout handles POST /api/v1/session/checkout
func (h *StorefrontHandler) OpenCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.OpenCheckout(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, res)
}

// UpdateCheckoutForm handles PUT /api/v1/session/checkout/form
func (h *StorefrontHandler) UpdateCheckoutForm(w http.ResponseWriter, r *http.Request) {
	var req CheckoutFormRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	view, err := h.service.UpdateCheckoutForm(r.Context(), sessionID(r), req.patch())
	h.writeView(w, r, view, err)
}

// SubmitCheckout handles POST /api/v1/session/checkout/submit. The body is
// optional and holds last-moment form edits.
func (h *StorefrontHandler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutFormRequest
	if err := validator.DecodeOptional(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	var patch *domain.CheckoutFormPatch
	if p := req.patch(); !p.IsEmpty() {
		patch = &p
	}

	res, err := h.service.SubmitCheckout(r.Context(), sessionID(r), patch)
	h.writeResult(w, r, res, err)
}

// CloseCheckout handles DELETE /api/v1/session/checkout
func (h *StorefrontHandler) CloseCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.CloseCheckout(r.Context(), sessionID(r))
	h.writeView(w, r, view, err)
}

// BackToCart handles POST /api/v1/session/checkout/back
func (h *StorefrontHandler) BackToCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.BackToCart(r.Context(), sessionID(r))
	h.writeView(w, r, view, err)
}

// --- Helpers ---

func sessionID(r *http.Request) string {
	return middleware.SessionIDFromContext(r.Context())
}

func (h *StorefrontHandler) writeView(w http.ResponseWriter, r *http.Request, view service.View, err error) {
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// writeResult answers 202 for transitions that complete asynchronously and
// 200 for refusals and immediate effects.
func (h *StorefrontHandler) writeResult(w http.ResponseWriter, r *http.Request, res service.Result, err error) {
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	status := http.StatusOK
	if res.Accepted {
		status = http.StatusAccepted
	}
	httputil.WriteData(w, status, res)
}
