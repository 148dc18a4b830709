package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/QuantumCastro/L-Artisan/internal/catalog"
	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/event"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
	"github.com/QuantumCastro/L-Artisan/internal/repository"
	"github.com/QuantumCastro/L-Artisan/internal/repository/memory"
	"github.com/QuantumCastro/L-Artisan/internal/scheduler"
	"github.com/QuantumCastro/L-Artisan/internal/service"
	"github.com/QuantumCastro/L-Artisan/pkg/health"
	"github.com/QuantumCastro/L-Artisan/pkg/httputil"
	"github.com/QuantumCastro/L-Artisan/pkg/middleware"
	"github.com/QuantumCastro/L-Artisan/pkg/pagination"
)

// ============================================================================
// Mock SessionRepository
// ============================================================================

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepository) Save(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ============================================================================
// Test helpers
// ============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testServer struct {
	handler http.Handler
	clock   *scheduler.Manual
}

func newTestServer(t *testing.T, repo repository.SessionRepository) *testServer {
	t.Helper()
	clock := scheduler.NewManual(time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))
	if repo == nil {
		repo = memory.NewSessionRepository(time.Hour).WithClock(clock.Now)
	}

	svc := service.NewStorefrontService(catalog.Default(), repo, clock,
		event.NewProducer(nil, 0, testLogger()), testLogger(), service.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewRouter(ctx, svc, health.NewHandler("storefront"), testLogger(), RouterConfig{
		ServiceName: "storefront-test",
		CORS:        middleware.DefaultCORSConfig(),
		Cookie:      CookieConfig{MaxAge: time.Hour},
	})
	return &testServer{handler: h, clock: clock}
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *httputil.ErrorResponse `json:"error"`
}

func (s *testServer) do(t *testing.T, method, path, sessionID, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func (s *testServer) createSession(t *testing.T) string {
	t.Helper()
	rec, env := s.do(t, http.MethodPost, "/api/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[service.View](t, env.Data).SessionID
}

func (s *testServer) view(t *testing.T, id string) service.View {
	t.Helper()
	rec, env := s.do(t, http.MethodGet, "/api/v1/session", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[service.View](t, env.Data)
}

const validForm = `{"name":"Ada Lovelace","email":"ada@example.com","card":"4242 4242 4242 4242","expiry":"12/29","cvv":"123","address":"Via Montenapoleone 1"}`

// ============================================================================
// Sessions
// ============================================================================

func TestCreateSession_NegotiatesLanguageAndSetsCookie(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.5")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	v := decode[service.View](t, env.Data)
	assert.Equal(t, domain.LanguageES, v.Language)
	assert.Equal(t, v.SessionID, rec.Header().Get(middleware.SessionHeader))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, v.SessionID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestCreateSession_ExplicitLanguage(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/sessions", "", `{"language":"fr"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.LanguageEN, decode[service.View](t, env.Data).Language)
}

func TestSessionRoutes_RequireSessionID(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/session", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestSessionRoutes_UnknownSession(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/session", "missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSessionRoutes_CookieIdentifiesSession(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/session/category", strings.NewReader(`{"category":"shoes"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: id})
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CategoryShoes, s.view(t, id).Category)
}

func TestEndSession(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, _ := s.do(t, http.MethodDelete, "/api/v1/session", id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/session", id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRepositoryFailure_Returns500WithoutLeaking(t *testing.T) {
	repo := new(mockSessionRepository)
	repo.On("Get", mock.Anything, "s-1").Return(nil, errors.New("dial tcp: connection refused"))
	s := newTestServer(t, repo)

	rec, env := s.do(t, http.MethodGet, "/api/v1/session", "s-1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "connection refused")
}

// ============================================================================
// Filters and language
// ============================================================================

func TestFilters(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPut, "/api/v1/session/query", id, `{"query":"NÁPOLI"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[service.View](t, env.Data)
	require.Len(t, v.Products, 1)
	assert.Equal(t, 1, v.Products[0].ID)
	assert.True(t, v.Summary.Filtered)

	rec, env = s.do(t, http.MethodGet, "/api/v1/session/products", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[service.SearchResult](t, env.Data).Products, 1)

	rec, env = s.do(t, http.MethodDelete, "/api/v1/session/filters", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[service.View](t, env.Data)
	assert.Len(t, v.Products, 5)
	assert.Empty(t, v.Query)

	rec, env = s.do(t, http.MethodPut, "/api/v1/session/category", id, `{"category":"hats"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CategoryAll, decode[service.View](t, env.Data).Category)
}

func TestSelectLanguage(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPut, "/api/v1/session/language", id, `{"code":"es"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[service.View](t, env.Data)
	assert.Equal(t, domain.LanguageES, v.Language)
	assert.Equal(t, "Traje Napoli Lana Virgen", v.Products[0].Name)

	rec, env = s.do(t, http.MethodPut, "/api/v1/session/language", id, `{"code":"jp"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LanguageEN, decode[service.View](t, env.Data).Language)
}

func TestPanels(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPut, "/api/v1/session/search-panel", id, `{"open":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[service.View](t, env.Data).SearchOpen)

	rec, env = s.do(t, http.MethodPut, "/api/v1/session/cart-panel", id, `{"open":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[service.View](t, env.Data).CartOpen)

	rec, env = s.do(t, http.MethodPut, "/api/v1/session/cart-panel", id, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "open")
}

func TestRequireJSON(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/session/query", strings.NewReader("query=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(middleware.SessionHeader, id)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPut, "/api/v1/session/query", id, `{"query":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

// ============================================================================
// Cart
// ============================================================================

func TestCartScenario(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":1,"size":"50"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	res := decode[service.Result](t, env.Data)
	assert.True(t, res.Accepted)
	assert.NotEmpty(t, res.Ticket)
	assert.Len(t, res.View.PendingAdds, 1)
	assert.Zero(t, res.View.Cart.Count)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":2,"size":"m"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	s.clock.Advance(time.Second)

	v := s.view(t, id)
	require.Equal(t, 2, v.Cart.Count)
	assert.Equal(t, int64(1030), v.Cart.Total)
	assert.Equal(t, "$1,030", v.Cart.TotalDisplay)
	assert.Equal(t, "M", v.Cart.Lines[1].Size)
	assert.True(t, v.CartOpen)

	rec, env = s.do(t, http.MethodDelete, "/api/v1/session/cart/items/0", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[service.Result](t, env.Data)
	assert.True(t, res.Accepted)
	require.Len(t, res.View.Cart.Lines, 1)
	assert.Equal(t, 2, res.View.Cart.Lines[0].ProductID)
	assert.Equal(t, int64(180), res.View.Cart.Total)
}

func TestAddItem_MissingSizeIsRefused(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[service.Result](t, env.Data)
	assert.False(t, res.Accepted)
	assert.Empty(t, res.View.PendingAdds)
}

func TestAddItem_Errors(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "product_id")

	rec, env = s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRemoveItem_BadIndex(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rec, env := s.do(t, http.MethodDelete, "/api/v1/session/cart/items/first", id, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_PARAMETER", env.Error.Code)

	rec, env = s.do(t, http.MethodDelete, "/api/v1/session/cart/items/3", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[service.Result](t, env.Data).Accepted)
}

// ============================================================================
// Checkout
// ============================================================================

func TestCheckoutFlow(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":5}`)
	s.clock.Advance(time.Second)

	rec, env := s.do(t, http.MethodPost, "/api/v1/session/checkout", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[service.Result](t, env.Data)
	require.True(t, res.Accepted)
	require.NotNil(t, res.View.Checkout)
	assert.Equal(t, domain.CheckoutIdle, res.View.Checkout.Status)
	assert.False(t, res.View.CartOpen)

	rec, env = s.do(t, http.MethodPost, "/api/v1/session/checkout/submit", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[service.Result](t, env.Data).Accepted)

	rec, env = s.do(t, http.MethodPut, "/api/v1/session/checkout/form", id, validForm)
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[service.View](t, env.Data)
	assert.Equal(t, "4242 4242 4242 4242", v.Checkout.Card)
	assert.Equal(t, "•••", v.Checkout.CVV)
	assert.True(t, v.Checkout.CanSubmit)

	rec, env = s.do(t, http.MethodPost, "/api/v1/session/checkout/submit", id, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, domain.CheckoutSubmitting, decode[service.Result](t, env.Data).View.Checkout.Status)

	s.clock.Advance(time.Second)

	v = s.view(t, id)
	require.NotNil(t, v.Checkout)
	assert.Equal(t, domain.CheckoutDone, v.Checkout.Status)
	require.NotNil(t, v.Checkout.Receipt)
	assert.Equal(t, int64(120), v.Checkout.Receipt.Total)
	assert.Zero(t, v.Cart.Count)

	rec, env = s.do(t, http.MethodDelete, "/api/v1/session/checkout", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[service.View](t, env.Data).Checkout)
}

func TestSubmitCheckout_WithInlineForm(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":2,"size":"L"}`)
	s.clock.Advance(time.Second)
	s.do(t, http.MethodPost, "/api/v1/session/checkout", id, "")

	rec, env := s.do(t, http.MethodPost, "/api/v1/session/checkout/submit", id, validForm)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, decode[service.Result](t, env.Data).Accepted)
}

func TestBackToCart_DuringSubmittingKeepsCart(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":5}`)
	s.clock.Advance(time.Second)
	s.do(t, http.MethodPost, "/api/v1/session/checkout", id, "")
	rec, _ := s.do(t, http.MethodPost, "/api/v1/session/checkout/submit", id, validForm)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec, env := s.do(t, http.MethodPost, "/api/v1/session/checkout/back", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[service.View](t, env.Data)
	assert.Nil(t, v.Checkout)
	assert.True(t, v.CartOpen)

	s.clock.Advance(time.Second)
	assert.Equal(t, 1, s.view(t, id).Cart.Count)
}

// ============================================================================
// Catalog, bundles, newsletter and page
// ============================================================================

func TestListProducts_Paginated(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/catalog?per_page=2&page=2&lang=es", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))

	page := decode[pagination.Result[domain.LocalizedProduct]](t, env.Data)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Gabardina Media Marron", page.Data[0].Name)
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/catalog/egyptian-oxford-shirt", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[domain.LocalizedProduct](t, env.Data)
	assert.Equal(t, 2, p.ID)
	assert.True(t, p.NeedsSizeChoice)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/catalog/5", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/catalog/top-hat", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
}

func TestSearch(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/catalog/search?q=gabardina&lang=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[service.SearchResult](t, env.Data)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Brown Coat", res.Products[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/search?category=coats", nil)
	req.Header.Set("Accept-Language", "es")
	rec2 := httptest.NewRecorder()
	s.handler.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	var env2 envelope
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &env2))
	res = decode[service.SearchResult](t, env2.Data)
	assert.Equal(t, domain.LanguageES, res.Language)
	assert.Equal(t, domain.CategoryCoats, res.Category)
}

func TestBundles(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/i18n", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]i18n.Messages](t, env.Data), 2)

	rec, env = s.do(t, http.MethodGet, "/api/v1/i18n/xx", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LanguageEN, decode[i18n.Messages](t, env.Data).Lang)
}

func TestNewsletter(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/newsletter", "", `{"email":"ada@example.com","language":"es"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gracias por unirte a nuestro boletín.", decode[NewsletterResponse](t, env.Data).Message)

	rec, env = s.do(t, http.MethodPost, "/api/v1/newsletter", "", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "email")
}

func TestPage(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)
	s.do(t, http.MethodPost, "/api/v1/session/cart/items", id, `{"product_id":5}`)
	s.clock.Advance(time.Second)

	req := httptest.NewRequest(http.MethodGet, "/?lang=es&category=accessories", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: id})
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="es">`)
	assert.Contains(t, body, "Corbata de Seda")
	assert.NotContains(t, body, "Traje Napoli")
	assert.Contains(t, body, `data-index="0"`)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, nil)

	rec, _ := s.do(t, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
