package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/QuantumCastro/L-Artisan/internal/service"
	"github.com/QuantumCastro/L-Artisan/pkg/health"
	"github.com/QuantumCastro/L-Artisan/pkg/middleware"
)

// catalogMaxAge is the public cache lifetime, in seconds, of catalog and
// bundle responses.
const catalogMaxAge = 300

// RouterConfig carries the HTTP-layer settings for NewRouter.
type RouterConfig struct {
	ServiceName    string
	PprofCIDRs     []string
	CORS           middleware.CORSConfig
	RateLimitRPS   float64
	RateLimitBurst int
	Cookie         CookieConfig
}

// NewRouter creates a chi router with all storefront routes registered. ctx
// bounds the rate limiter's background cleanup.
func NewRouter(
	ctx context.Context,
	svc *service.StorefrontService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Session)
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	storefrontHandler := NewStorefrontHandler(svc, logger, cfg.Cookie)
	catalogHandler := NewCatalogHandler(svc, logger)

	r.Get("/", catalogHandler.Page)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
		r.Use(middleware.RequireJSON)

		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(catalogMaxAge))

			r.Get("/catalog", catalogHandler.ListProducts)
			r.Get("/catalog/search", catalogHandler.Search)
			r.Get("/catalog/{idOrSlug}", catalogHandler.GetProduct)
			r.Get("/i18n", catalogHandler.ListBundles)
			r.Get("/i18n/{code}", catalogHandler.GetBundle)
		})

		r.Post("/newsletter", catalogHandler.Subscribe)

		r.With(middleware.NoStore).Post("/sessions", storefrontHandler.CreateSession)

		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(RequireSession)

			r.Get("/", storefrontHandler.GetSession)
			r.Delete("/", storefrontHandler.EndSession)

			r.Put("/language", storefrontHandler.SelectLanguage)
			r.Put("/category", storefrontHandler.SelectCategory)
			r.Put("/query", storefrontHandler.SetSearchQuery)
			r.Put("/search-panel", storefrontHandler.SetSearchPanel)
			r.Delete("/filters", storefrontHandler.ResetFilters)
			r.Get("/products", storefrontHandler.VisibleProducts)

			r.Put("/cart-panel", storefrontHandler.SetCartPanel)
			r.Post("/cart/items", storefrontHandler.AddItem)
			r.Delete("/cart/items/{index}", storefrontHandler.RemoveItem)

			r.Post("/checkout", storefrontHandler.OpenCheckout)
			r.Delete("/checkout", storefrontHandler.CloseCheckout)
			r.Put("/checkout/form", storefrontHandler.UpdateCheckoutForm)
			r.Post("/checkout/submit", storefrontHandler.SubmitCheckout)
			r.Post("/checkout/back", storefrontHandler.BackToCart)
		})
	})

	return r
}
