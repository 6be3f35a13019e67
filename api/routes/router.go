package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lwandile-dev/mzansimarket-backend/api/controllers"
	"github.com/lwandile-dev/mzansimarket-backend/api/middleware"
	"github.com/lwandile-dev/mzansimarket-backend/internal/cart"
	"github.com/lwandile-dev/mzansimarket-backend/internal/dashboard"
	"github.com/lwandile-dev/mzansimarket-backend/internal/marketplace"
	"github.com/lwandile-dev/mzansimarket-backend/internal/registrations"
	"github.com/lwandile-dev/mzansimarket-backend/internal/wishlist"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/auth/session"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/config"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/metrics"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Redis         *redis.Client
	Sessions      session.Checker
	Dashboard     dashboard.Service
	Marketplace   marketplace.Service
	Registrations registrations.Service
	Carts         *cart.Registry
	Wishlists     *wishlist.Registry
	HTTPMetrics   *metrics.HTTPMetrics
	Gatherer      prometheus.Gatherer
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/marketplace", func(r chi.Router) {
		r.Get("/inventory", controllers.MarketplaceInventory(p.Marketplace, logg))
		r.Get("/featured", controllers.FeaturedProducts(p.Marketplace, logg))
	})

	r.Route("/api/v1/registrations", func(r chi.Router) {
		r.Use(middleware.IntakeRateLimit(cfg.IntakeRateLimit, p.Redis, logg))
		r.Post("/vendor-applications", controllers.SubmitVendorApplication(p.Registrations, logg))
		r.Post("/cipc", controllers.SubmitCipcRegistration(p.Registrations, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionKey(logg))

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(p.Carts, logg))
			r.Delete("/", controllers.ClearCart(p.Carts, logg))
			r.Post("/items", controllers.AddCartItem(p.Carts, logg))
			r.Post("/items/{itemID}/increment", controllers.IncrementCartItem(p.Carts, logg))
			r.Post("/items/{itemID}/decrement", controllers.DecrementCartItem(p.Carts, logg))
			r.Delete("/items/{itemID}", controllers.RemoveCartItem(p.Carts, logg))
		})

		r.Route("/api/v1/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(p.Wishlists, logg))
			r.Delete("/", controllers.ClearWishlist(p.Wishlists, logg))
			r.Post("/toggle", controllers.ToggleWishlistItem(p.Wishlists, logg))
			r.Delete("/items/{itemID}", controllers.RemoveWishlistItem(p.Wishlists, logg))
		})
	})

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("vendor", logg))
			r.Get("/vendor", controllers.VendorDashboard(p.Dashboard, logg))
			r.Get("/vendor/catalog", controllers.VendorCatalog(p.Dashboard, logg))
			r.Get("/vendor/orders", controllers.VendorOrders(p.Dashboard, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("admin", logg))
			r.Get("/admin", controllers.AdminDashboard(p.Dashboard, logg))
			r.Get("/admin/vendors", controllers.AdminVendorSummaries(p.Dashboard, logg))
		})
	})

	return r
}
