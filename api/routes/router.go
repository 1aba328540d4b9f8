package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tcgperu/storefront-backend/api/controllers"
	cartcontrollers "github.com/tcgperu/storefront-backend/api/controllers/cart"
	catalogcontrollers "github.com/tcgperu/storefront-backend/api/controllers/catalog"
	"github.com/tcgperu/storefront-backend/api/middleware"
	cartsvc "github.com/tcgperu/storefront-backend/internal/cart"
	catalogsvc "github.com/tcgperu/storefront-backend/internal/catalog"
	"github.com/tcgperu/storefront-backend/pkg/config"
	"github.com/tcgperu/storefront-backend/pkg/logger"
	"github.com/tcgperu/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	index *catalogsvc.Index,
	carts *cartsvc.Registry,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, index))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", catalogcontrollers.CatalogList(index, logg))
		r.Post("/visibility", catalogcontrollers.CatalogVisibility(index, logg))
		r.Get("/{itemID}", catalogcontrollers.CatalogDetail(index, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.Session(logg))
		r.Get("/", cartcontrollers.CartFetch(carts, logg))
		r.Delete("/", cartcontrollers.CartClear(carts, logg))
		r.Post("/items", cartcontrollers.CartAddItem(carts, index, logg))
		r.Patch("/items/{itemID}", cartcontrollers.CartChangeQuantity(carts, logg))
		r.Delete("/items/{itemID}", cartcontrollers.CartRemoveItem(carts, logg))
		r.Post("/checkout", cartcontrollers.CartCheckout(carts, cfg.Checkout, logg))
	})

	return r
}
