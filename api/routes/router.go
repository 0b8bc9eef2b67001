package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aryan-dudharejiya/savoria-backend/api/controllers"
	"github.com/aryan-dudharejiya/savoria-backend/api/middleware"
	"github.com/aryan-dudharejiya/savoria-backend/internal/catalog"
	"github.com/aryan-dudharejiya/savoria-backend/internal/contact"
	"github.com/aryan-dudharejiya/savoria-backend/internal/orders"
	"github.com/aryan-dudharejiya/savoria-backend/internal/pricing"
	"github.com/aryan-dudharejiya/savoria-backend/internal/reservations"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/config"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/logger"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/metrics"
	pkgredis "github.com/aryan-dudharejiya/savoria-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. Redis and Stripe
// are optional; their middlewares and endpoints degrade gracefully when nil.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           controllers.Pinger
	Redis        *pkgredis.Client
	HTTPMetrics  *metrics.HTTPMetrics
	Registry     *prometheus.Registry
	Catalog      catalog.Service
	Pricing      *pricing.Engine
	Orders       orders.Service
	Reservations reservations.Service
	Contact      contact.Service
	Stripe       controllers.PaymentIntentCreator
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	intakePolicy := middleware.NewIntakeRateLimitPolicy(
		"intake",
		cfg.Intake.Window,
		cfg.Intake.IPLimit,
	)

	// Assign through the interfaces only when a client exists so the
	// middlewares see a true nil and pass through.
	var cache controllers.Pinger
	var limiter middleware.RateLimiterStore
	var idemStore pkgredis.IdempotencyStore
	if deps.Redis != nil {
		cache = deps.Redis
		limiter = deps.Redis
		idemStore = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, cache, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.MenuList(deps.Catalog, logg))
			r.Get("/category/{category}", controllers.MenuByCategory(deps.Catalog, logg))
			r.Get("/search/{query}", controllers.MenuSearch(deps.Catalog, logg))
			r.Get("/{id}", controllers.MenuDetail(deps.Catalog, logg))
		})

		r.Get("/reviews", controllers.ReviewList(deps.Catalog, logg))

		r.Post("/cart/quote", controllers.CartQuote(deps.Pricing, logg))

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.Idempotency(idemStore, cfg.Idempotent.TTL, logg)).
				Post("/", controllers.OrderCreate(deps.Orders, logg))
			r.Get("/tracking/{trackingId}", controllers.OrderByTrackingID(deps.Orders, logg))
			r.Get("/phone/{phoneNumber}", controllers.OrdersByPhone(deps.Orders, logg))
			r.Patch("/{trackingId}", controllers.OrderUpdate(deps.Orders, logg))
		})

		r.Route("/reservations", func(r chi.Router) {
			r.With(middleware.IntakeRateLimit(intakePolicy, limiter, logg)).
				Post("/", controllers.ReservationCreate(deps.Reservations, logg))
			r.Get("/", controllers.ReservationList(deps.Reservations, logg))
		})

		r.With(middleware.IntakeRateLimit(intakePolicy, limiter, logg)).
			Post("/contact", controllers.ContactCreate(deps.Contact, logg))

		r.Post("/create-payment-intent", controllers.PaymentIntentCreate(deps.Stripe, logg))
	})

	return r
}
