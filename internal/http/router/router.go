package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/ecommerce-dashboard/docs"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/middleware"
)

var trustProxy bool

// SetTrustProxy makes the router take the client address from
// X-Forwarded-For / X-Real-IP. Only enable it behind a proxy that sets them,
// since rate limits and bans are keyed on that address.
func SetTrustProxy(trust bool) {
	trustProxy = trust
}

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/login", handlers.LoginHandler)

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(mw.RateLimit)
		r.Get("/bounds", handlers.GetBoundsHandler)
		r.Get("/metrics", handlers.GetDashboardMetricsHandler)
		r.Get("/rfm/histogram", handlers.GetRFMHistogramHandler)
		r.Get("/charts/{chart}.png", handlers.GetChartHandler)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(mw.RequireAdmin)
		r.Get("/bans", handlers.GetBansHandler)
		r.Delete("/bans/{target}", handlers.UnbanHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return r
}
