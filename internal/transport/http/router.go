package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route behind CORS, request logging and panic
// recovery.
func NewRouter(checkouts Checkouter, authorizations Authorizations, corsOrigins []string, logger *slog.Logger, checks ...HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HandleHealth(checks...))

	r.Route("/authorizations", func(r chi.Router) {
		r.Post("/", HandleStartAuthorization(authorizations))
		r.Get("/{authorizationID}", HandleGetAuthorization(authorizations))
		r.Post("/{authorizationID}/verify", HandleVerifyAuthorization(authorizations))
	})

	r.Post("/checkouts", HandleCreateCheckout(checkouts))
	r.Get("/receipts/{receiptID}", HandleGetReceipt(checkouts))

	return RequestLogger(CORS(corsOrigins, r), logger)
}
