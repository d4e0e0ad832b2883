package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/olehsv/videolanding/internal/auth"
	"github.com/olehsv/videolanding/internal/middleware"
)

// NewRouter constructs and returns the HTTP handler serving the site API.
//
// Routes:
//
//	POST   /api/inquiry      → inquiryHandler.Submit (public)
//	GET    /api/videos       → catalogHandler.List (public)
//	POST   /api/login        → authHandler.Login
//	POST   /api/logout       → authHandler.Logout
//	POST   /api/videos       → catalogHandler.Add (admin session)
//	DELETE /api/videos/{id}  → catalogHandler.Remove (admin session)
//
// Middleware chain: JSON content-type enforcement on the API subtree,
// request logging everywhere, admin-session auth on the mutation group.
func NewRouter(
	inquiryHandler *InquiryHandler,
	catalogHandler *CatalogHandler,
	authHandler *AuthHandler,
	sessions *auth.Sessions,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Only allow requests with Content-Type: application/json
		r.Use(chiMiddleware.AllowContentType("application/json"))

		// Public endpoints
		r.Post("/inquiry", inquiryHandler.Submit)
		r.Get("/videos", catalogHandler.List)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Protected group: requires a live admin session
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(sessions))
			r.Post("/videos", catalogHandler.Add)
			r.Delete("/videos/{id}", catalogHandler.Remove)
		})
	})

	return r
}
