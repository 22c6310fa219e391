package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/auth"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
)

// NewRouter assembles the API surface. Menu browsing, registration and
// feedback are open; cart, checkout, order history and the owner
// dashboard all need an authenticated session.
func NewRouter(svc service.Storefront, tokens *auth.TokenManager, requestTimeout time.Duration) http.Handler {
	authHandler := NewAuthHandler(svc)
	menuHandler := NewMenuHandler(svc)
	cartHandler := NewCartHandler(svc)
	checkoutHandler := NewCheckoutHandler(svc)
	ordersHandler := NewOrdersHandler(svc)
	dashboardHandler := NewDashboardHandler(svc)
	feedbackHandler := NewFeedbackHandler(svc)

	requireSession := SessionMiddleware(tokens)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)
		r.With(requireSession).Post("/auth/logout", authHandler.Logout)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.List)
			r.Get("/categories", menuHandler.Categories)
			r.Get("/{item_id}", menuHandler.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{item_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{item_id}", cartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/quote", checkoutHandler.Quote)
			r.Post("/", checkoutHandler.PlaceOrder)
		})

		r.With(requireSession).Get("/orders", ordersHandler.List)

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/", dashboardHandler.Stats)
			r.Put("/orders/{order_id}/status", dashboardHandler.UpdateStatus)
		})

		r.Post("/feedback", feedbackHandler.Submit)
	})

	return r
}
