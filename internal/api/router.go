package api

import (
	"net/http"

	"loomline-be/internal/logger"
	"loomline-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter assembles the full middleware chain and route table.
func NewRouter(h *Handler, session *middleware.SessionMiddleware) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(session.Handler)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/carousel", h.Carousel)
		r.Get("/hero", h.Hero)
		r.Get("/alert", h.GetAlert)
		r.Get("/stats", h.Stats)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Post("/items", h.AddCartItem)
			r.Patch("/items/{productID}", h.UpdateCartItem)
			r.Delete("/items/{productID}", h.RemoveCartItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", h.GetCheckout)
			r.Post("/next", h.CheckoutNext)
			r.Post("/back", h.CheckoutBack)
			r.Put("/details", h.CheckoutDetails)
			r.Put("/shipping", h.CheckoutShipping)
		})
	})

	return r
}
