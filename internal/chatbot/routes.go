package chatbot

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/ai", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
		r.Post("/fallback-only", h.HandleFallbackOnly)
		r.Get("/health", h.HandleHealth)
	})
}
