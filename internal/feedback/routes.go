package feedback

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/feedback", func(r chi.Router) {
		r.Get("/{customerId}", h.HandleListForCustomer)
		r.Post("/{customerId}", h.HandleAdd)
		r.Put("/{feedbackId}", h.HandleUpdate)
		r.Patch("/{feedbackId}", h.HandleUpdate)
		r.Delete("/{feedbackId}", h.HandleDelete)
	})
}
