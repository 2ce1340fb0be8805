package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/aidex-platform/aidex-server/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Get("/donors", h.Donors)

		r.Route("/users", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.Register)
			r.Get("/", h.Users)
			r.Get("/me", h.Me)
			r.Put("/me", h.UpdateProfile)
			r.Patch("/{email}", h.SetUserRoleStatus)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/pending", h.PendingRequests)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)
				r.Post("/", h.CreateRequest)
				r.Get("/", h.Requests)
				r.Get("/my", h.MyRequests)
				r.Get("/{id}", h.Request)
				r.Put("/{id}", h.EditRequest)
				r.Delete("/{id}", h.DeleteRequest)
				r.Post("/{id}/accept", h.AcceptRequest)
				r.Patch("/{id}/status", h.UpdateRequestStatus)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/checkout/callback", h.CheckoutCallback)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)
				r.Post("/checkout", h.CreateCheckout)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/funds", h.Funds)
			r.Get("/statistics", h.Statistics)
		})
	})

	return mux
}
