package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/rates", func(r chi.Router) {
			r.Post("/generate", h.GenerateRates)
			r.Post("/quote", h.QuoteStay)
			r.Get("/{hotelID}/{roomTypeID}", h.GetRates)
			r.Put("/{hotelID}/{roomTypeID}/{day}/manual", h.SetManualRate)
			r.Delete("/{hotelID}/{roomTypeID}/{day}/manual", h.ClearManualRate)
		})

		r.Route("/seasons", func(r chi.Router) {
			r.Post("/", h.CreateSeasonBlock)
			r.Get("/{blockID}", h.GetSeasonBlock)
			r.Put("/{blockID}", h.UpdateSeasonBlock)
			r.Delete("/{blockID}", h.DeleteSeasonBlock)
			r.Post("/{blockID}/confirm", h.ConfirmSeasonBlock)
			r.Post("/{blockID}/demote", h.DemoteSeasonBlock)
		})

		r.Route("/hotels/{hotelID}", func(r chi.Router) {
			r.Get("/seasons", h.ListSeasonBlocks)

			r.Get("/pricing-config", h.GetPricingConfig)

			r.Get("/calendar", h.ListOpenDays)
			r.Get("/calendar/{day}", h.GetOpenDay)

			r.Get("/meal-rules", h.GetMealRule)
		})

		r.Put("/pricing-config", h.UpsertPricingConfig)
		r.Put("/calendar", h.UpsertOpenDay)
		r.Put("/meal-rules", h.UpsertMealRule)

		r.Route("/promotions", func(r chi.Router) {
			r.Post("/", h.CreateGapPromotion)
			r.Delete("/{promoID}", h.DeleteGapPromotion)
		})
		r.Get("/rooms/{roomID}/promotions", h.ListGapPromotions)

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", h.CreateReservation)
			r.Get("/{reservationID}", h.GetReservation)
			r.Post("/{reservationID}/cancel", h.CancelReservation)
		})
	})

	return r
}
