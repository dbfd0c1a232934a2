package http

import (
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	bookingdto "github.com/camino-stays/pricing-service/internal/usecase/dto/booking"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	checkIn, ok := parseDayParam(w, "check_in", req.CheckIn)
	if !ok {
		return
	}
	checkOut, ok := parseDayParam(w, "check_out", req.CheckOut)
	if !ok {
		return
	}

	mealPlan := domain.MealPlan(req.MealPlan)
	if mealPlan == "" {
		mealPlan = domain.MealNone
	}

	output, err := h.Reservations.CreateReservation(r.Context(), &bookingdto.CreateReservationInput{
		HotelID:   req.HotelID,
		RoomID:    req.RoomID,
		GuestName: req.GuestName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		MealPlan:  mealPlan,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReservationResponse(output.Reservation, output.NightRates))
}

func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	output, err := h.Reservations.GetReservation(chi.URLParam(r, "reservationID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(output.Reservation, output.NightRates))
}

func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Reservations.CancelReservation(chi.URLParam(r, "reservationID")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
