package http

import (
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GenerateRates(w http.ResponseWriter, r *http.Request) {
	var req generateRatesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	startDay, ok := parseDayParam(w, "start_day", req.StartDay)
	if !ok {
		return
	}
	endDay, ok := parseDayParam(w, "end_day", req.EndDay)
	if !ok {
		return
	}

	output, err := h.Engine.GenerateRates(r.Context(), &ratesdto.GenerateRatesInput{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		StartDay:   startDay,
		EndDay:     endDay,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := generateRatesResponse{
		Rates:   make([]dailyRateResponse, len(output.Rates)),
		Skipped: make([]skippedDayResponse, len(output.Skipped)),
		Failed:  make([]failedDayResponse, len(output.Failed)),
	}
	for i, rate := range output.Rates {
		resp.Rates[i] = toDailyRateResponse(rate)
	}
	for i, s := range output.Skipped {
		resp.Skipped[i] = skippedDayResponse{Day: s.Day.String(), Reason: s.Reason}
	}
	for i, f := range output.Failed {
		resp.Failed[i] = failedDayResponse{Day: f.Day.String(), Error: f.Error}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelID")
	roomTypeID := chi.URLParam(r, "roomTypeID")

	checkIn, ok := parseDayParam(w, "check_in", r.URL.Query().Get("check_in"))
	if !ok {
		return
	}
	checkOut, ok := parseDayParam(w, "check_out", r.URL.Query().Get("check_out"))
	if !ok {
		return
	}

	rates, err := h.Engine.GetRatesForDateRange(hotelID, roomTypeID, checkIn, checkOut)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make([]dailyRateResponse, len(rates))
	for i, rate := range rates {
		resp[i] = toDailyRateResponse(rate)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) QuoteStay(w http.ResponseWriter, r *http.Request) {
	var req quoteStayRequest
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

	quote, err := h.Engine.QuoteStay(r.Context(), &ratesdto.QuoteStayInput{
		HotelID:    req.HotelID,
		RoomID:     req.RoomID,
		RoomTypeID: req.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		MealPlan:   mealPlan,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStayQuoteResponse(quote))
}

func (h *Handler) SetManualRate(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelID")
	roomTypeID := chi.URLParam(r, "roomTypeID")
	day, ok := parseDayParam(w, "day", chi.URLParam(r, "day"))
	if !ok {
		return
	}

	var req manualRateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.DailyRateRepo.SetManualRate(hotelID, roomTypeID, day, req.Rate); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) ClearManualRate(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelID")
	roomTypeID := chi.URLParam(r, "roomTypeID")
	day, ok := parseDayParam(w, "day", chi.URLParam(r, "day"))
	if !ok {
		return
	}

	if err := h.DailyRateRepo.ClearManualOverride(hotelID, roomTypeID, day); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
