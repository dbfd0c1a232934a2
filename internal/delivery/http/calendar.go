package http

import (
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) UpsertOpenDay(w http.ResponseWriter, r *http.Request) {
	var req openDayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	day, ok := parseDayParam(w, "day", req.Day)
	if !ok {
		return
	}

	openDay := &domain.OpenDay{
		HotelID:    req.HotelID,
		Day:        day,
		IsClosed:   req.IsClosed,
		IsHoliday:  req.IsHoliday,
		FixedPrice: req.FixedPrice,
		Notes:      req.Notes,
	}
	if err := h.Calendar.UpsertOpenDay(openDay); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toOpenDayResponse(openDay))
}

func (h *Handler) GetOpenDay(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDayParam(w, "day", chi.URLParam(r, "day"))
	if !ok {
		return
	}

	openDay, err := h.Calendar.GetOpenDay(chi.URLParam(r, "hotelID"), day)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOpenDayResponse(openDay))
}

func (h *Handler) ListOpenDays(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDayParam(w, "from", r.URL.Query().Get("from"))
	if !ok {
		return
	}
	to, ok := parseDayParam(w, "to", r.URL.Query().Get("to"))
	if !ok {
		return
	}

	openDays, err := h.Calendar.GetOpenDays(chi.URLParam(r, "hotelID"), from, to)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make([]openDayResponse, len(openDays))
	for i, openDay := range openDays {
		resp[i] = toOpenDayResponse(openDay)
	}
	writeJSON(w, http.StatusOK, resp)
}
