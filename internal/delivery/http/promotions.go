package http

import (
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateGapPromotion(w http.ResponseWriter, r *http.Request) {
	var req gapPromotionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	day, ok := parseDayParam(w, "day", req.Day)
	if !ok {
		return
	}

	promo := &domain.RoomGapPromotion{
		RoomID:       req.RoomID,
		Day:          day,
		DiscountRate: req.DiscountRate,
	}
	if err := h.Promotions.CreatePromotion(promo); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toGapPromotionResponse(promo))
}

func (h *Handler) DeleteGapPromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.Promotions.DeletePromotion(chi.URLParam(r, "promoID")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) ListGapPromotions(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDayParam(w, "from", r.URL.Query().Get("from"))
	if !ok {
		return
	}
	to, ok := parseDayParam(w, "to", r.URL.Query().Get("to"))
	if !ok {
		return
	}

	promos, err := h.Promotions.ListByRoom(chi.URLParam(r, "roomID"), from, to)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make([]gapPromotionResponse, len(promos))
	for i, promo := range promos {
		resp[i] = toGapPromotionResponse(promo)
	}
	writeJSON(w, http.StatusOK, resp)
}
