package http

import (
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) UpsertMealRule(w http.ResponseWriter, r *http.Request) {
	var req mealRuleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rule := &domain.MealPricingRule{
		HotelID:        req.HotelID,
		BreakfastMode:  domain.AdjustMode(req.BreakfastMode),
		BreakfastValue: req.BreakfastValue,
		DinnerMode:     domain.AdjustMode(req.DinnerMode),
		DinnerValue:    req.DinnerValue,
	}
	if err := h.Meals.UpsertRule(rule); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toMealRuleResponse(rule))
}

func (h *Handler) GetMealRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.Meals.GetRule(chi.URLParam(r, "hotelID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMealRuleResponse(rule))
}
