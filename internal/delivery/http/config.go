package http

import (
	"net/http"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) UpsertPricingConfig(w http.ResponseWriter, r *http.Request) {
	var req pricingConfigRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	steps := make([]domain.AnticipationStep, len(req.AnticipationSteps))
	for i, s := range req.AnticipationSteps {
		steps[i] = domain.AnticipationStep{Days: s.Days, Weight: s.Weight}
	}
	weekendDays := make([]time.Weekday, len(req.WeekendDays))
	for i, w := range req.WeekendDays {
		weekendDays[i] = time.Weekday(w)
	}

	cfg := &domain.PricingConfig{
		HotelID:                      req.HotelID,
		Enabled:                      req.Enabled,
		Strategy:                     domain.PricingStrategyKind(req.Strategy),
		AnticipationMode:             domain.AnticipationMode(req.AnticipationMode),
		AnticipationMaxDays:          req.AnticipationMaxDays,
		AnticipationSteps:            steps,
		AnticipationWeight:           req.AnticipationWeight,
		OccupancyWeight:              req.OccupancyWeight,
		WeekendWeight:                req.WeekendWeight,
		HolidayWeight:                req.HolidayWeight,
		WeatherWeight:                req.WeatherWeight,
		EventWeight:                  req.EventWeight,
		OccupancyMaxAdjustmentPct:    req.OccupancyMaxAdjustmentPct,
		AnticipationMaxAdjustmentPct: req.AnticipationMaxAdjustmentPct,
		WeekendMaxAdjustmentPct:      req.WeekendMaxAdjustmentPct,
		HolidayMaxAdjustmentPct:      req.HolidayMaxAdjustmentPct,
		IdealOccupancyPct:            req.IdealOccupancyPct,
		WeekendDays:                  weekendDays,
		MaxAdjustmentPct:             req.MaxAdjustmentPct,
		RoundingMultiple:             req.RoundingMultiple,
		RoundingMode:                 domain.RoundingMode(req.RoundingMode),
		RespectManualOverrides:       req.RespectManualOverrides,
	}

	if err := h.Configs.UpsertConfig(cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toPricingConfigResponse(cfg))
}

func (h *Handler) GetPricingConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Configs.GetConfig(chi.URLParam(r, "hotelID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPricingConfigResponse(cfg))
}
