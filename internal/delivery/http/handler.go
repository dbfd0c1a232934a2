package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/usecase"
	"github.com/camino-stays/pricing-service/internal/usecase/booking"
	"github.com/camino-stays/pricing-service/internal/usecase/pricing"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Handler holds every usecase the REST surface delegates to.
type Handler struct {
	Engine       pricing.RateEngine
	Configs      usecase.PricingConfigUsecase
	Seasons      usecase.SeasonUsecase
	Calendar     usecase.CalendarUsecase
	Promotions   usecase.GapPromotionUsecase
	Meals        usecase.MealUsecase
	Reservations booking.ReservationUsecase

	DailyRateRepo domain.DailyRateRepository
}

func NewHandler(
	engine pricing.RateEngine,
	configs usecase.PricingConfigUsecase,
	seasons usecase.SeasonUsecase,
	calendar usecase.CalendarUsecase,
	promotions usecase.GapPromotionUsecase,
	meals usecase.MealUsecase,
	reservations booking.ReservationUsecase,
	dailyRateRepo domain.DailyRateRepository) *Handler {

	return &Handler{
		Engine:        engine,
		Configs:       configs,
		Seasons:       seasons,
		Calendar:      calendar,
		Promotions:    promotions,
		Meals:         meals,
		Reservations:  reservations,
		DailyRateRepo: dailyRateRepo,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSeasonOverlap):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrManualOverride):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNoPriceConfigured):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrDayClosed):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidRate):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeAndValidate parses the JSON body into dst and runs struct validation.
// A false return means the error response is already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// parseDayParam parses a YYYY-MM-DD value. A false return means the error
// response is already written.
func parseDayParam(w http.ResponseWriter, name, value string) (domain.Day, bool) {
	day, err := domain.ParseDay(value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name+": expected YYYY-MM-DD")
		return domain.Day{}, false
	}
	return day, true
}
