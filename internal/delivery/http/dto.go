package http

import (
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
)

type generateRatesRequest struct {
	HotelID    string `json:"hotel_id" validate:"required"`
	RoomTypeID string `json:"room_type_id" validate:"required"`
	StartDay   string `json:"start_day" validate:"required"`
	EndDay     string `json:"end_day" validate:"required"`
}

type skippedDayResponse struct {
	Day    string `json:"day"`
	Reason string `json:"reason"`
}

type failedDayResponse struct {
	Day   string `json:"day"`
	Error string `json:"error"`
}

type dailyRateResponse struct {
	HotelID        string `json:"hotel_id"`
	RoomTypeID     string `json:"room_type_id"`
	Day            string `json:"day"`
	BaseRate       int64  `json:"base_rate"`
	DynamicRate    int64  `json:"dynamic_rate"`
	ManualOverride bool   `json:"manual_override"`
}

type generateRatesResponse struct {
	Rates   []dailyRateResponse  `json:"rates"`
	Skipped []skippedDayResponse `json:"skipped"`
	Failed  []failedDayResponse  `json:"failed"`
}

type quoteStayRequest struct {
	HotelID    string `json:"hotel_id" validate:"required"`
	RoomID     string `json:"room_id"`
	RoomTypeID string `json:"room_type_id" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
	MealPlan   string `json:"meal_plan" validate:"omitempty,oneof=NONE BREAKFAST HALF_BOARD"`
}

type nightQuoteResponse struct {
	Day string `json:"day"`

	BaseRate    int64 `json:"base_rate"`
	DynamicRate int64 `json:"dynamic_rate"`
	FinalRate   int64 `json:"final_rate"`

	OccupancyAdjustment    int64 `json:"occupancy_adjustment"`
	AnticipationAdjustment int64 `json:"anticipation_adjustment"`
	WeekendAdjustment      int64 `json:"weekend_adjustment"`
	HolidayAdjustment      int64 `json:"holiday_adjustment"`

	ServiceSurcharge   int64 `json:"service_surcharge"`
	GapPromotionAmount int64 `json:"gap_promotion_amount"`

	IsWeekend bool `json:"is_weekend"`
	IsHoliday bool `json:"is_holiday"`
}

type stayQuoteResponse struct {
	Nights []nightQuoteResponse `json:"nights"`
	Total  int64                `json:"total"`
}

type manualRateRequest struct {
	Rate int64 `json:"rate" validate:"required,gt=0"`
}

type seasonRoomPriceRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	BaseRate   int64  `json:"base_rate" validate:"required,gt=0"`
}

type seasonServiceAdjustmentRequest struct {
	ServiceTypeID string  `json:"service_type_id" validate:"required"`
	Mode          string  `json:"mode" validate:"required,oneof=FIXED PERCENTAGE"`
	Value         float64 `json:"value"`
	Enabled       bool    `json:"enabled"`
}

type seasonBlockRequest struct {
	HotelID  string `json:"hotel_id" validate:"required"`
	Name     string `json:"name"`
	StartDay string `json:"start_day" validate:"required"`
	EndDay   string `json:"end_day" validate:"required"`

	RoomPrices         []seasonRoomPriceRequest         `json:"room_prices" validate:"dive"`
	ServiceAdjustments []seasonServiceAdjustmentRequest `json:"service_adjustments" validate:"dive"`
}

type seasonRoomPriceResponse struct {
	RoomTypeID string `json:"room_type_id"`
	BaseRate   int64  `json:"base_rate"`
}

type seasonServiceAdjustmentResponse struct {
	ServiceTypeID string  `json:"service_type_id"`
	Mode          string  `json:"mode"`
	Value         float64 `json:"value"`
	Enabled       bool    `json:"enabled"`
}

type seasonBlockResponse struct {
	ID       string `json:"id"`
	HotelID  string `json:"hotel_id"`
	Name     string `json:"name"`
	StartDay string `json:"start_day"`
	EndDay   string `json:"end_day"`
	Status   string `json:"status"`

	RoomPrices         []seasonRoomPriceResponse         `json:"room_prices"`
	ServiceAdjustments []seasonServiceAdjustmentResponse `json:"service_adjustments"`

	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type anticipationStepRequest struct {
	Days   int     `json:"days" validate:"gte=0"`
	Weight float64 `json:"weight" validate:"gte=0,lte=1"`
}

type pricingConfigRequest struct {
	HotelID string `json:"hotel_id" validate:"required"`
	Enabled bool   `json:"enabled"`

	Strategy string `json:"strategy" validate:"omitempty,oneof=PER_FACTOR WEIGHTED_SCORE"`

	AnticipationMode    string                    `json:"anticipation_mode" validate:"omitempty,oneof=CONTINUOUS STEPPED"`
	AnticipationMaxDays int                       `json:"anticipation_max_days" validate:"gte=0"`
	AnticipationSteps   []anticipationStepRequest `json:"anticipation_steps" validate:"dive"`

	AnticipationWeight float64 `json:"anticipation_weight" validate:"gte=0,lte=1"`
	OccupancyWeight    float64 `json:"occupancy_weight" validate:"gte=0,lte=1"`
	WeekendWeight      float64 `json:"weekend_weight" validate:"gte=0,lte=1"`
	HolidayWeight      float64 `json:"holiday_weight" validate:"gte=0,lte=1"`
	WeatherWeight      float64 `json:"weather_weight" validate:"gte=0,lte=1"`
	EventWeight        float64 `json:"event_weight" validate:"gte=0,lte=1"`

	OccupancyMaxAdjustmentPct    float64 `json:"occupancy_max_adjustment_pct" validate:"gte=0,lte=100"`
	AnticipationMaxAdjustmentPct float64 `json:"anticipation_max_adjustment_pct" validate:"gte=0,lte=100"`
	WeekendMaxAdjustmentPct      float64 `json:"weekend_max_adjustment_pct" validate:"gte=0,lte=100"`
	HolidayMaxAdjustmentPct      float64 `json:"holiday_max_adjustment_pct" validate:"gte=0,lte=100"`

	IdealOccupancyPct float64 `json:"ideal_occupancy_pct" validate:"gte=0,lte=100"`
	WeekendDays       []int   `json:"weekend_days" validate:"dive,gte=0,lte=6"`
	MaxAdjustmentPct  float64 `json:"max_adjustment_pct" validate:"gte=0,lte=100"`

	RoundingMultiple int64  `json:"rounding_multiple"`
	RoundingMode     string `json:"rounding_mode" validate:"omitempty,oneof=ceil floor nearest"`

	RespectManualOverrides bool `json:"respect_manual_overrides"`
}

type pricingConfigResponse struct {
	HotelID string `json:"hotel_id"`
	Enabled bool   `json:"enabled"`

	Strategy string `json:"strategy"`

	AnticipationMode    string                    `json:"anticipation_mode"`
	AnticipationMaxDays int                       `json:"anticipation_max_days"`
	AnticipationSteps   []anticipationStepRequest `json:"anticipation_steps"`

	AnticipationWeight float64 `json:"anticipation_weight"`
	OccupancyWeight    float64 `json:"occupancy_weight"`
	WeekendWeight      float64 `json:"weekend_weight"`
	HolidayWeight      float64 `json:"holiday_weight"`
	WeatherWeight      float64 `json:"weather_weight"`
	EventWeight        float64 `json:"event_weight"`

	OccupancyMaxAdjustmentPct    float64 `json:"occupancy_max_adjustment_pct"`
	AnticipationMaxAdjustmentPct float64 `json:"anticipation_max_adjustment_pct"`
	WeekendMaxAdjustmentPct      float64 `json:"weekend_max_adjustment_pct"`
	HolidayMaxAdjustmentPct      float64 `json:"holiday_max_adjustment_pct"`

	IdealOccupancyPct float64 `json:"ideal_occupancy_pct"`
	WeekendDays       []int   `json:"weekend_days"`
	MaxAdjustmentPct  float64 `json:"max_adjustment_pct"`

	RoundingMultiple int64  `json:"rounding_multiple"`
	RoundingMode     string `json:"rounding_mode"`

	RespectManualOverrides bool `json:"respect_manual_overrides"`

	UpdatedAt time.Time `json:"updated_at"`
}

type openDayRequest struct {
	HotelID    string `json:"hotel_id" validate:"required"`
	Day        string `json:"day" validate:"required"`
	IsClosed   bool   `json:"is_closed"`
	IsHoliday  bool   `json:"is_holiday"`
	FixedPrice *int64 `json:"fixed_price" validate:"omitempty,gt=0"`
	Notes      string `json:"notes"`
}

type openDayResponse struct {
	HotelID    string `json:"hotel_id"`
	Day        string `json:"day"`
	IsClosed   bool   `json:"is_closed"`
	IsHoliday  bool   `json:"is_holiday"`
	FixedPrice *int64 `json:"fixed_price,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type gapPromotionRequest struct {
	RoomID       string  `json:"room_id" validate:"required"`
	Day          string  `json:"day" validate:"required"`
	DiscountRate float64 `json:"discount_rate" validate:"required,gt=0,lte=1"`
}

type gapPromotionResponse struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	Day          string    `json:"day"`
	DiscountRate float64   `json:"discount_rate"`
	CreatedAt    time.Time `json:"created_at"`
}

type mealRuleRequest struct {
	HotelID string `json:"hotel_id" validate:"required"`

	BreakfastMode  string  `json:"breakfast_mode" validate:"required,oneof=FIXED PERCENTAGE"`
	BreakfastValue float64 `json:"breakfast_value" validate:"gte=0"`

	DinnerMode  string  `json:"dinner_mode" validate:"required,oneof=FIXED PERCENTAGE"`
	DinnerValue float64 `json:"dinner_value" validate:"gte=0"`
}

type mealRuleResponse struct {
	HotelID string `json:"hotel_id"`

	BreakfastMode  string  `json:"breakfast_mode"`
	BreakfastValue float64 `json:"breakfast_value"`

	DinnerMode  string  `json:"dinner_mode"`
	DinnerValue float64 `json:"dinner_value"`
}

type createReservationRequest struct {
	HotelID   string `json:"hotel_id" validate:"required"`
	RoomID    string `json:"room_id" validate:"required"`
	GuestName string `json:"guest_name" validate:"required"`
	CheckIn   string `json:"check_in" validate:"required"`
	CheckOut  string `json:"check_out" validate:"required"`
	MealPlan  string `json:"meal_plan" validate:"omitempty,oneof=NONE BREAKFAST HALF_BOARD"`
}

type reservationResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	HotelID   string `json:"hotel_id"`
	RoomID    string `json:"room_id"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	MealPlan  string `json:"meal_plan"`
	Status    string `json:"status"`
	TotalRate int64  `json:"total_rate"`

	NightRates []nightQuoteResponse `json:"night_rates"`
}

func toDailyRateResponse(rate *domain.DailyRoomRate) dailyRateResponse {
	return dailyRateResponse{
		HotelID:        rate.HotelID,
		RoomTypeID:     rate.RoomTypeID,
		Day:            rate.Day.String(),
		BaseRate:       rate.BaseRate,
		DynamicRate:    rate.DynamicRate,
		ManualOverride: rate.ManualOverride,
	}
}

func toStayQuoteResponse(quote *ratesdto.StayQuote) stayQuoteResponse {
	nights := make([]nightQuoteResponse, len(quote.Nights))
	for i, n := range quote.Nights {
		nights[i] = nightQuoteResponse{
			Day:                    n.Day.String(),
			BaseRate:               n.BaseRate,
			DynamicRate:            n.DynamicRate,
			FinalRate:              n.FinalRate,
			OccupancyAdjustment:    n.OccupancyAdjustment,
			AnticipationAdjustment: n.AnticipationAdjustment,
			WeekendAdjustment:      n.WeekendAdjustment,
			HolidayAdjustment:      n.HolidayAdjustment,
			ServiceSurcharge:       n.ServiceSurcharge,
			GapPromotionAmount:     n.GapPromotionAmount,
			IsWeekend:              n.IsWeekend,
			IsHoliday:              n.IsHoliday,
		}
	}
	return stayQuoteResponse{Nights: nights, Total: quote.Total}
}

func toSeasonBlockResponse(block *domain.SeasonBlock) seasonBlockResponse {
	prices := make([]seasonRoomPriceResponse, len(block.RoomPrices))
	for i, p := range block.RoomPrices {
		prices[i] = seasonRoomPriceResponse{RoomTypeID: p.RoomTypeID, BaseRate: p.BaseRate}
	}
	adjustments := make([]seasonServiceAdjustmentResponse, len(block.ServiceAdjustments))
	for i, a := range block.ServiceAdjustments {
		adjustments[i] = seasonServiceAdjustmentResponse{
			ServiceTypeID: a.ServiceTypeID,
			Mode:          string(a.Mode),
			Value:         a.Value,
			Enabled:       a.Enabled,
		}
	}
	return seasonBlockResponse{
		ID:                 block.ID,
		HotelID:            block.HotelID,
		Name:               block.Name,
		StartDay:           block.StartDay.String(),
		EndDay:             block.EndDay.String(),
		Status:             string(block.Status),
		RoomPrices:         prices,
		ServiceAdjustments: adjustments,
		LastSavedAt:        block.LastSavedAt,
		CreatedAt:          block.CreatedAt,
		UpdatedAt:          block.UpdatedAt,
	}
}

func toPricingConfigResponse(cfg *domain.PricingConfig) pricingConfigResponse {
	steps := make([]anticipationStepRequest, len(cfg.AnticipationSteps))
	for i, s := range cfg.AnticipationSteps {
		steps[i] = anticipationStepRequest{Days: s.Days, Weight: s.Weight}
	}
	weekendDays := make([]int, len(cfg.WeekendDays))
	for i, w := range cfg.WeekendDays {
		weekendDays[i] = int(w)
	}
	return pricingConfigResponse{
		HotelID:                      cfg.HotelID,
		Enabled:                      cfg.Enabled,
		Strategy:                     string(cfg.Strategy),
		AnticipationMode:             string(cfg.AnticipationMode),
		AnticipationMaxDays:          cfg.AnticipationMaxDays,
		AnticipationSteps:            steps,
		AnticipationWeight:           cfg.AnticipationWeight,
		OccupancyWeight:              cfg.OccupancyWeight,
		WeekendWeight:                cfg.WeekendWeight,
		HolidayWeight:                cfg.HolidayWeight,
		WeatherWeight:                cfg.WeatherWeight,
		EventWeight:                  cfg.EventWeight,
		OccupancyMaxAdjustmentPct:    cfg.OccupancyMaxAdjustmentPct,
		AnticipationMaxAdjustmentPct: cfg.AnticipationMaxAdjustmentPct,
		WeekendMaxAdjustmentPct:      cfg.WeekendMaxAdjustmentPct,
		HolidayMaxAdjustmentPct:      cfg.HolidayMaxAdjustmentPct,
		IdealOccupancyPct:            cfg.IdealOccupancyPct,
		WeekendDays:                  weekendDays,
		MaxAdjustmentPct:             cfg.MaxAdjustmentPct,
		RoundingMultiple:             cfg.RoundingMultiple,
		RoundingMode:                 string(cfg.RoundingMode),
		RespectManualOverrides:       cfg.RespectManualOverrides,
		UpdatedAt:                    cfg.UpdatedAt,
	}
}

func toOpenDayResponse(openDay *domain.OpenDay) openDayResponse {
	return openDayResponse{
		HotelID:    openDay.HotelID,
		Day:        openDay.Day.String(),
		IsClosed:   openDay.IsClosed,
		IsHoliday:  openDay.IsHoliday,
		FixedPrice: openDay.FixedPrice,
		Notes:      openDay.Notes,
	}
}

func toGapPromotionResponse(promo *domain.RoomGapPromotion) gapPromotionResponse {
	return gapPromotionResponse{
		ID:           promo.ID,
		RoomID:       promo.RoomID,
		Day:          promo.Day.String(),
		DiscountRate: promo.DiscountRate,
		CreatedAt:    promo.CreatedAt,
	}
}

func toMealRuleResponse(rule *domain.MealPricingRule) mealRuleResponse {
	return mealRuleResponse{
		HotelID:        rule.HotelID,
		BreakfastMode:  string(rule.BreakfastMode),
		BreakfastValue: rule.BreakfastValue,
		DinnerMode:     string(rule.DinnerMode),
		DinnerValue:    rule.DinnerValue,
	}
}

func toReservationResponse(res *domain.Reservation, nights []*domain.ReservationNightRate) reservationResponse {
	nightResponses := make([]nightQuoteResponse, len(nights))
	for i, n := range nights {
		nightResponses[i] = nightQuoteResponse{
			Day:                    n.Day.String(),
			BaseRate:               n.BaseRate,
			DynamicRate:            n.DynamicRate,
			FinalRate:              n.FinalRate,
			OccupancyAdjustment:    n.OccupancyAdjustment,
			AnticipationAdjustment: n.AnticipationAdjustment,
			WeekendAdjustment:      n.WeekendAdjustment,
			HolidayAdjustment:      n.HolidayAdjustment,
			ServiceSurcharge:       n.ServiceSurcharge,
			GapPromotionAmount:     n.GapPromotionAmount,
			IsWeekend:              n.IsWeekend,
			IsHoliday:              n.IsHoliday,
		}
	}
	return reservationResponse{
		ID:         res.ID,
		Code:       res.Code,
		HotelID:    res.HotelID,
		RoomID:     res.RoomID,
		GuestName:  res.GuestName,
		CheckIn:    res.CheckIn.String(),
		CheckOut:   res.CheckOut.String(),
		MealPlan:   string(res.MealPlan),
		Status:     string(res.Status),
		TotalRate:  res.TotalRate,
		NightRates: nightResponses,
	}
}
