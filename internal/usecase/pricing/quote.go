package pricing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/camino-stays/pricing-service/internal/domain"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
)

// QuoteStay prices every billable night of [CheckIn, CheckOut) with the full
// breakdown: dynamic rate, meal surcharge for the requested plan, and the
// best gap promotion for the room-night. Closed nights make the whole quote
// fail; a stay cannot span a closure.
func (e *DefaultRateEngine) QuoteStay(ctx context.Context, input *ratesdto.QuoteStayInput) (*ratesdto.StayQuote, error) {
	nights := domain.Nights(input.CheckIn, input.CheckOut)
	if len(nights) == 0 {
		return nil, fmt.Errorf("check-out %s must be after check-in %s", input.CheckOut, input.CheckIn)
	}

	run := e.newRunContext(input.HotelID, input.RoomTypeID)
	quote := &ratesdto.StayQuote{Nights: make([]ratesdto.NightQuote, 0, len(nights))}

	for _, night := range nights {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		openDay := e.openDayOrNil(input.HotelID, night)
		if openDay != nil && openDay.IsClosed {
			return nil, fmt.Errorf("night %s: %w", night, domain.ErrDayClosed)
		}

		computed, err := e.computeDay(run, input.HotelID, input.RoomTypeID, night, openDay)
		if err != nil {
			return nil, err
		}

		nightQuote := ratesdto.NightQuote{
			Day:                    night,
			BaseRate:               computed.baseRate,
			DynamicRate:            computed.dynamic,
			OccupancyAdjustment:    adjustmentAmount(computed.baseRate, computed.breakdown.Occupancy),
			AnticipationAdjustment: adjustmentAmount(computed.baseRate, computed.breakdown.Anticipation),
			WeekendAdjustment:      adjustmentAmount(computed.baseRate, computed.breakdown.Weekend),
			HolidayAdjustment:      adjustmentAmount(computed.baseRate, computed.breakdown.Holiday),
			IsWeekend:              computed.isWeekend,
			IsHoliday:              computed.isHoliday,
		}

		serviceRate := computed.dynamic
		switch input.MealPlan {
		case domain.MealBreakfast:
			serviceRate = e.Meals.BreakfastPrice(input.HotelID, computed.dynamic)
		case domain.MealHalfBoard:
			serviceRate = e.Meals.HalfBoardPrice(input.HotelID, computed.dynamic)
		}
		nightQuote.ServiceSurcharge = serviceRate - computed.dynamic

		nightQuote.FinalRate = serviceRate
		if input.RoomID != "" {
			promo, err := e.Promotions.BestForRoomDay(input.RoomID, night)
			if err != nil {
				slog.Warn("gap promotion lookup failed",
					"room_id", input.RoomID, "day", night.String(), "error", err.Error())
			} else if promo != nil {
				nightQuote.FinalRate = promo.EffectiveRate(serviceRate)
				nightQuote.GapPromotionAmount = promo.Amount(serviceRate)
				e.Metrics.RecordGapPromotionApplied(input.HotelID)
			}
		}

		if nightQuote.FinalRate <= 0 {
			return nil, fmt.Errorf("night %s: final rate %d: %w", night, nightQuote.FinalRate, domain.ErrInvalidRate)
		}

		quote.Total += nightQuote.FinalRate
		quote.Nights = append(quote.Nights, nightQuote)
	}

	e.Metrics.RecordQuote(input.HotelID, string(input.MealPlan))
	return quote, nil
}

// adjustmentAmount converts a fractional adjustment into a signed minor-unit
// amount of the base rate.
func adjustmentAmount(baseRate int64, fraction float64) int64 {
	return ApplyAdjustment(baseRate, fraction) - baseRate
}
