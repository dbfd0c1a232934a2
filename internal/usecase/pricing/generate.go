package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/kafka"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
	"github.com/shopspring/decimal"
)

// runContext carries the per-run state resolved once before iterating days.
type runContext struct {
	cfg        *domain.PricingConfig
	strategy   Strategy
	multiplier float64
	today      domain.Day
}

func (e *DefaultRateEngine) newRunContext(hotelID, roomTypeID string) *runContext {
	run := &runContext{multiplier: 1, today: domain.Today()}

	cfg, err := e.ConfigRepo.GetByHotelID(hotelID)
	if err != nil {
		// Missing config degrades to zero adjustments; it never blocks
		// rate computation.
		slog.Warn("no pricing config for hotel, adjustments disabled",
			"hotel_id", hotelID, "error", err.Error())
		e.Metrics.RecordConfigMissing(hotelID)
	} else {
		run.cfg = cfg
	}
	run.strategy = StrategyFor(run.cfg)

	if roomTypeID != "" {
		roomType, err := e.RoomTypeRepo.GetByID(roomTypeID)
		if err != nil {
			slog.Warn("room type lookup failed, multiplier defaults to 1",
				"room_type_id", roomTypeID, "error", err.Error())
		} else if roomType.Multiplier > 0 {
			run.multiplier = roomType.Multiplier
		}
	}
	return run
}

// dayRate is one day's computed pricing before persistence.
type dayRate struct {
	day       domain.Day
	baseRate  int64
	dynamic   int64
	breakdown AdjustmentBreakdown
	isWeekend bool
	isHoliday bool
	fixed     bool
}

// computeDay prices a single day. openDay may be nil.
func (e *DefaultRateEngine) computeDay(run *runContext, hotelID, roomTypeID string, day domain.Day, openDay *domain.OpenDay) (*dayRate, error) {
	if openDay != nil && openDay.FixedPrice != nil {
		return &dayRate{
			day:      day,
			baseRate: *openDay.FixedPrice,
			dynamic:  *openDay.FixedPrice,
			fixed:    true,
		}, nil
	}

	seasonBase, err := e.Seasons.BasePrice(hotelID, day, roomTypeID)
	if err != nil {
		return nil, err
	}
	baseRate := applyMultiplier(seasonBase, run.multiplier)

	isWeekend := run.cfg.IsWeekend(day)
	result := &dayRate{
		day:       day,
		baseRate:  baseRate,
		isWeekend: isWeekend,
		isHoliday: e.Holidays.IsLongWeekendOrHoliday(hotelID, day, isWeekend),
	}

	result.breakdown = run.strategy.Compute(run.cfg, FactorInput{
		Day:                day,
		DaysUntil:          run.today.DaysUntil(day),
		OccupancyPct:       e.Occupancy.RealOccupancy(hotelID, day),
		AnticipationFactor: AnticipationFactor(run.cfg, run.today.DaysUntil(day)),
		IsWeekend:          result.isWeekend,
		IsHoliday:          result.isHoliday,
	})

	dynamic := baseRate
	if run.cfg != nil && run.cfg.Enabled {
		dynamic = ApplyAdjustment(baseRate, result.breakdown.Total())
	}
	if run.cfg != nil {
		dynamic = RoundPrice(dynamic, run.cfg.RoundingMultiple, run.cfg.RoundingMode)
	}
	if dynamic <= 0 {
		return nil, fmt.Errorf("hotel %s day %s: rate %d: %w", hotelID, day, dynamic, domain.ErrInvalidRate)
	}
	result.dynamic = dynamic
	return result, nil
}

func applyMultiplier(rate int64, multiplier float64) int64 {
	if multiplier == 1 {
		return rate
	}
	return decimal.NewFromInt(rate).Mul(decimal.NewFromFloat(multiplier)).Round(0).IntPart()
}

// GenerateRates prices every day in [StartDay, EndDay] and upserts one
// DailyRoomRate row per day. Days are independent; a failed upsert never
// rolls back committed days. The run errors out only when every single day
// failed.
func (e *DefaultRateEngine) GenerateRates(ctx context.Context, input *ratesdto.GenerateRatesInput) (*ratesdto.GenerateRatesOutput, error) {
	started := time.Now()
	defer func() {
		e.Metrics.RecordGenerationDuration(input.HotelID, time.Since(started).Seconds())
	}()

	days := domain.DaysBetween(input.StartDay, input.EndDay)
	if len(days) == 0 {
		return nil, fmt.Errorf("empty date range %s..%s", input.StartDay, input.EndDay)
	}

	run := e.newRunContext(input.HotelID, input.RoomTypeID)
	output := &ratesdto.GenerateRatesOutput{}
	events := make([]kafka.RateEvent, 0, len(days))

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		openDay := e.openDayOrNil(input.HotelID, day)
		if openDay != nil && openDay.IsClosed {
			output.Skipped = append(output.Skipped, ratesdto.SkippedDay{Day: day, Reason: ratesdto.SkipReasonClosed})
			e.Metrics.RecordDaySkipped(input.HotelID, ratesdto.SkipReasonClosed)
			continue
		}

		if run.cfg != nil && run.cfg.RespectManualOverrides {
			existing, err := e.DailyRateRepo.Get(input.HotelID, input.RoomTypeID, day)
			if err == nil && existing.ManualOverride {
				output.Skipped = append(output.Skipped, ratesdto.SkippedDay{Day: day, Reason: ratesdto.SkipReasonManualOverride})
				e.Metrics.RecordDaySkipped(input.HotelID, ratesdto.SkipReasonManualOverride)
				continue
			}
		}

		computed, err := e.computeDay(run, input.HotelID, input.RoomTypeID, day, openDay)
		if err != nil {
			output.Failed = append(output.Failed, ratesdto.FailedDay{Day: day, Error: err.Error()})
			e.Metrics.RecordDayFailed(input.HotelID)
			continue
		}

		row := &domain.DailyRoomRate{
			HotelID:     input.HotelID,
			RoomTypeID:  input.RoomTypeID,
			Day:         day,
			BaseRate:    computed.baseRate,
			DynamicRate: computed.dynamic,
		}
		if err := e.DailyRateRepo.Upsert(row); err != nil {
			output.Failed = append(output.Failed, ratesdto.FailedDay{Day: day, Error: err.Error()})
			e.Metrics.RecordDayFailed(input.HotelID)
			continue
		}

		output.Rates = append(output.Rates, row)
		e.Metrics.RecordRateGenerated(input.HotelID, input.RoomTypeID, run.strategy.Name())
		events = append(events, kafka.RateEvent{
			HotelID:     input.HotelID,
			RoomTypeID:  input.RoomTypeID,
			Day:         day.String(),
			BaseRate:    row.BaseRate,
			DynamicRate: row.DynamicRate,
			Strategy:    run.strategy.Name(),
		})
	}

	if len(output.Rates) == 0 && len(output.Failed) > 0 {
		return output, fmt.Errorf("rate generation failed for all %d days", len(output.Failed))
	}

	// Event publication is best effort; rates are already committed.
	if err := e.Publisher.PublishRates(events); err != nil {
		slog.Error("failed to publish rate events", "hotel_id", input.HotelID, "error", err.Error())
	}

	return output, nil
}

func (e *DefaultRateEngine) openDayOrNil(hotelID string, day domain.Day) *domain.OpenDay {
	openDay, err := e.OpenDayRepo.Get(hotelID, day)
	if err != nil {
		if err != domain.ErrNotFound {
			slog.Warn("open day lookup failed", "hotel_id", hotelID, "day", day.String(), "error", err.Error())
		}
		return nil
	}
	return openDay
}
