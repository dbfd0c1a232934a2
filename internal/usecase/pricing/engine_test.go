package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHotel    = "hotel-1"
	testRoomType = "rt-double"
	testRoom     = "room-101"
)

// seedSeason installs an active block pricing the test room type.
func (te *testEngine) seedSeason(t *testing.T, start, end domain.Day, baseRate int64) {
	t.Helper()
	savedAt := time.Now().UTC()
	te.seasons.blocks["season-1"] = &domain.SeasonBlock{
		ID:          "season-1",
		HotelID:     testHotel,
		Name:        "test season",
		StartDay:    start,
		EndDay:      end,
		Status:      domain.SeasonActive,
		RoomPrices:  []domain.SeasonRoomPrice{{RoomTypeID: testRoomType, BaseRate: baseRate}},
		LastSavedAt: &savedAt,
	}
}

func occupancyOnlyConfig(maxPct, idealPct float64) *domain.PricingConfig {
	return &domain.PricingConfig{
		HotelID:                   testHotel,
		Enabled:                   true,
		Strategy:                  domain.StrategyPerFactor,
		OccupancyMaxAdjustmentPct: maxPct,
		IdealOccupancyPct:         idealPct,
		RoundingMultiple:          1,
		RoundingMode:              domain.RoundNearest,
	}
}

func TestGenerateRatesOccupancyDiscount(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(30)

	te.seedSeason(t, day, day, 50000)
	te.configs.configs[testHotel] = occupancyOnlyConfig(20, 80)
	te.rooms.total = 10
	te.reservations.occupied[day.String()] = 4 // 40% against an 80% ideal

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)

	rate := output.Rates[0]
	assert.Equal(t, int64(50000), rate.BaseRate)
	assert.Equal(t, int64(30000), rate.DynamicRate)

	stored, err := te.dailyRates.Get(testHotel, testRoomType, day)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), stored.DynamicRate)
	assert.False(t, stored.ManualOverride)
}

func TestGenerateRatesDisabledConfigKeepsBaseRate(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	te.seedSeason(t, day, day, 42000)
	cfg := occupancyOnlyConfig(20, 80)
	cfg.Enabled = false
	te.configs.configs[testHotel] = cfg
	te.rooms.total = 10

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)
	assert.Equal(t, int64(42000), output.Rates[0].DynamicRate)
}

func TestGenerateRatesMissingConfigDegradesToBaseRate(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(5)
	te.seedSeason(t, day, day, 42000)

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)
	assert.Equal(t, int64(42000), output.Rates[0].BaseRate)
	assert.Equal(t, int64(42000), output.Rates[0].DynamicRate)
}

func TestGenerateRatesAppliesRoomTypeMultiplier(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(5)
	te.seedSeason(t, day, day, 40000)
	te.roomTypes.types[testRoomType] = &domain.RoomType{
		ID: testRoomType, HotelID: testHotel, Name: "Double", Multiplier: 1.5,
	}

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)
	assert.Equal(t, int64(60000), output.Rates[0].BaseRate)
}

func TestGenerateRatesRounding(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(30)

	te.seedSeason(t, day, day, 33335)
	cfg := occupancyOnlyConfig(20, 80)
	cfg.RoundingMultiple = 100
	cfg.RoundingMode = domain.RoundCeil
	te.configs.configs[testHotel] = cfg
	te.rooms.total = 10
	te.reservations.occupied[day.String()] = 4

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)

	// 33335 * 0.6 = 20001, ceiled to the next hundred.
	assert.Equal(t, int64(20100), output.Rates[0].DynamicRate)
}

func TestGenerateRatesSkipsClosedDays(t *testing.T) {
	te := newTestEngine()
	start := domain.Today().AddDays(10)
	end := start.AddDays(2)

	te.seedSeason(t, start, end, 30000)
	closed := start.AddDays(1)
	te.openDays.days[openDayKey(testHotel, closed)] = &domain.OpenDay{
		HotelID: testHotel, Day: closed, IsClosed: true,
	}

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   start,
		EndDay:     end,
	})
	require.NoError(t, err)
	assert.Len(t, output.Rates, 2)
	require.Len(t, output.Skipped, 1)
	assert.Equal(t, closed, output.Skipped[0].Day)
	assert.Equal(t, ratesdto.SkipReasonClosed, output.Skipped[0].Reason)

	_, err = te.dailyRates.Get(testHotel, testRoomType, closed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateRatesRespectsManualOverrides(t *testing.T) {
	te := newTestEngine()
	start := domain.Today().AddDays(10)
	end := start.AddDays(1)

	te.seedSeason(t, start, end, 30000)
	cfg := occupancyOnlyConfig(0, 80)
	cfg.RespectManualOverrides = true
	te.configs.configs[testHotel] = cfg

	require.NoError(t, te.dailyRates.SetManualRate(testHotel, testRoomType, start, 99999))

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   start,
		EndDay:     end,
	})
	require.NoError(t, err)
	assert.Len(t, output.Rates, 1)
	require.Len(t, output.Skipped, 1)
	assert.Equal(t, ratesdto.SkipReasonManualOverride, output.Skipped[0].Reason)

	kept, err := te.dailyRates.Get(testHotel, testRoomType, start)
	require.NoError(t, err)
	assert.Equal(t, int64(99999), kept.DynamicRate)
	assert.True(t, kept.ManualOverride)
}

func TestGenerateRatesOverwritesManualRateWhenNotRespected(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	te.seedSeason(t, day, day, 30000)
	te.configs.configs[testHotel] = occupancyOnlyConfig(0, 80)

	require.NoError(t, te.dailyRates.SetManualRate(testHotel, testRoomType, day, 99999))

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)

	// The rate is recomputed but the override flag itself survives upserts.
	stored, err := te.dailyRates.Get(testHotel, testRoomType, day)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), stored.DynamicRate)
	assert.True(t, stored.ManualOverride)
}

func TestGenerateRatesFixedPriceShortCircuits(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	te.seedSeason(t, day, day, 30000)
	te.configs.configs[testHotel] = occupancyOnlyConfig(20, 80)
	fixed := int64(77700)
	te.openDays.days[openDayKey(testHotel, day)] = &domain.OpenDay{
		HotelID: testHotel, Day: day, FixedPrice: &fixed,
	}

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.NoError(t, err)
	require.Len(t, output.Rates, 1)
	assert.Equal(t, fixed, output.Rates[0].BaseRate)
	assert.Equal(t, fixed, output.Rates[0].DynamicRate)
}

func TestGenerateRatesPartialCoverage(t *testing.T) {
	te := newTestEngine()
	covered := domain.Today().AddDays(10)
	uncovered := covered.AddDays(1)

	te.seedSeason(t, covered, covered, 30000)

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   covered,
		EndDay:     uncovered,
	})
	require.NoError(t, err)
	assert.Len(t, output.Rates, 1)
	require.Len(t, output.Failed, 1)
	assert.Equal(t, uncovered, output.Failed[0].Day)
}

func TestGenerateRatesAllDaysFailed(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.Error(t, err)
	assert.Empty(t, output.Rates)
	assert.Len(t, output.Failed, 1)
}

func TestGenerateRatesRejectsInvalidComputedRate(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	te.seedSeason(t, day, day, 30000)
	// A 200% occupancy cap with an empty hotel drives the rate below zero.
	te.configs.configs[testHotel] = occupancyOnlyConfig(200, 80)
	te.rooms.total = 10

	output, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day,
	})
	require.Error(t, err)
	require.Len(t, output.Failed, 1)
	assert.Contains(t, output.Failed[0].Error, domain.ErrInvalidRate.Error())
}

func TestGenerateRatesEmptyRange(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	_, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   day,
		EndDay:     day.AddDays(-1),
	})
	assert.Error(t, err)
}

func TestGetRatesForDateRangeExcludesCheckoutDay(t *testing.T) {
	te := newTestEngine()
	checkIn := domain.Today().AddDays(10)
	checkOut := checkIn.AddDays(3)

	te.seedSeason(t, checkIn, checkOut, 30000)
	_, err := te.engine.GenerateRates(context.Background(), &ratesdto.GenerateRatesInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		StartDay:   checkIn,
		EndDay:     checkOut,
	})
	require.NoError(t, err)

	rows, err := te.engine.GetRatesForDateRange(testHotel, testRoomType, checkIn, checkOut)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, checkIn, rows[0].Day)
	assert.Equal(t, checkOut.AddDays(-1), rows[2].Day)

	_, err = te.engine.GetRatesForDateRange(testHotel, testRoomType, checkIn, checkIn)
	assert.Error(t, err)
}

func TestQuoteStayWithMealsAndPromotion(t *testing.T) {
	te := newTestEngine()
	checkIn := domain.Today().AddDays(10)
	checkOut := checkIn.AddDays(3)

	te.seedSeason(t, checkIn, checkOut, 30000)
	te.configs.configs[testHotel] = occupancyOnlyConfig(0, 80)
	te.meals.rules[testHotel] = &domain.MealPricingRule{
		HotelID:        testHotel,
		BreakfastMode:  domain.AdjustPercentage,
		BreakfastValue: 0.15,
		DinnerMode:     domain.AdjustPercentage,
		DinnerValue:    0.20,
	}
	te.promos.promos = append(te.promos.promos, &domain.RoomGapPromotion{
		ID:           "promo-1",
		RoomID:       testRoom,
		Day:          checkIn,
		DiscountRate: 0.15,
		CreatedAt:    time.Now().UTC(),
	})

	quote, err := te.engine.QuoteStay(context.Background(), &ratesdto.QuoteStayInput{
		HotelID:    testHotel,
		RoomID:     testRoom,
		RoomTypeID: testRoomType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		MealPlan:   domain.MealBreakfast,
	})
	require.NoError(t, err)
	require.Len(t, quote.Nights, 3)

	first := quote.Nights[0]
	assert.Equal(t, int64(30000), first.DynamicRate)
	assert.Equal(t, int64(4500), first.ServiceSurcharge)            // breakfast: 30000 * 1.15
	assert.Equal(t, int64(5175), first.GapPromotionAmount)          // 15% off 34500
	assert.Equal(t, int64(29325), first.FinalRate)

	second := quote.Nights[1]
	assert.Equal(t, int64(0), second.GapPromotionAmount)
	assert.Equal(t, int64(34500), second.FinalRate)

	assert.Equal(t, int64(29325+34500+34500), quote.Total)
}

func TestQuoteStayHalfBoardCompounds(t *testing.T) {
	te := newTestEngine()
	checkIn := domain.Today().AddDays(10)
	checkOut := checkIn.AddDays(1)

	te.seedSeason(t, checkIn, checkOut, 10000)
	te.configs.configs[testHotel] = occupancyOnlyConfig(0, 80)
	te.meals.rules[testHotel] = &domain.MealPricingRule{
		HotelID:        testHotel,
		BreakfastMode:  domain.AdjustPercentage,
		BreakfastValue: 0.15,
		DinnerMode:     domain.AdjustPercentage,
		DinnerValue:    0.20,
	}

	quote, err := te.engine.QuoteStay(context.Background(), &ratesdto.QuoteStayInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		MealPlan:   domain.MealHalfBoard,
	})
	require.NoError(t, err)
	require.Len(t, quote.Nights, 1)

	// 10000 -> 11500 with breakfast -> 13800 with the dinner component
	// compounding on the breakfast price.
	assert.Equal(t, int64(13800), quote.Nights[0].FinalRate)
	assert.Equal(t, int64(3800), quote.Nights[0].ServiceSurcharge)
}

func TestQuoteStayFailsOnClosedNight(t *testing.T) {
	te := newTestEngine()
	checkIn := domain.Today().AddDays(10)
	checkOut := checkIn.AddDays(3)

	te.seedSeason(t, checkIn, checkOut, 30000)
	closed := checkIn.AddDays(1)
	te.openDays.days[openDayKey(testHotel, closed)] = &domain.OpenDay{
		HotelID: testHotel, Day: closed, IsClosed: true,
	}

	_, err := te.engine.QuoteStay(context.Background(), &ratesdto.QuoteStayInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	assert.ErrorIs(t, err, domain.ErrDayClosed)
}

func TestQuoteStayRejectsEmptyStay(t *testing.T) {
	te := newTestEngine()
	day := domain.Today().AddDays(10)

	_, err := te.engine.QuoteStay(context.Background(), &ratesdto.QuoteStayInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		CheckIn:    day,
		CheckOut:   day,
	})
	assert.Error(t, err)
}

func TestQuoteStayNoSeasonConfigured(t *testing.T) {
	te := newTestEngine()
	checkIn := domain.Today().AddDays(10)

	_, err := te.engine.QuoteStay(context.Background(), &ratesdto.QuoteStayInput{
		HotelID:    testHotel,
		RoomTypeID: testRoomType,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDays(1),
	})
	assert.ErrorIs(t, err, domain.ErrNoPriceConfigured)
}
