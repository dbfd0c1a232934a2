package rates

import "github.com/camino-stays/pricing-service/internal/domain"

const (
	SkipReasonClosed         = "closed"
	SkipReasonManualOverride = "manual_override"
)

type SkippedDay struct {
	Day    domain.Day
	Reason string
}

type FailedDay struct {
	Day   domain.Day
	Error string
}

// GenerateRatesOutput reports a generation run. Failed days do not roll back
// committed ones; the caller retries them.
type GenerateRatesOutput struct {
	Rates   []*domain.DailyRoomRate
	Skipped []SkippedDay
	Failed  []FailedDay
}

// NightQuote is the full per-night breakdown for one billable night.
// Adjustment fields are signed minor-unit amounts relative to the base rate.
type NightQuote struct {
	Day domain.Day

	BaseRate    int64
	DynamicRate int64
	FinalRate   int64

	OccupancyAdjustment    int64
	AnticipationAdjustment int64
	WeekendAdjustment      int64
	HolidayAdjustment      int64

	ServiceSurcharge   int64
	GapPromotionAmount int64

	IsWeekend bool
	IsHoliday bool
}

type StayQuote struct {
	Nights []NightQuote
	Total  int64
}
