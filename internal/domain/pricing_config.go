package domain

import "time"

type PricingStrategyKind string

const (
	StrategyPerFactor     PricingStrategyKind = "PER_FACTOR"
	StrategyWeightedScore PricingStrategyKind = "WEIGHTED_SCORE"
)

type AnticipationMode string

const (
	AnticipationContinuous AnticipationMode = "CONTINUOUS"
	AnticipationStepped    AnticipationMode = "STEPPED"
)

type RoundingMode string

const (
	RoundCeil    RoundingMode = "ceil"
	RoundFloor   RoundingMode = "floor"
	RoundNearest RoundingMode = "nearest"
)

// RoundingMultiples is the set of multiples accepted at the configuration
// boundary. The rounding function itself does not enforce it.
var RoundingMultiples = map[int64]bool{1: true, 10: true, 100: true, 500: true, 1000: true}

type AnticipationStep struct {
	Days   int
	Weight float64
}

// PricingConfig holds the per-hotel knobs of the dynamic pricing engine.
// Factor weights feed the legacy weighted-score strategy; the *MaxAdjustmentPct
// caps feed the per-factor strategy used for rate generation.
type PricingConfig struct {
	HotelID string
	Enabled bool

	Strategy PricingStrategyKind

	AnticipationMode    AnticipationMode
	AnticipationMaxDays int
	AnticipationSteps   []AnticipationStep

	// Legacy weighted-score weights, expected to sum to <= 1.
	AnticipationWeight float64
	OccupancyWeight    float64
	WeekendWeight      float64
	HolidayWeight      float64
	WeatherWeight      float64
	EventWeight        float64

	// Per-factor percentage caps, each 0-100.
	OccupancyMaxAdjustmentPct    float64
	AnticipationMaxAdjustmentPct float64
	WeekendMaxAdjustmentPct      float64
	HolidayMaxAdjustmentPct      float64

	IdealOccupancyPct float64
	WeekendDays       []time.Weekday
	MaxAdjustmentPct  float64

	RoundingMultiple int64
	RoundingMode     RoundingMode

	RespectManualOverrides bool

	UpdatedAt time.Time
}

// IsWeekend reports whether day falls on one of the hotel's configured
// weekend days. Saturday and Sunday when none are configured or the config
// is absent.
func (c *PricingConfig) IsWeekend(day Day) bool {
	wd := day.Weekday()
	if c == nil || len(c.WeekendDays) == 0 {
		return wd == time.Saturday || wd == time.Sunday
	}
	for _, w := range c.WeekendDays {
		if w == wd {
			return true
		}
	}
	return false
}

// MaxDiscountPct is the largest possible downward swing: only occupancy and
// anticipation can push the price down.
func (c *PricingConfig) MaxDiscountPct() float64 {
	return c.OccupancyMaxAdjustmentPct + c.AnticipationMaxAdjustmentPct
}

// MaxIncreasePct is the largest possible upward swing: weekend and holiday
// only ever add.
func (c *PricingConfig) MaxIncreasePct() float64 {
	return c.OccupancyMaxAdjustmentPct + c.WeekendMaxAdjustmentPct + c.HolidayMaxAdjustmentPct
}

type PricingConfigRepository interface {
	Upsert(cfg *PricingConfig) error
	GetByHotelID(hotelID string) (*PricingConfig, error)

	// ListHotelIDs enumerates every hotel with a stored config, for the
	// rolling-horizon regeneration loop.
	ListHotelIDs() ([]string, error)
}
