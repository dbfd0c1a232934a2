package pricing

import (
	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/shopspring/decimal"
)

// FactorInput carries the resolved per-day signals a strategy combines into
// an adjustment.
type FactorInput struct {
	Day                domain.Day
	DaysUntil          int
	OccupancyPct       float64 // accepts a 0-1 ratio or a 0-100 percentage
	AnticipationFactor float64 // normalized [0,1]
	IsWeekend          bool
	IsHoliday          bool
}

// AdjustmentBreakdown holds per-factor adjustments as signed fractions of
// the base rate. No clamping is applied here; callers may clamp against the
// config's MaxDiscountPct/MaxIncreasePct bounds.
type AdjustmentBreakdown struct {
	Occupancy    float64
	Anticipation float64
	Weekend      float64
	Holiday      float64
}

func (b AdjustmentBreakdown) Total() float64 {
	return b.Occupancy + b.Anticipation + b.Weekend + b.Holiday
}

// normalizeOccupancyPct maps either a [0,1] ratio or a 0-100 percentage onto
// the 0-100 scale.
func normalizeOccupancyPct(v float64) float64 {
	if v <= 1 {
		return v * 100
	}
	return v
}

// occupancyAdjustment pushes the price up when occupancy exceeds the ideal
// target and down when it falls short, scaled by the hotel's cap.
func occupancyAdjustment(occupancyPct, idealPct, maxAdjustmentPct float64) float64 {
	if idealPct >= 100 {
		return 0
	}
	pct := normalizeOccupancyPct(occupancyPct)
	return ((pct - idealPct) / (100 - idealPct)) * (maxAdjustmentPct / 100)
}

// anticipationAdjustment centers the [0,1] factor around zero; a factor of
// 0.5 yields no adjustment.
func anticipationAdjustment(factor, maxAdjustmentPct float64) float64 {
	return (factor - 0.5) * 2 * (maxAdjustmentPct / 100)
}

// ApplyAdjustment computes base * (1 + total) in decimal and returns the
// result in minor units.
func ApplyAdjustment(baseRate int64, totalAdjustment float64) int64 {
	return decimal.NewFromInt(baseRate).
		Mul(decimal.NewFromFloat(1).Add(decimal.NewFromFloat(totalAdjustment))).
		Round(0).IntPart()
}
