package pricing

import "github.com/camino-stays/pricing-service/internal/domain"

// Strategy turns per-day signals into an adjustment breakdown. Two
// implementations coexist: the per-factor percentage model drives rate
// generation, the weighted-score model is kept as a selectable alternative
// for hotels still tuned against it.
type Strategy interface {
	Name() string
	Compute(cfg *domain.PricingConfig, in FactorInput) AdjustmentBreakdown
}

// PerFactorStrategy computes each factor as an independent percentage of the
// base rate, capped per factor by the hotel's config.
type PerFactorStrategy struct{}

func (PerFactorStrategy) Name() string { return "per_factor" }

func (PerFactorStrategy) Compute(cfg *domain.PricingConfig, in FactorInput) AdjustmentBreakdown {
	if cfg == nil {
		return AdjustmentBreakdown{}
	}

	b := AdjustmentBreakdown{
		Occupancy:    occupancyAdjustment(in.OccupancyPct, cfg.IdealOccupancyPct, cfg.OccupancyMaxAdjustmentPct),
		Anticipation: anticipationAdjustment(in.AnticipationFactor, cfg.AnticipationMaxAdjustmentPct),
	}
	if in.IsWeekend {
		b.Weekend = cfg.WeekendMaxAdjustmentPct / 100
	}
	if in.IsHoliday {
		b.Holiday = cfg.HolidayMaxAdjustmentPct / 100
	}
	return b
}

// WeightedScoreStrategy is the legacy model: factor signals are combined
// into one expected-occupancy score through per-factor weights summing to
// <= 1, and the score's distance from the neutral 0.5 drives a single
// adjustment bounded by MaxAdjustmentPct.
type WeightedScoreStrategy struct{}

func (WeightedScoreStrategy) Name() string { return "weighted_score" }

func (WeightedScoreStrategy) Compute(cfg *domain.PricingConfig, in FactorInput) AdjustmentBreakdown {
	if cfg == nil {
		return AdjustmentBreakdown{}
	}

	weekendSignal := 0.0
	if in.IsWeekend {
		weekendSignal = 1.0
	}
	holidaySignal := 0.0
	if in.IsHoliday {
		holidaySignal = 1.0
	}

	// Weather and event signals have no live feed; their neutral value 0.5
	// contributes nothing to the score's deviation.
	scale := 2 * (cfg.MaxAdjustmentPct / 100)
	return AdjustmentBreakdown{
		Occupancy:    cfg.OccupancyWeight * (normalizeOccupancyPct(in.OccupancyPct)/100 - 0.5) * scale,
		Anticipation: cfg.AnticipationWeight * (in.AnticipationFactor - 0.5) * scale,
		Weekend:      cfg.WeekendWeight * (weekendSignal - 0.5) * scale,
		Holiday:      cfg.HolidayWeight * (holidaySignal - 0.5) * scale,
	}
}

// StrategyFor selects the configured strategy, defaulting to per-factor.
func StrategyFor(cfg *domain.PricingConfig) Strategy {
	if cfg != nil && cfg.Strategy == domain.StrategyWeightedScore {
		return WeightedScoreStrategy{}
	}
	return PerFactorStrategy{}
}
