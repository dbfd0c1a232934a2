package pricing

import (
	"sort"

	"github.com/camino-stays/pricing-service/internal/domain"
)

// Default step table used when a hotel configures stepped mode without
// thresholds.
var defaultAnticipationSteps = []domain.AnticipationStep{
	{Days: 21, Weight: 1.0},
	{Days: 14, Weight: 0.7},
	{Days: 7, Weight: 0.4},
	{Days: 3, Weight: 0.2},
}

// ContinuousAnticipationFactor maps booking lead time to [0,1] as a linear
// ramp: 0 for past dates, 1 at or beyond the horizon.
func ContinuousAnticipationFactor(daysUntil, maxDays int) float64 {
	if daysUntil < 0 {
		return 0
	}
	if maxDays <= 0 || daysUntil >= maxDays {
		return 1
	}
	return float64(daysUntil) / float64(maxDays)
}

// SteppedAnticipationFactor returns the weight of the first threshold (in
// descending day order) at or below daysUntil, or 0 when none matches.
func SteppedAnticipationFactor(daysUntil int, steps []domain.AnticipationStep) float64 {
	if daysUntil < 0 {
		return 0
	}
	if len(steps) == 0 {
		steps = defaultAnticipationSteps
	}
	sorted := make([]domain.AnticipationStep, len(steps))
	copy(sorted, steps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Days > sorted[j].Days })

	for _, step := range sorted {
		if daysUntil >= step.Days {
			return step.Weight
		}
	}
	return 0
}

// AnticipationFactor dispatches on the hotel's configured mode. Continuous
// with a 30-day horizon when cfg is nil.
func AnticipationFactor(cfg *domain.PricingConfig, daysUntil int) float64 {
	if cfg == nil {
		return ContinuousAnticipationFactor(daysUntil, 30)
	}
	if cfg.AnticipationMode == domain.AnticipationStepped {
		return SteppedAnticipationFactor(daysUntil, cfg.AnticipationSteps)
	}
	return ContinuousAnticipationFactor(daysUntil, cfg.AnticipationMaxDays)
}
