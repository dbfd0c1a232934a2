package pricing

import (
	"testing"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestContinuousAnticipationFactor(t *testing.T) {
	assert.Equal(t, 0.0, ContinuousAnticipationFactor(0, 30))
	assert.Equal(t, 1.0, ContinuousAnticipationFactor(30, 30))
	assert.Equal(t, 1.0, ContinuousAnticipationFactor(90, 30))
	assert.Equal(t, 0.0, ContinuousAnticipationFactor(-5, 30))
	assert.Equal(t, 1.0, ContinuousAnticipationFactor(10, 0))
	assert.InDelta(t, 0.5, ContinuousAnticipationFactor(15, 30), 1e-9)
}

func TestContinuousAnticipationFactorIsMonotonic(t *testing.T) {
	prev := -1.0
	for days := -2; days <= 40; days++ {
		f := ContinuousAnticipationFactor(days, 30)
		assert.GreaterOrEqual(t, f, prev, "factor must not decrease at %d days", days)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
		prev = f
	}
}

func TestSteppedAnticipationFactorDefaultTable(t *testing.T) {
	tests := []struct {
		daysUntil int
		want      float64
	}{
		{25, 1.0},
		{21, 1.0},
		{14, 0.7},
		{10, 0.4},
		{5, 0.2},
		{3, 0.2},
		{1, 0.0},
		{0, 0.0},
		{-1, 0.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SteppedAnticipationFactor(tt.daysUntil, nil),
			"daysUntil=%d", tt.daysUntil)
	}
}

func TestSteppedAnticipationFactorCustomStepsUnordered(t *testing.T) {
	steps := []domain.AnticipationStep{
		{Days: 7, Weight: 0.5},
		{Days: 30, Weight: 1.0},
	}

	assert.Equal(t, 1.0, SteppedAnticipationFactor(45, steps))
	assert.Equal(t, 0.5, SteppedAnticipationFactor(10, steps))
	assert.Equal(t, 0.0, SteppedAnticipationFactor(2, steps))
}

func TestAnticipationFactorDispatch(t *testing.T) {
	assert.InDelta(t, 0.5, AnticipationFactor(nil, 15), 1e-9)

	stepped := &domain.PricingConfig{AnticipationMode: domain.AnticipationStepped}
	assert.Equal(t, 0.7, AnticipationFactor(stepped, 14))

	continuous := &domain.PricingConfig{
		AnticipationMode:    domain.AnticipationContinuous,
		AnticipationMaxDays: 10,
	}
	assert.InDelta(t, 0.4, AnticipationFactor(continuous, 4), 1e-9)
}
