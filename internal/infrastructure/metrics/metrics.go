package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PricingMetrics covers the rate generation pipeline.
type PricingMetrics struct {
	RatesGeneratedTotal  prometheus.CounterVec
	RateDaysSkippedTotal prometheus.CounterVec
	RateDaysFailedTotal  prometheus.CounterVec
	GenerationDuration   prometheus.HistogramVec

	ConfigMissingTotal prometheus.CounterVec

	QuotesTotal          prometheus.CounterVec
	GapPromotionsApplied prometheus.CounterVec
}

func NewPricingMetrics() *PricingMetrics {
	return &PricingMetrics{
		RatesGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_rates_generated_total",
				Help: "Daily rate rows upserted by the engine",
			},
			[]string{"hotel_id", "room_type_id", "strategy"},
		),

		RateDaysSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_rate_days_skipped_total",
				Help: "Days skipped during generation, by reason",
			},
			[]string{"hotel_id", "reason"},
		),

		RateDaysFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_rate_days_failed_total",
				Help: "Days whose upsert failed during generation",
			},
			[]string{"hotel_id"},
		),

		GenerationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricing_generation_duration_seconds",
				Help:    "Wall time of one generation run",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"hotel_id"},
		),

		ConfigMissingTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_config_missing_total",
				Help: "Rate computations that ran without a pricing config",
			},
			[]string{"hotel_id"},
		),

		QuotesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_quotes_total",
				Help: "Stay quotes produced",
			},
			[]string{"hotel_id", "meal_plan"},
		),

		GapPromotionsApplied: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_gap_promotions_applied_total",
				Help: "Gap promotions applied to quoted nights",
			},
			[]string{"hotel_id"},
		),
	}
}

func (m *PricingMetrics) RecordRateGenerated(hotelID, roomTypeID, strategy string) {
	if m == nil {
		return
	}
	m.RatesGeneratedTotal.WithLabelValues(hotelID, roomTypeID, strategy).Inc()
}

func (m *PricingMetrics) RecordDaySkipped(hotelID, reason string) {
	if m == nil {
		return
	}
	m.RateDaysSkippedTotal.WithLabelValues(hotelID, reason).Inc()
}

func (m *PricingMetrics) RecordDayFailed(hotelID string) {
	if m == nil {
		return
	}
	m.RateDaysFailedTotal.WithLabelValues(hotelID).Inc()
}

func (m *PricingMetrics) RecordGenerationDuration(hotelID string, seconds float64) {
	if m == nil {
		return
	}
	m.GenerationDuration.WithLabelValues(hotelID).Observe(seconds)
}

func (m *PricingMetrics) RecordConfigMissing(hotelID string) {
	if m == nil {
		return
	}
	m.ConfigMissingTotal.WithLabelValues(hotelID).Inc()
}

func (m *PricingMetrics) RecordQuote(hotelID, mealPlan string) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(hotelID, mealPlan).Inc()
}

func (m *PricingMetrics) RecordGapPromotionApplied(hotelID string) {
	if m == nil {
		return
	}
	m.GapPromotionsApplied.WithLabelValues(hotelID).Inc()
}
