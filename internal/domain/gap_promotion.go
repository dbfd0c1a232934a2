package domain

import (
	"math"
	"time"
)

// RoomGapPromotion is a targeted discount on one room-night, used to fill
// otherwise-unsold inventory. It undercuts whatever rate the engine computed
// and is independent of season block and pricing config state.
type RoomGapPromotion struct {
	ID           string
	RoomID       string
	Day          Day
	DiscountRate float64 // fraction in (0, 1]
	CreatedAt    time.Time
}

// EffectiveRate applies the discount to a computed service rate.
func (p *RoomGapPromotion) EffectiveRate(serviceRate int64) int64 {
	return int64(math.Round(float64(serviceRate) * (1 - p.DiscountRate)))
}

// Amount is the discount value tracked separately for reporting.
func (p *RoomGapPromotion) Amount(serviceRate int64) int64 {
	return serviceRate - p.EffectiveRate(serviceRate)
}

type GapPromotionRepository interface {
	Create(promo *RoomGapPromotion) error
	Delete(promoID string) error

	// FindByRoomDay returns all promotions for the room-night, most recent
	// first. Matches are not merged; callers use at most one.
	FindByRoomDay(roomID string, day Day) ([]*RoomGapPromotion, error)

	ListByRoom(roomID string, from, to Day) ([]*RoomGapPromotion, error)

	// DeleteExpired removes promotions for days before the cutoff and
	// returns how many rows went away.
	DeleteExpired(before Day) (int64, error)
}
