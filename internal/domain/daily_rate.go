package domain

import "time"

// DailyRoomRate is one computed price row per hotel, room type and day.
// Amounts are integer minor currency units.
type DailyRoomRate struct {
	HotelID    string
	RoomTypeID string
	Day        Day

	BaseRate    int64
	DynamicRate int64

	ManualOverride bool
	UpdatedAt      time.Time
}

type DailyRateRepository interface {
	// Upsert writes the row keyed by (hotelID, roomTypeID, day), overwriting
	// base and dynamic rates. The manual override flag is never touched by
	// an upsert.
	Upsert(rate *DailyRoomRate) error

	Get(hotelID, roomTypeID string, day Day) (*DailyRoomRate, error)

	// GetRange returns rows for [from, to] inclusive, ordered by day.
	GetRange(hotelID, roomTypeID string, from, to Day) ([]*DailyRoomRate, error)

	// SetManualRate overwrites the dynamic rate and flags the row as
	// manually overridden.
	SetManualRate(hotelID, roomTypeID string, day Day, rate int64) error

	// ClearManualOverride removes the override flag so regeneration may
	// reclaim the row.
	ClearManualOverride(hotelID, roomTypeID string, day Day) error
}
