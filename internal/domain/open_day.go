package domain

import "time"

// OpenDay is the per-hotel calendar record: closures, holidays and fixed
// price overrides for a single day.
type OpenDay struct {
	HotelID    string
	Day        Day
	IsClosed   bool
	IsHoliday  bool
	FixedPrice *int64 // minor units; overrides the computed rate when set
	Notes      string
	UpdatedAt  time.Time
}

type OpenDayRepository interface {
	Upsert(openDay *OpenDay) error
	Get(hotelID string, day Day) (*OpenDay, error)

	// GetRange returns records for [from, to] inclusive, ordered by day.
	// Days without a record are simply absent.
	GetRange(hotelID string, from, to Day) ([]*OpenDay, error)
}
