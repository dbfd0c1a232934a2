package domain

import "time"

type SeasonStatus string

const (
	SeasonDraft  SeasonStatus = "DRAFT"
	SeasonActive SeasonStatus = "ACTIVE"
)

type AdjustMode string

const (
	AdjustFixed      AdjustMode = "FIXED"
	AdjustPercentage AdjustMode = "PERCENTAGE"
)

type SeasonRoomPrice struct {
	RoomTypeID string
	BaseRate   int64 // minor currency units per night
}

type SeasonServiceAdjustment struct {
	ServiceTypeID string
	Mode          AdjustMode
	Value         float64 // minor units for FIXED, fraction for PERCENTAGE
	Enabled       bool
}

// SeasonBlock is a date range carrying its own base prices per room type.
// Draft blocks may overlap freely; at most one active block covers any day
// for a hotel.
type SeasonBlock struct {
	ID       string
	HotelID  string
	Name     string
	StartDay Day
	EndDay   Day
	Status   SeasonStatus

	RoomPrices         []SeasonRoomPrice
	ServiceAdjustments []SeasonServiceAdjustment

	LastSavedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Covers reports whether day falls inside the block's inclusive range.
func (b *SeasonBlock) Covers(day Day) bool {
	return !day.Before(b.StartDay) && !day.After(b.EndDay)
}

// Overlaps reports whether two blocks share at least one day.
func (b *SeasonBlock) Overlaps(other *SeasonBlock) bool {
	return !b.StartDay.After(other.EndDay) && !other.StartDay.After(b.EndDay)
}

type SeasonBlockRepository interface {
	Create(block *SeasonBlock) error
	Update(block *SeasonBlock) error
	Delete(blockID string) error
	GetByID(blockID string) (*SeasonBlock, error)
	ListByHotel(hotelID string) ([]*SeasonBlock, error)

	// FindActiveForDay resolves the single active block covering day, or
	// ErrNotFound when none does.
	FindActiveForDay(hotelID string, day Day) (*SeasonBlock, error)

	// Confirm flips a block to ACTIVE and stamps LastSavedAt. The overlap
	// check against other active blocks and the state flip are atomic;
	// ErrSeasonOverlap leaves every block untouched.
	Confirm(blockID string, savedAt time.Time) (*SeasonBlock, error)

	// Demote returns an active block to DRAFT.
	Demote(blockID string) error
}
