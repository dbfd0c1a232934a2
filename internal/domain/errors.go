package domain

import "errors"

var (
	ErrNoPriceConfigured = errors.New("no active season block covers the requested day")
	ErrSeasonOverlap     = errors.New("season block overlaps an active block for the same hotel")
	ErrNotFound          = errors.New("entity not found")
	ErrManualOverride    = errors.New("rate is manually overridden")
	ErrDayClosed         = errors.New("hotel is closed on the requested day")
	ErrInvalidRate       = errors.New("computed rate is zero or negative")
)
