package domain

import "time"

const dayLayout = "2006-01-02"

// Day is a calendar day normalized to midnight UTC. All date comparison and
// bucketing in the service goes through this type so that time-of-day
// components can never cause off-by-one rate rows.
type Day struct {
	t time.Time
}

func NewDay(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func MakeDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return NewDay(t), nil
}

func Today() Day {
	return NewDay(time.Now().UTC())
}

func (d Day) Time() time.Time        { return d.t }
func (d Day) String() string         { return d.t.Format(dayLayout) }
func (d Day) Weekday() time.Weekday  { return d.t.Weekday() }
func (d Day) IsZero() bool           { return d.t.IsZero() }
func (d Day) Before(other Day) bool  { return d.t.Before(other.t) }
func (d Day) After(other Day) bool   { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool   { return d.t.Equal(other.t) }
func (d Day) AddDays(n int) Day      { return Day{t: d.t.AddDate(0, 0, n)} }
func (d Day) Next() Day              { return d.AddDays(1) }

// DaysUntil returns the number of whole days from d to other. Negative when
// other is in the past relative to d.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// DaysBetween returns every day in [start, end] inclusive, as an immutable
// slice. Returns nil when end is before start.
func DaysBetween(start, end Day) []Day {
	if end.Before(start) {
		return nil
	}
	days := make([]Day, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// Nights returns the billable nights of a stay, [checkIn, checkOut). The
// checkout day itself is never billed.
func Nights(checkIn, checkOut Day) []Day {
	if !checkIn.Before(checkOut) {
		return nil
	}
	return DaysBetween(checkIn, checkOut.AddDays(-1))
}
