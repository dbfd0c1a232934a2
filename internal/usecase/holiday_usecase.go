package usecase

import (
	"log/slog"

	"github.com/camino-stays/pricing-service/internal/domain"
)

// longWeekendWindowDays is how far a weekend day may sit from a holiday and
// still inherit holiday-level pricing.
const longWeekendWindowDays = 3

type HolidayUsecase interface {
	IsHoliday(hotelID string, day domain.Day) bool

	// IsLongWeekendOrHoliday is true for holidays themselves and for
	// weekend days within three calendar days of one.
	IsLongWeekendOrHoliday(hotelID string, day domain.Day, isWeekend bool) bool
}

type DefaultHolidayUsecase struct {
	OpenDayRepo domain.OpenDayRepository
}

func NewDefaultHolidayUsecase(openDayRepo domain.OpenDayRepository) *DefaultHolidayUsecase {
	return &DefaultHolidayUsecase{OpenDayRepo: openDayRepo}
}

func (uc *DefaultHolidayUsecase) IsHoliday(hotelID string, day domain.Day) bool {
	record, err := uc.OpenDayRepo.Get(hotelID, day)
	if err != nil {
		if err != domain.ErrNotFound {
			slog.Warn("holiday lookup failed", "hotel_id", hotelID, "day", day.String(), "error", err.Error())
		}
		return false
	}
	return record.IsHoliday
}

func (uc *DefaultHolidayUsecase) IsLongWeekendOrHoliday(hotelID string, day domain.Day, isWeekend bool) bool {
	if uc.IsHoliday(hotelID, day) {
		return true
	}
	if !isWeekend {
		return false
	}

	from := day.AddDays(-longWeekendWindowDays)
	to := day.AddDays(longWeekendWindowDays)
	records, err := uc.OpenDayRepo.GetRange(hotelID, from, to)
	if err != nil {
		slog.Warn("holiday window lookup failed", "hotel_id", hotelID, "day", day.String(), "error", err.Error())
		return false
	}
	for _, record := range records {
		if record.IsHoliday {
			return true
		}
	}
	return false
}
