package pricing

import (
	"fmt"

	"github.com/camino-stays/pricing-service/internal/domain"
)

func (e *DefaultRateEngine) GetRatesForDateRange(hotelID, roomTypeID string, checkIn, checkOut domain.Day) ([]*domain.DailyRoomRate, error) {
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("check-out %s must be after check-in %s", checkOut, checkIn)
	}
	// Standard hotel night counting: the checkout day is not billed.
	return e.DailyRateRepo.GetRange(hotelID, roomTypeID, checkIn, checkOut.AddDays(-1))
}
