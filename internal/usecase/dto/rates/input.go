package rates

import "github.com/camino-stays/pricing-service/internal/domain"

type GenerateRatesInput struct {
	HotelID    string
	RoomTypeID string
	StartDay   domain.Day
	EndDay     domain.Day
}

type QuoteStayInput struct {
	HotelID    string
	RoomID     string
	RoomTypeID string
	CheckIn    domain.Day
	CheckOut   domain.Day
	MealPlan   domain.MealPlan
}
