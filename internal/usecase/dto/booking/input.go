package booking

import "github.com/camino-stays/pricing-service/internal/domain"

type CreateReservationInput struct {
	HotelID   string
	RoomID    string
	GuestName string
	CheckIn   domain.Day
	CheckOut  domain.Day
	MealPlan  domain.MealPlan
}
