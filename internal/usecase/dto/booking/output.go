package booking

import "github.com/camino-stays/pricing-service/internal/domain"

type ReservationOutput struct {
	Reservation *domain.Reservation
	NightRates  []*domain.ReservationNightRate
}
