package usecase

import (
	"log/slog"

	"github.com/camino-stays/pricing-service/internal/domain"
)

// neutralOccupancy is the fail-open fallback: pricing must never hard-fail
// because the occupancy signal is unavailable.
const neutralOccupancy = 0.5

type OccupancyUsecase interface {
	// RealOccupancy returns the hotel's occupancy ratio for the day,
	// clamped to [0,1].
	RealOccupancy(hotelID string, day domain.Day) float64
}

type DefaultOccupancyUsecase struct {
	ReservationRepo domain.ReservationRepository
	RoomRepo        domain.RoomRepository
}

func NewDefaultOccupancyUsecase(reservationRepo domain.ReservationRepository, roomRepo domain.RoomRepository) *DefaultOccupancyUsecase {
	return &DefaultOccupancyUsecase{
		ReservationRepo: reservationRepo,
		RoomRepo:        roomRepo,
	}
}

func (uc *DefaultOccupancyUsecase) RealOccupancy(hotelID string, day domain.Day) float64 {
	totalRooms, err := uc.RoomRepo.CountByHotel(hotelID)
	if err != nil {
		slog.Warn("occupancy lookup failed, using neutral fallback",
			"hotel_id", hotelID, "day", day.String(), "error", err.Error())
		return neutralOccupancy
	}
	if totalRooms == 0 {
		return neutralOccupancy
	}

	occupied, err := uc.ReservationRepo.CountActiveOverlapping(hotelID, day)
	if err != nil {
		slog.Warn("occupancy lookup failed, using neutral fallback",
			"hotel_id", hotelID, "day", day.String(), "error", err.Error())
		return neutralOccupancy
	}

	ratio := float64(occupied) / float64(totalRooms)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
