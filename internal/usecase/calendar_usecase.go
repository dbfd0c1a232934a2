package usecase

import (
	"fmt"

	"github.com/camino-stays/pricing-service/internal/domain"
)

type CalendarUsecase interface {
	UpsertOpenDay(openDay *domain.OpenDay) error
	GetOpenDay(hotelID string, day domain.Day) (*domain.OpenDay, error)
	GetOpenDays(hotelID string, from, to domain.Day) ([]*domain.OpenDay, error)
}

type DefaultCalendarUsecase struct {
	OpenDayRepo domain.OpenDayRepository
}

func NewDefaultCalendarUsecase(openDayRepo domain.OpenDayRepository) *DefaultCalendarUsecase {
	return &DefaultCalendarUsecase{OpenDayRepo: openDayRepo}
}

func (uc *DefaultCalendarUsecase) UpsertOpenDay(openDay *domain.OpenDay) error {
	if openDay.HotelID == "" {
		return fmt.Errorf("open day requires a hotel id")
	}
	if openDay.FixedPrice != nil && *openDay.FixedPrice <= 0 {
		return fmt.Errorf("fixed price must be positive, got %d", *openDay.FixedPrice)
	}
	return uc.OpenDayRepo.Upsert(openDay)
}

func (uc *DefaultCalendarUsecase) GetOpenDay(hotelID string, day domain.Day) (*domain.OpenDay, error) {
	return uc.OpenDayRepo.Get(hotelID, day)
}

func (uc *DefaultCalendarUsecase) GetOpenDays(hotelID string, from, to domain.Day) ([]*domain.OpenDay, error) {
	return uc.OpenDayRepo.GetRange(hotelID, from, to)
}
