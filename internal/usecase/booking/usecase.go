package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	bookingdto "github.com/camino-stays/pricing-service/internal/usecase/dto/booking"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
	"github.com/camino-stays/pricing-service/internal/usecase/pricing"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type ReservationUsecase interface {
	// CreateReservation books a room and snapshots the per-night rate
	// breakdown. Night rates are immutable after creation.
	CreateReservation(ctx context.Context, input *bookingdto.CreateReservationInput) (*bookingdto.ReservationOutput, error)

	GetReservation(reservationID string) (*bookingdto.ReservationOutput, error)
	CancelReservation(reservationID string) error
}

type DefaultReservationUsecase struct {
	ReservationRepo domain.ReservationRepository
	RoomRepo        domain.RoomRepository
	Engine          pricing.RateEngine
}

func NewDefaultReservationUsecase(
	reservationRepo domain.ReservationRepository,
	roomRepo domain.RoomRepository,
	engine pricing.RateEngine) *DefaultReservationUsecase {

	return &DefaultReservationUsecase{
		ReservationRepo: reservationRepo,
		RoomRepo:        roomRepo,
		Engine:          engine,
	}
}

func (uc *DefaultReservationUsecase) CreateReservation(ctx context.Context, input *bookingdto.CreateReservationInput) (*bookingdto.ReservationOutput, error) {
	if !input.CheckIn.Before(input.CheckOut) {
		return nil, fmt.Errorf("check-out %s must be after check-in %s", input.CheckOut, input.CheckIn)
	}

	room, err := uc.RoomRepo.GetByID(input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", input.RoomID, err)
	}
	if room.HotelID != input.HotelID {
		return nil, fmt.Errorf("room %s does not belong to hotel %s: %w", input.RoomID, input.HotelID, domain.ErrNotFound)
	}

	mealPlan := input.MealPlan
	if mealPlan == "" {
		mealPlan = domain.MealNone
	}

	quote, err := uc.Engine.QuoteStay(ctx, &ratesdto.QuoteStayInput{
		HotelID:    input.HotelID,
		RoomID:     input.RoomID,
		RoomTypeID: room.RoomTypeID,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		MealPlan:   mealPlan,
	})
	if err != nil {
		return nil, fmt.Errorf("quote stay: %w", err)
	}

	codeGenerator, err := nanoid.Standard(10)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:         uuid.New().String(),
		Code:       codeGenerator(),
		HotelID:    input.HotelID,
		RoomID:     input.RoomID,
		RoomTypeID: room.RoomTypeID,
		GuestName:  input.GuestName,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		MealPlan:   mealPlan,
		Status:     domain.ReservationActive,
		TotalRate:  quote.Total,
		CreatedAt:  time.Now().UTC(),
	}

	nights := make([]*domain.ReservationNightRate, 0, len(quote.Nights))
	for _, night := range quote.Nights {
		nights = append(nights, &domain.ReservationNightRate{
			ID:                     uuid.New().String(),
			ReservationID:          reservation.ID,
			Day:                    night.Day,
			BaseRate:               night.BaseRate,
			DynamicRate:            night.DynamicRate,
			FinalRate:              night.FinalRate,
			OccupancyAdjustment:    night.OccupancyAdjustment,
			AnticipationAdjustment: night.AnticipationAdjustment,
			WeekendAdjustment:      night.WeekendAdjustment,
			HolidayAdjustment:      night.HolidayAdjustment,
			ServiceSurcharge:       night.ServiceSurcharge,
			GapPromotionAmount:     night.GapPromotionAmount,
			IsWeekend:              night.IsWeekend,
			IsHoliday:              night.IsHoliday,
		})
	}

	if err := uc.ReservationRepo.Create(reservation, nights); err != nil {
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	return &bookingdto.ReservationOutput{Reservation: reservation, NightRates: nights}, nil
}

func (uc *DefaultReservationUsecase) GetReservation(reservationID string) (*bookingdto.ReservationOutput, error) {
	reservation, err := uc.ReservationRepo.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	nights, err := uc.ReservationRepo.GetNightRates(reservationID)
	if err != nil {
		return nil, err
	}
	return &bookingdto.ReservationOutput{Reservation: reservation, NightRates: nights}, nil
}

func (uc *DefaultReservationUsecase) CancelReservation(reservationID string) error {
	return uc.ReservationRepo.Cancel(reservationID)
}
