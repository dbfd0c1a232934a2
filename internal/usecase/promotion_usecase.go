package usecase

import (
	"fmt"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/google/uuid"
)

type GapPromotionUsecase interface {
	CreatePromotion(promo *domain.RoomGapPromotion) error
	DeletePromotion(promoID string) error
	ListByRoom(roomID string, from, to domain.Day) ([]*domain.RoomGapPromotion, error)

	// BestForRoomDay picks the single promotion the engine applies for a
	// room-night: the most recently created one. Nil when none exists.
	BestForRoomDay(roomID string, day domain.Day) (*domain.RoomGapPromotion, error)

	CleanupExpired(before domain.Day) (int64, error)
}

type DefaultGapPromotionUsecase struct {
	PromoRepo domain.GapPromotionRepository
}

func NewDefaultGapPromotionUsecase(promoRepo domain.GapPromotionRepository) *DefaultGapPromotionUsecase {
	return &DefaultGapPromotionUsecase{PromoRepo: promoRepo}
}

func (uc *DefaultGapPromotionUsecase) CreatePromotion(promo *domain.RoomGapPromotion) error {
	if promo.DiscountRate <= 0 || promo.DiscountRate > 1 {
		return fmt.Errorf("discount rate %v is outside (0, 1]", promo.DiscountRate)
	}
	if promo.ID == "" {
		promo.ID = uuid.New().String()
	}
	if promo.CreatedAt.IsZero() {
		promo.CreatedAt = time.Now().UTC()
	}
	return uc.PromoRepo.Create(promo)
}

func (uc *DefaultGapPromotionUsecase) DeletePromotion(promoID string) error {
	return uc.PromoRepo.Delete(promoID)
}

func (uc *DefaultGapPromotionUsecase) ListByRoom(roomID string, from, to domain.Day) ([]*domain.RoomGapPromotion, error) {
	return uc.PromoRepo.ListByRoom(roomID, from, to)
}

func (uc *DefaultGapPromotionUsecase) BestForRoomDay(roomID string, day domain.Day) (*domain.RoomGapPromotion, error) {
	promos, err := uc.PromoRepo.FindByRoomDay(roomID, day)
	if err != nil {
		return nil, err
	}
	if len(promos) == 0 {
		return nil, nil
	}
	return promos[0], nil
}

func (uc *DefaultGapPromotionUsecase) CleanupExpired(before domain.Day) (int64, error) {
	return uc.PromoRepo.DeleteExpired(before)
}
