package usecase

import (
	"fmt"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/google/uuid"
)

// defaultBaseRate is the documented placeholder used when an active block
// carries no room-type prices at all: 100 currency units in minor units.
const defaultBaseRate int64 = 10000

type SeasonUsecase interface {
	CreateBlock(block *domain.SeasonBlock) error
	UpdateBlock(block *domain.SeasonBlock) error
	DeleteBlock(blockID string) error
	GetBlock(blockID string) (*domain.SeasonBlock, error)
	ListBlocks(hotelID string) ([]*domain.SeasonBlock, error)

	// ConfirmBlock activates a draft block. The overlap check against other
	// active blocks and the state flip happen atomically in the repository.
	ConfirmBlock(blockID string) (*domain.SeasonBlock, error)
	DemoteBlock(blockID string) error

	// BasePrice resolves the seasonal base nightly rate for the day.
	// Returns domain.ErrNoPriceConfigured when no active block covers it.
	BasePrice(hotelID string, day domain.Day, roomTypeID string) (int64, error)
}

type DefaultSeasonUsecase struct {
	SeasonRepo domain.SeasonBlockRepository
}

func NewDefaultSeasonUsecase(seasonRepo domain.SeasonBlockRepository) *DefaultSeasonUsecase {
	return &DefaultSeasonUsecase{SeasonRepo: seasonRepo}
}

func (uc *DefaultSeasonUsecase) CreateBlock(block *domain.SeasonBlock) error {
	if block.EndDay.Before(block.StartDay) {
		return fmt.Errorf("season block end day %s is before start day %s", block.EndDay, block.StartDay)
	}
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	// New blocks always start life as drafts; activation goes through
	// ConfirmBlock so the overlap invariant holds.
	block.Status = domain.SeasonDraft
	return uc.SeasonRepo.Create(block)
}

func (uc *DefaultSeasonUsecase) UpdateBlock(block *domain.SeasonBlock) error {
	if block.EndDay.Before(block.StartDay) {
		return fmt.Errorf("season block end day %s is before start day %s", block.EndDay, block.StartDay)
	}
	existing, err := uc.SeasonRepo.GetByID(block.ID)
	if err != nil {
		return err
	}
	block.Status = existing.Status

	if err := uc.SeasonRepo.Update(block); err != nil {
		return err
	}

	// An active block whose services are all switched off no longer sells
	// anything and drops back to draft.
	if existing.Status == domain.SeasonActive && len(block.ServiceAdjustments) > 0 && allDisabled(block.ServiceAdjustments) {
		return uc.SeasonRepo.Demote(block.ID)
	}
	return nil
}

func allDisabled(adjustments []domain.SeasonServiceAdjustment) bool {
	for _, adj := range adjustments {
		if adj.Enabled {
			return false
		}
	}
	return true
}

func (uc *DefaultSeasonUsecase) DeleteBlock(blockID string) error {
	return uc.SeasonRepo.Delete(blockID)
}

func (uc *DefaultSeasonUsecase) GetBlock(blockID string) (*domain.SeasonBlock, error) {
	return uc.SeasonRepo.GetByID(blockID)
}

func (uc *DefaultSeasonUsecase) ListBlocks(hotelID string) ([]*domain.SeasonBlock, error) {
	return uc.SeasonRepo.ListByHotel(hotelID)
}

func (uc *DefaultSeasonUsecase) ConfirmBlock(blockID string) (*domain.SeasonBlock, error) {
	return uc.SeasonRepo.Confirm(blockID, time.Now().UTC())
}

func (uc *DefaultSeasonUsecase) DemoteBlock(blockID string) error {
	return uc.SeasonRepo.Demote(blockID)
}

func (uc *DefaultSeasonUsecase) BasePrice(hotelID string, day domain.Day, roomTypeID string) (int64, error) {
	block, err := uc.SeasonRepo.FindActiveForDay(hotelID, day)
	if err != nil {
		if err == domain.ErrNotFound {
			return 0, fmt.Errorf("hotel %s day %s: %w", hotelID, day, domain.ErrNoPriceConfigured)
		}
		return 0, err
	}

	if len(block.RoomPrices) == 0 {
		return defaultBaseRate, nil
	}
	if roomTypeID != "" {
		for _, price := range block.RoomPrices {
			if price.RoomTypeID == roomTypeID {
				return price.BaseRate, nil
			}
		}
	}
	// Room type not priced in this block: fall back to the first listed
	// price rather than failing.
	return block.RoomPrices[0].BaseRate, nil
}
