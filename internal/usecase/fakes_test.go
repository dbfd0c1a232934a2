package usecase

import (
	"errors"
	"sort"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
)

var errRepoDown = errors.New("repository unavailable")

type stubConfigRepo struct {
	configs map[string]*domain.PricingConfig
}

func newStubConfigRepo() *stubConfigRepo {
	return &stubConfigRepo{configs: make(map[string]*domain.PricingConfig)}
}

func (r *stubConfigRepo) Upsert(cfg *domain.PricingConfig) error {
	r.configs[cfg.HotelID] = cfg
	return nil
}

func (r *stubConfigRepo) GetByHotelID(hotelID string) (*domain.PricingConfig, error) {
	cfg, ok := r.configs[hotelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

func (r *stubConfigRepo) ListHotelIDs() ([]string, error) {
	ids := make([]string, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	return ids, nil
}

type stubSeasonRepo struct {
	blocks  map[string]*domain.SeasonBlock
	demoted []string
}

func newStubSeasonRepo() *stubSeasonRepo {
	return &stubSeasonRepo{blocks: make(map[string]*domain.SeasonBlock)}
}

func (r *stubSeasonRepo) Create(block *domain.SeasonBlock) error {
	r.blocks[block.ID] = block
	return nil
}

func (r *stubSeasonRepo) Update(block *domain.SeasonBlock) error {
	if _, ok := r.blocks[block.ID]; !ok {
		return domain.ErrNotFound
	}
	r.blocks[block.ID] = block
	return nil
}

func (r *stubSeasonRepo) Delete(blockID string) error {
	delete(r.blocks, blockID)
	return nil
}

func (r *stubSeasonRepo) GetByID(blockID string) (*domain.SeasonBlock, error) {
	block, ok := r.blocks[blockID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return block, nil
}

func (r *stubSeasonRepo) ListByHotel(hotelID string) ([]*domain.SeasonBlock, error) {
	var result []*domain.SeasonBlock
	for _, block := range r.blocks {
		if block.HotelID == hotelID {
			result = append(result, block)
		}
	}
	return result, nil
}

func (r *stubSeasonRepo) FindActiveForDay(hotelID string, day domain.Day) (*domain.SeasonBlock, error) {
	for _, block := range r.blocks {
		if block.HotelID == hotelID && block.Status == domain.SeasonActive && block.Covers(day) {
			return block, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubSeasonRepo) Confirm(blockID string, savedAt time.Time) (*domain.SeasonBlock, error) {
	block, ok := r.blocks[blockID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, other := range r.blocks {
		if other.ID != blockID && other.HotelID == block.HotelID &&
			other.Status == domain.SeasonActive && other.Overlaps(block) {
			return nil, domain.ErrSeasonOverlap
		}
	}
	block.Status = domain.SeasonActive
	block.LastSavedAt = &savedAt
	return block, nil
}

func (r *stubSeasonRepo) Demote(blockID string) error {
	block, ok := r.blocks[blockID]
	if !ok {
		return domain.ErrNotFound
	}
	block.Status = domain.SeasonDraft
	r.demoted = append(r.demoted, blockID)
	return nil
}

type stubOpenDayRepo struct {
	days map[string]*domain.OpenDay
	err  error
}

func newStubOpenDayRepo() *stubOpenDayRepo {
	return &stubOpenDayRepo{days: make(map[string]*domain.OpenDay)}
}

func (r *stubOpenDayRepo) key(hotelID string, day domain.Day) string {
	return hotelID + "|" + day.String()
}

func (r *stubOpenDayRepo) Upsert(openDay *domain.OpenDay) error {
	if r.err != nil {
		return r.err
	}
	r.days[r.key(openDay.HotelID, openDay.Day)] = openDay
	return nil
}

func (r *stubOpenDayRepo) Get(hotelID string, day domain.Day) (*domain.OpenDay, error) {
	if r.err != nil {
		return nil, r.err
	}
	openDay, ok := r.days[r.key(hotelID, day)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return openDay, nil
}

func (r *stubOpenDayRepo) GetRange(hotelID string, from, to domain.Day) ([]*domain.OpenDay, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*domain.OpenDay
	for _, day := range domain.DaysBetween(from, to) {
		if openDay, ok := r.days[r.key(hotelID, day)]; ok {
			result = append(result, openDay)
		}
	}
	return result, nil
}

type stubMealRepo struct {
	rules map[string]*domain.MealPricingRule
	err   error
}

func newStubMealRepo() *stubMealRepo {
	return &stubMealRepo{rules: make(map[string]*domain.MealPricingRule)}
}

func (r *stubMealRepo) Upsert(rule *domain.MealPricingRule) error {
	r.rules[rule.HotelID] = rule
	return nil
}

func (r *stubMealRepo) GetByHotelID(hotelID string) (*domain.MealPricingRule, error) {
	if r.err != nil {
		return nil, r.err
	}
	rule, ok := r.rules[hotelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rule, nil
}

type stubPromoRepo struct {
	promos []*domain.RoomGapPromotion
}

func (r *stubPromoRepo) Create(promo *domain.RoomGapPromotion) error {
	r.promos = append(r.promos, promo)
	return nil
}

func (r *stubPromoRepo) Delete(promoID string) error {
	for i, promo := range r.promos {
		if promo.ID == promoID {
			r.promos = append(r.promos[:i], r.promos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubPromoRepo) FindByRoomDay(roomID string, day domain.Day) ([]*domain.RoomGapPromotion, error) {
	var result []*domain.RoomGapPromotion
	for _, promo := range r.promos {
		if promo.RoomID == roomID && promo.Day.Equal(day) {
			result = append(result, promo)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *stubPromoRepo) ListByRoom(roomID string, from, to domain.Day) ([]*domain.RoomGapPromotion, error) {
	var result []*domain.RoomGapPromotion
	for _, promo := range r.promos {
		if promo.RoomID == roomID && !promo.Day.Before(from) && !promo.Day.After(to) {
			result = append(result, promo)
		}
	}
	return result, nil
}

func (r *stubPromoRepo) DeleteExpired(before domain.Day) (int64, error) {
	var kept []*domain.RoomGapPromotion
	var removed int64
	for _, promo := range r.promos {
		if promo.Day.Before(before) {
			removed++
			continue
		}
		kept = append(kept, promo)
	}
	r.promos = kept
	return removed, nil
}

type stubRoomRepo struct {
	total int64
	err   error
}

func (r *stubRoomRepo) GetByID(roomID string) (*domain.Room, error) {
	return nil, domain.ErrNotFound
}

func (r *stubRoomRepo) CountByHotel(hotelID string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.total, nil
}

type stubReservationRepo struct {
	occupied int64
	err      error
}

func (r *stubReservationRepo) Create(res *domain.Reservation, nights []*domain.ReservationNightRate) error {
	return nil
}

func (r *stubReservationRepo) GetByID(reservationID string) (*domain.Reservation, error) {
	return nil, domain.ErrNotFound
}

func (r *stubReservationRepo) GetByCode(code string) (*domain.Reservation, error) {
	return nil, domain.ErrNotFound
}

func (r *stubReservationRepo) GetNightRates(reservationID string) ([]*domain.ReservationNightRate, error) {
	return nil, nil
}

func (r *stubReservationRepo) Cancel(reservationID string) error {
	return nil
}

func (r *stubReservationRepo) CountActiveOverlapping(hotelID string, day domain.Day) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.occupied, nil
}
