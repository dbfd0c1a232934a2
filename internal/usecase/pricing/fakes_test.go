package pricing

import (
	"sort"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/usecase"
)

// In-memory repository fakes. They implement just enough of the repository
// contracts for the engine tests; the real gorm implementations are covered
// by integration environments.

type memConfigRepo struct {
	configs map[string]*domain.PricingConfig
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{configs: make(map[string]*domain.PricingConfig)}
}

func (r *memConfigRepo) Upsert(cfg *domain.PricingConfig) error {
	r.configs[cfg.HotelID] = cfg
	return nil
}

func (r *memConfigRepo) GetByHotelID(hotelID string) (*domain.PricingConfig, error) {
	cfg, ok := r.configs[hotelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

func (r *memConfigRepo) ListHotelIDs() ([]string, error) {
	ids := make([]string, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type memDailyRateRepo struct {
	rates map[string]*domain.DailyRoomRate
}

func newMemDailyRateRepo() *memDailyRateRepo {
	return &memDailyRateRepo{rates: make(map[string]*domain.DailyRoomRate)}
}

func rateKey(hotelID, roomTypeID string, day domain.Day) string {
	return hotelID + "|" + roomTypeID + "|" + day.String()
}

func (r *memDailyRateRepo) Upsert(rate *domain.DailyRoomRate) error {
	key := rateKey(rate.HotelID, rate.RoomTypeID, rate.Day)
	if existing, ok := r.rates[key]; ok {
		existing.BaseRate = rate.BaseRate
		existing.DynamicRate = rate.DynamicRate
		return nil
	}
	stored := *rate
	r.rates[key] = &stored
	return nil
}

func (r *memDailyRateRepo) Get(hotelID, roomTypeID string, day domain.Day) (*domain.DailyRoomRate, error) {
	rate, ok := r.rates[rateKey(hotelID, roomTypeID, day)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rate, nil
}

func (r *memDailyRateRepo) GetRange(hotelID, roomTypeID string, from, to domain.Day) ([]*domain.DailyRoomRate, error) {
	var result []*domain.DailyRoomRate
	for _, day := range domain.DaysBetween(from, to) {
		if rate, ok := r.rates[rateKey(hotelID, roomTypeID, day)]; ok {
			result = append(result, rate)
		}
	}
	return result, nil
}

func (r *memDailyRateRepo) SetManualRate(hotelID, roomTypeID string, day domain.Day, rate int64) error {
	key := rateKey(hotelID, roomTypeID, day)
	existing, ok := r.rates[key]
	if !ok {
		existing = &domain.DailyRoomRate{HotelID: hotelID, RoomTypeID: roomTypeID, Day: day, BaseRate: rate}
		r.rates[key] = existing
	}
	existing.DynamicRate = rate
	existing.ManualOverride = true
	return nil
}

func (r *memDailyRateRepo) ClearManualOverride(hotelID, roomTypeID string, day domain.Day) error {
	if existing, ok := r.rates[rateKey(hotelID, roomTypeID, day)]; ok {
		existing.ManualOverride = false
	}
	return nil
}

type memOpenDayRepo struct {
	days map[string]*domain.OpenDay
}

func newMemOpenDayRepo() *memOpenDayRepo {
	return &memOpenDayRepo{days: make(map[string]*domain.OpenDay)}
}

func openDayKey(hotelID string, day domain.Day) string {
	return hotelID + "|" + day.String()
}

func (r *memOpenDayRepo) Upsert(openDay *domain.OpenDay) error {
	r.days[openDayKey(openDay.HotelID, openDay.Day)] = openDay
	return nil
}

func (r *memOpenDayRepo) Get(hotelID string, day domain.Day) (*domain.OpenDay, error) {
	openDay, ok := r.days[openDayKey(hotelID, day)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return openDay, nil
}

func (r *memOpenDayRepo) GetRange(hotelID string, from, to domain.Day) ([]*domain.OpenDay, error) {
	var result []*domain.OpenDay
	for _, day := range domain.DaysBetween(from, to) {
		if openDay, ok := r.days[openDayKey(hotelID, day)]; ok {
			result = append(result, openDay)
		}
	}
	return result, nil
}

type memRoomTypeRepo struct {
	types map[string]*domain.RoomType
}

func newMemRoomTypeRepo() *memRoomTypeRepo {
	return &memRoomTypeRepo{types: make(map[string]*domain.RoomType)}
}

func (r *memRoomTypeRepo) GetByID(roomTypeID string) (*domain.RoomType, error) {
	roomType, ok := r.types[roomTypeID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return roomType, nil
}

func (r *memRoomTypeRepo) ListByHotel(hotelID string) ([]*domain.RoomType, error) {
	var result []*domain.RoomType
	for _, roomType := range r.types {
		if roomType.HotelID == hotelID {
			result = append(result, roomType)
		}
	}
	return result, nil
}

type memSeasonRepo struct {
	blocks map[string]*domain.SeasonBlock
}

func newMemSeasonRepo() *memSeasonRepo {
	return &memSeasonRepo{blocks: make(map[string]*domain.SeasonBlock)}
}

func (r *memSeasonRepo) Create(block *domain.SeasonBlock) error {
	r.blocks[block.ID] = block
	return nil
}

func (r *memSeasonRepo) Update(block *domain.SeasonBlock) error {
	if _, ok := r.blocks[block.ID]; !ok {
		return domain.ErrNotFound
	}
	r.blocks[block.ID] = block
	return nil
}

func (r *memSeasonRepo) Delete(blockID string) error {
	delete(r.blocks, blockID)
	return nil
}

func (r *memSeasonRepo) GetByID(blockID string) (*domain.SeasonBlock, error) {
	block, ok := r.blocks[blockID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return block, nil
}

func (r *memSeasonRepo) ListByHotel(hotelID string) ([]*domain.SeasonBlock, error) {
	var result []*domain.SeasonBlock
	for _, block := range r.blocks {
		if block.HotelID == hotelID {
			result = append(result, block)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDay.Before(result[j].StartDay) })
	return result, nil
}

func (r *memSeasonRepo) FindActiveForDay(hotelID string, day domain.Day) (*domain.SeasonBlock, error) {
	for _, block := range r.blocks {
		if block.HotelID == hotelID && block.Status == domain.SeasonActive && block.Covers(day) {
			return block, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memSeasonRepo) Confirm(blockID string, savedAt time.Time) (*domain.SeasonBlock, error) {
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

func (r *memSeasonRepo) Demote(blockID string) error {
	block, ok := r.blocks[blockID]
	if !ok {
		return domain.ErrNotFound
	}
	block.Status = domain.SeasonDraft
	return nil
}

type memRoomRepo struct {
	rooms map[string]*domain.Room
	total int64
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[string]*domain.Room)}
}

func (r *memRoomRepo) GetByID(roomID string) (*domain.Room, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return room, nil
}

func (r *memRoomRepo) CountByHotel(hotelID string) (int64, error) {
	return r.total, nil
}

type memReservationRepo struct {
	reservations map[string]*domain.Reservation
	nights       map[string][]*domain.ReservationNightRate
	occupied     map[string]int64 // day string -> active count
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{
		reservations: make(map[string]*domain.Reservation),
		nights:       make(map[string][]*domain.ReservationNightRate),
		occupied:     make(map[string]int64),
	}
}

func (r *memReservationRepo) Create(res *domain.Reservation, nights []*domain.ReservationNightRate) error {
	r.reservations[res.ID] = res
	r.nights[res.ID] = nights
	return nil
}

func (r *memReservationRepo) GetByID(reservationID string) (*domain.Reservation, error) {
	res, ok := r.reservations[reservationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (r *memReservationRepo) GetByCode(code string) (*domain.Reservation, error) {
	for _, res := range r.reservations {
		if res.Code == code {
			return res, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memReservationRepo) GetNightRates(reservationID string) ([]*domain.ReservationNightRate, error) {
	return r.nights[reservationID], nil
}

func (r *memReservationRepo) Cancel(reservationID string) error {
	res, ok := r.reservations[reservationID]
	if !ok {
		return domain.ErrNotFound
	}
	res.Status = domain.ReservationCancelled
	return nil
}

func (r *memReservationRepo) CountActiveOverlapping(hotelID string, day domain.Day) (int64, error) {
	return r.occupied[day.String()], nil
}

type memMealRepo struct {
	rules map[string]*domain.MealPricingRule
}

func newMemMealRepo() *memMealRepo {
	return &memMealRepo{rules: make(map[string]*domain.MealPricingRule)}
}

func (r *memMealRepo) Upsert(rule *domain.MealPricingRule) error {
	r.rules[rule.HotelID] = rule
	return nil
}

func (r *memMealRepo) GetByHotelID(hotelID string) (*domain.MealPricingRule, error) {
	rule, ok := r.rules[hotelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rule, nil
}

type memPromoRepo struct {
	promos []*domain.RoomGapPromotion
}

func (r *memPromoRepo) Create(promo *domain.RoomGapPromotion) error {
	r.promos = append(r.promos, promo)
	return nil
}

func (r *memPromoRepo) Delete(promoID string) error {
	for i, promo := range r.promos {
		if promo.ID == promoID {
			r.promos = append(r.promos[:i], r.promos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memPromoRepo) FindByRoomDay(roomID string, day domain.Day) ([]*domain.RoomGapPromotion, error) {
	var result []*domain.RoomGapPromotion
	for _, promo := range r.promos {
		if promo.RoomID == roomID && promo.Day.Equal(day) {
			result = append(result, promo)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *memPromoRepo) ListByRoom(roomID string, from, to domain.Day) ([]*domain.RoomGapPromotion, error) {
	var result []*domain.RoomGapPromotion
	for _, promo := range r.promos {
		if promo.RoomID == roomID && !promo.Day.Before(from) && !promo.Day.After(to) {
			result = append(result, promo)
		}
	}
	return result, nil
}

func (r *memPromoRepo) DeleteExpired(before domain.Day) (int64, error) {
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

// testEngine bundles the engine with the fakes it was wired on so tests can
// seed state and inspect effects.
type testEngine struct {
	engine *DefaultRateEngine

	configs      *memConfigRepo
	dailyRates   *memDailyRateRepo
	openDays     *memOpenDayRepo
	roomTypes    *memRoomTypeRepo
	seasons      *memSeasonRepo
	rooms        *memRoomRepo
	reservations *memReservationRepo
	meals        *memMealRepo
	promos       *memPromoRepo
}

func newTestEngine() *testEngine {
	te := &testEngine{
		configs:      newMemConfigRepo(),
		dailyRates:   newMemDailyRateRepo(),
		openDays:     newMemOpenDayRepo(),
		roomTypes:    newMemRoomTypeRepo(),
		seasons:      newMemSeasonRepo(),
		rooms:        newMemRoomRepo(),
		reservations: newMemReservationRepo(),
		meals:        newMemMealRepo(),
		promos:       &memPromoRepo{},
	}

	te.engine = NewDefaultRateEngine(
		te.configs,
		te.dailyRates,
		te.openDays,
		te.roomTypes,
		usecase.NewDefaultSeasonUsecase(te.seasons),
		usecase.NewDefaultOccupancyUsecase(te.reservations, te.rooms),
		usecase.NewDefaultHolidayUsecase(te.openDays),
		usecase.NewDefaultMealUsecase(te.meals),
		usecase.NewDefaultGapPromotionUsecase(te.promos),
		nil,
		nil,
	)
	return te
}
