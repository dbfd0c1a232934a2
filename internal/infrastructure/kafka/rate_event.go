package kafka

// RateEvent is published after a daily rate row is upserted so downstream
// consumers (channel managers, caches) can react to price changes. Amounts
// are integer minor currency units.
type RateEvent struct {
	HotelID     string `json:"hotel_id"`
	RoomTypeID  string `json:"room_type_id"`
	Day         string `json:"day"`
	BaseRate    int64  `json:"base_rate"`
	DynamicRate int64  `json:"dynamic_rate"`
	Strategy    string `json:"strategy"`
}
