package domain

import "time"

// Order is the aggregate built up across a browsing session and persisted
// exactly once at checkout. ID is zero until persisted; PlacedAt is stamped by
// the order store at save time, overriding any value already present.
//
// Tacos is append-only while the order is a session draft. The same taco may
// appear twice; no deduplication is applied.
type Order struct {
	ID              int64     `json:"id"`
	DeliveryName    string    `json:"delivery_name"`
	DeliveryAddress string    `json:"delivery_address"`
	DeliveryCity    string    `json:"delivery_city"`
	DeliveryState   string    `json:"delivery_state"`
	DeliveryZip     string    `json:"delivery_zip"`
	CCNumber        string    `json:"-"`
	CCExpiration    string    `json:"-"`
	CCCVV           string    `json:"-"`
	PlacedAt        time.Time `json:"placed_at"`
	UserID          int64     `json:"user_id"`
	Tacos           []Taco    `json:"tacos"`
}

// AddDesign appends a persisted taco to the draft.
func (o *Order) AddDesign(t Taco) {
	o.Tacos = append(o.Tacos, t)
}
