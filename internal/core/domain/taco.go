package domain

import "time"

// Taco is a named selection of ingredients composed on the design form.
// ID is zero until the taco has been persisted; only persisted tacos may be
// referenced by an order line item.
type Taco struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	Ingredients []string  `json:"ingredients"` // ingredient ids, in selection order
}

// Persisted reports whether the taco has been assigned a generated id.
func (t *Taco) Persisted() bool {
	return t.ID != 0
}
