package domain

import "time"

// Feedback is a customer feedback entry. Stored in memory alongside the
// order ledger; rating uses the same 0-5 scale as menu items.
type Feedback struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
