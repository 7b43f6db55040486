package domain

import "time"

// Payment is an append-only record of a completed purchase. Its creation is
// causally linked to the deletion of the referenced cart rows, but the two
// writes are not atomic.
type Payment struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transaction_id"`
	SelectionIDs  []string  `json:"selection_ids"`
	ClassIDs      []string  `json:"class_ids,omitempty"`
	Date          time.Time `json:"date"`
}
