package domain

import (
	"errors"
	"time"
)

var ErrSelectionNotFound = errors.New("selection not found")

// Selection is a cart row: a class a user has picked but not yet paid for.
// Rows are deleted on purchase or explicit removal; there is no soft delete.
type Selection struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ClassID    string    `json:"class_id"`
	ClassTitle string    `json:"class_title,omitempty"`
	Image      string    `json:"image,omitempty"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
