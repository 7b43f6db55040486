package domain

import (
	"errors"
	"time"
)

// ClassStatus represents the moderation state of a class listing.
type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

// validTransitions defines the allowed moderation transitions. Approved and
// denied are terminal; nothing returns a class to pending.
var validTransitions = map[ClassStatus][]ClassStatus{
	StatusPending: {StatusApproved, StatusDenied},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrClassNotFound = errors.New("class not found")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ClassStatus) CanTransitionTo(next ClassStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Class is a bookable martial-arts class listed by an instructor.
// Seats and Booked are independent of Status: the counters move with cart
// activity while Status moves only through admin moderation.
type Class struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	InstructorName  string      `json:"instructor_name"`
	InstructorEmail string      `json:"instructor_email"`
	Image           string      `json:"image,omitempty"`
	Price           float64     `json:"price"`
	Seats           int         `json:"seats"`
	Booked          int         `json:"booked"`
	Status          ClassStatus `json:"status"`
	Feedback        string      `json:"feedback,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}
