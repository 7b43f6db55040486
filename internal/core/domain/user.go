package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("forbidden access")
var ErrUnauthenticated = errors.New("unauthorized access")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidID = errors.New("invalid id")

// User models an account on the platform. Email is the sole identity key;
// an empty role means the account carries no privileges.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
