package handler

type createClassRequest struct {
	Title           string  `json:"title"            validate:"required"`
	InstructorName  string  `json:"instructor_name"  validate:"required"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"            validate:"gte=0"`
	Seats           int     `json:"seats"            validate:"required,gt=0"`
}

type createClassResponse struct {
	InsertedID string `json:"inserted_id"`
}

// counterUpdateRequest carries the seats/booked counters to set. Omitted
// fields are left untouched.
type counterUpdateRequest struct {
	Seats  *int `json:"seats"  validate:"omitempty,gte=0"`
	Booked *int `json:"booked" validate:"omitempty,gte=0"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}
