package domain

// Review is a free-form testimonial. Read-only in this system.
type Review struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Image  string  `json:"image,omitempty"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}
