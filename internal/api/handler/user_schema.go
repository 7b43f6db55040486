package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// createUserResponse is returned when the user did not exist yet.
type createUserResponse struct {
	InsertedID string `json:"inserted_id"`
}

// userExistsResponse is the benign duplicate shape: HTTP 200, not 409.
type userExistsResponse struct {
	Message string `json:"message"`
}

type updateResultResponse struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}
