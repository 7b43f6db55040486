package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/ports"
)

// ReviewHandler serves the read-only reviews listing. It talks to the
// repository directly; there is no use-case logic to put in between.
type ReviewHandler struct {
	reviews ports.ReviewRepository
}

func NewReviewHandler(reviews ports.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /reviews.
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
