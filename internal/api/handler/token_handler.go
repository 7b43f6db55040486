package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/ports"
	"github.com/martialverse/booking-api/internal/metrics"
)

// TokenHandler issues bearer tokens from a supplied identity claim.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /tokens.
//
// @Summary      Issue a bearer token for the supplied claim
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Identity claim"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /tokens [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.tokens.Issue(ports.Claims{Email: req.Email})
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
