package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/ports"
)

// PaymentHandler handles payment-intent creation and payment records.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type recordPaymentRequest struct {
	Price         float64  `json:"price"          validate:"required,gt=0"`
	TransactionID string   `json:"transaction_id"`
	SelectionIDs  []string `json:"selection_ids"  validate:"required,min=1"`
	ClassIDs      []string `json:"class_ids"`
}

// CreateIntent handles POST /create-payment.
//
// @Summary      Create a provider payment intent from a price
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Price in major units"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /create-payment [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	if _, err := ctxEmail(c); err != nil {
		return err
	}

	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	secret, err := h.payments.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// Record handles POST /payments — inserts the payment, then deletes the
// referenced cart rows. Both outcomes are returned together.
//
// @Summary      Record a payment and clear the referenced cart rows
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Payment payload"
// @Success      201   {object}  ports.RecordPaymentResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.payments.Record(c.Request().Context(), ports.RecordPaymentInput{
		Email:         email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		SelectionIDs:  req.SelectionIDs,
		ClassIDs:      req.ClassIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// List handles GET /payments — the caller's payment history, date descending.
//
// @Summary      List the caller's payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  errorResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
