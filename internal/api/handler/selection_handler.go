package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/ports"
)

// SelectionHandler handles a user's class cart.
type SelectionHandler struct {
	selections ports.SelectionService
}

func NewSelectionHandler(selections ports.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

type addSelectionRequest struct {
	ClassID    string  `json:"class_id"    validate:"required"`
	ClassTitle string  `json:"class_title"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"       validate:"gte=0"`
}

type addSelectionResponse struct {
	InsertedID string `json:"inserted_id"`
}

type removeSelectionResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// List handles GET /selected — the caller's cart rows, scoped by the
// claim email, never by a client-supplied parameter.
//
// @Summary      List the caller's cart rows
// @Tags         selections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Selection
// @Failure      401  {object}  errorResponse
// @Router       /selected [get]
func (h *SelectionHandler) List(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	selections, err := h.selections.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, selections)
}

// Add handles POST /selected.
//
// @Summary      Add a class to the caller's cart
// @Tags         selections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addSelectionRequest  true  "Selection details"
// @Success      201   {object}  addSelectionResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /selected [post]
func (h *SelectionHandler) Add(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req addSelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.selections.Add(c.Request().Context(), ports.AddSelectionInput{
		Email:      email,
		ClassID:    req.ClassID,
		ClassTitle: req.ClassTitle,
		Image:      req.Image,
		Price:      req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, addSelectionResponse{InsertedID: id})
}

// Remove handles DELETE /selected/:id.
//
// @Summary      Remove a cart row
// @Tags         selections
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Selection id"
// @Success      200  {object}  removeSelectionResponse
// @Failure      404  {object}  errorResponse
// @Router       /selected/{id} [delete]
func (h *SelectionHandler) Remove(c echo.Context) error {
	if _, err := ctxEmail(c); err != nil {
		return err
	}

	deleted, err := h.selections.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, removeSelectionResponse{DeletedCount: deleted})
}
