package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

// ClassHandler handles class listing, creation, moderation and counter updates.
type ClassHandler struct {
	classes ports.ClassService
}

func NewClassHandler(classes ports.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List handles GET /services.
//
// @Summary      List all classes
// @Tags         classes
// @Produce      json
// @Success      200  {array}  domain.Class
// @Router       /services [get]
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.classes.ListClasses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// ListPopular handles GET /popular. The filter is a narrow enumerated
// query-parameter contract; nothing else from the request reaches the store.
//
// @Summary      List classes by booked count descending
// @Tags         classes
// @Produce      json
// @Param        status            query     string  false  "Filter by moderation status"  Enums(pending, approved, denied)
// @Param        instructor_email  query     string  false  "Filter by instructor email"
// @Param        limit             query     int     false  "Max rows (default 6, cap 50)"
// @Success      200               {array}   domain.Class
// @Failure      400               {object}  errorResponse
// @Router       /popular [get]
func (h *ClassHandler) ListPopular(c echo.Context) error {
	filter := ports.PopularFilter{
		Status:          c.QueryParam("status"),
		InstructorEmail: c.QueryParam("instructor_email"),
	}
	switch filter.Status {
	case "", string(domain.StatusPending), string(domain.StatusApproved), string(domain.StatusDenied):
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = limit
	}

	classes, err := h.classes.ListPopular(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// Create handles POST /services.
//
// @Summary      Create a class (status starts pending)
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassRequest  true  "Class details"
// @Success      201   {object}  createClassResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /services [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.classes.CreateClass(c.Request().Context(), ports.CreateClassInput{
		Title:           req.Title,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Image:           req.Image,
		Price:           req.Price,
		Seats:           req.Seats,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createClassResponse{InsertedID: id})
}

// UpdateCounters handles PATCH /services/booking/:id.
//
// @Summary      Set seat/booked counters
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Class id"
// @Param        body  body      counterUpdateRequest  true  "Counters to set"
// @Success      200   {object}  updateResultResponse
// @Failure      400   {object}  errorResponse
// @Router       /services/booking/{id} [patch]
func (h *ClassHandler) UpdateCounters(c echo.Context) error {
	var req counterUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.classes.UpdateCounters(c.Request().Context(), c.Param("id"), ports.CounterUpdate{
		Seats:  req.Seats,
		Booked: req.Booked,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateResultResponse{Matched: result.Matched, Modified: result.Modified})
}

// SetFeedback handles PATCH /services/feedback/:id.
func (h *ClassHandler) SetFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.classes.SetFeedback(c.Request().Context(), c.Param("id"), req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateResultResponse{Matched: result.Matched, Modified: result.Modified})
}

// Approve handles PATCH /services/approved/:id.
//
// @Summary      Approve a pending class
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Class id"
// @Success      200  {object}  updateResultResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /services/approved/{id} [patch]
func (h *ClassHandler) Approve(c echo.Context) error {
	return h.transition(c, domain.StatusApproved)
}

// Deny handles PATCH /services/denied/:id.
func (h *ClassHandler) Deny(c echo.Context) error {
	return h.transition(c, domain.StatusDenied)
}

func (h *ClassHandler) transition(c echo.Context, next domain.ClassStatus) error {
	result, err := h.classes.Transition(c.Request().Context(), c.Param("id"), next)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateResultResponse{Matched: result.Matched, Modified: result.Modified})
}
