package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

// UserHandler handles user registration, listing, role checks and
// role promotion.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users — create-or-ignore by email.
//
// @Summary      Register a user unless the email already exists
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.users.Register(c.Request().Context(), ports.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExists {
		return c.JSON(http.StatusOK, userExistsResponse{Message: "user already exists"})
	}
	return c.JSON(http.StatusOK, createUserResponse{InsertedID: result.InsertedID})
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /users/admin/:email.
//
// @Summary      Check whether the caller holds the admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email to check"
// @Success      200    {object}  map[string]bool
// @Failure      401    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	return h.checkRole(c, "admin", domain.RoleAdmin)
}

// CheckInstructor handles GET /users/instructor/:email.
func (h *UserHandler) CheckInstructor(c echo.Context) error {
	return h.checkRole(c, "instructor", domain.RoleInstructor)
}

// CheckStudent handles GET /users/student/:email.
func (h *UserHandler) CheckStudent(c echo.Context) error {
	return h.checkRole(c, "student", domain.RoleStudent)
}

// checkRole answers {<key>: bool}. When the path email differs from the
// token's claim email, the answer is false regardless of the stored role.
func (h *UserHandler) checkRole(c echo.Context, key, role string) error {
	claimEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if claimEmail != email {
		return c.JSON(http.StatusOK, map[string]bool{key: false})
	}

	has, err := h.users.HasRole(c.Request().Context(), email, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{key: has})
}

// PromoteAdmin handles PATCH /users/admin/:id.
//
// @Summary      Set a user's role to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  updateResultResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) PromoteAdmin(c echo.Context) error {
	return h.promote(c, domain.RoleAdmin)
}

// PromoteInstructor handles PATCH /users/instructor/:id.
func (h *UserHandler) PromoteInstructor(c echo.Context) error {
	return h.promote(c, domain.RoleInstructor)
}

func (h *UserHandler) promote(c echo.Context, role string) error {
	result, err := h.users.Promote(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateResultResponse{
		Matched:  result.Matched,
		Modified: result.Modified,
	})
}
