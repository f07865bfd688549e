package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-registry/internal/api/dto"
	"github.com/spec-kit/user-registry/internal/service"
	"github.com/spec-kit/user-registry/pkg/util/errorutil"
)

// UsersHandler exposes the user registry.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.CreateUser(c.UserContext(), service.UserCreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewUserResponse(user),
	})
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	user, ok := h.users.GetUserByID(c.UserContext(), id)
	if !ok {
		return errorutil.NewNotFound("user", map[string]any{"user_id": id})
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Deactivate handles POST /users/:id/deactivate.
// A refused deactivation is a normal outcome and answers 200.
func (h *UsersHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	deactivated := h.users.DeactivateUser(c.UserContext(), id)
	return c.JSON(fiber.Map{
		"data": dto.DeactivateUserResponse{ID: id, Deactivated: deactivated},
	})
}

// Report handles GET /users/report.
func (h *UsersHandler) Report(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(h.users.GenerateUserReport(c.UserContext()))
}
