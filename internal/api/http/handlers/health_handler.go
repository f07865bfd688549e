package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-registry/internal/service"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	users       *service.UserService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, users *service.UserService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, users: users}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The registry lives in process, so it only needs to be wired.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.users == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "user registry not configured",
			},
		})
	}

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": fiber.Map{"registry": "ok"},
		"users":        h.users.Count(c.UserContext()),
	})
}
