package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	if err := h.authService.Signup(&req); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Missing required fields"})
		}
		slog.Error("signup failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Signup failed"})
	}

	return c.JSON(dto.MessageResponse{Message: "Signup successful"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Invalid email or password"})
		}
		slog.Error("login failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
	}

	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Role:    result.Role,
		Email:   result.Email,
		Token:   result.Token,
	})
}
