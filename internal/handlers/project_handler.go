package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.PostProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	if err := h.projectService.Create(&req); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Missing required fields"})
		}
		slog.Error("project insert failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Database error"})
	}

	return c.JSON(dto.MessageResponse{Message: "Project posted successfully"})
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.ListAll()
	if err != nil {
		slog.Error("project listing failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error retrieving projects"})
	}
	return c.JSON(dto.NewProjectResponses(projects))
}

func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	projects, err := h.projectService.ListByClient(c.Query("email"))
	if err != nil {
		slog.Error("client project listing failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Error retrieving client projects"})
	}
	return c.JSON(dto.NewProjectResponses(projects))
}
