package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/services"
	"github.com/skillforge/marketplace-backend/internal/uploads"
)

type FreelancerHandler struct {
	freelancerService *services.FreelancerService
	store             *uploads.Store
}

func NewFreelancerHandler(freelancerService *services.FreelancerService, store *uploads.Store) *FreelancerHandler {
	return &FreelancerHandler{freelancerService: freelancerService, store: store}
}

// Upsert saves the multipart profile form. profileImage and resume are
// optional; when absent, previously stored references are kept.
func (h *FreelancerHandler) Upsert(c *fiber.Ctx) error {
	in := dto.FreelancerUpsertInput{
		Email:    c.FormValue("email"),
		Name:     c.FormValue("name"),
		Location: c.FormValue("location"),
		Rate:     parseDecimal(c.FormValue("rate")),
		About:    c.FormValue("about"),
		Skills:   c.FormValue("skills"),
		Rating:   parseDecimal(c.FormValue("rating")),
		Github:   c.FormValue("github"),
		Linkedin: c.FormValue("linkedin"),
	}
	in.Projects, _ = strconv.Atoi(c.FormValue("projects"))

	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Missing email"})
	}

	if fh, err := c.FormFile("profileImage"); err == nil {
		name, err := h.store.SaveMultipart(fh)
		if err != nil {
			slog.Error("profile image upload failed", "route", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Failed to store upload"})
		}
		in.ProfileImage = name
	}
	if fh, err := c.FormFile("resume"); err == nil {
		name, err := h.store.SaveMultipart(fh)
		if err != nil {
			slog.Error("resume upload failed", "route", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Failed to store upload"})
		}
		in.Resume = name
	}

	created, err := h.freelancerService.Upsert(&in)
	if err != nil {
		slog.Error("profile upsert failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Database error"})
	}

	msg := "Profile updated successfully!"
	if created {
		msg = "Profile created successfully!"
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

func (h *FreelancerHandler) Get(c *fiber.Ctx) error {
	f, err := h.freelancerService.GetByEmail(c.Params("email"))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Profile not found"})
		}
		slog.Error("profile lookup failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Database error"})
	}
	return c.JSON(dto.NewFreelancerResponse(*f))
}

func (h *FreelancerHandler) List(c *fiber.Ctx) error {
	freelancers, err := h.freelancerService.ListAll()
	if err != nil {
		slog.Error("freelancer listing failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Database error"})
	}
	return c.JSON(dto.NewFreelancerResponses(freelancers))
}
