package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/models"
	"github.com/skillforge/marketplace-backend/internal/services"
	"github.com/skillforge/marketplace-backend/internal/uploads"
)

// Notifier sends the decision email after a status transition commits.
type Notifier interface {
	Notify(toEmail string, outcome models.BidStatus) error
}

type BidHandler struct {
	bidService *services.BidService
	store      *uploads.Store
	notifier   Notifier
}

func NewBidHandler(bidService *services.BidService, store *uploads.Store, notifier Notifier) *BidHandler {
	return &BidHandler{bidService: bidService, store: store, notifier: notifier}
}

// Apply handles the multipart bid submission: the résumé is ingested first,
// then the bid row is inserted referencing the stored name. The two steps are
// not transactional; a failed insert leaves the file behind.
func (h *BidHandler) Apply(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Resume file is missing"})
	}

	email := c.FormValue("email")
	days, _ := strconv.Atoi(c.FormValue("estimated_days"))
	projectID, _ := strconv.Atoi(c.FormValue("project_id"))
	amount := parseDecimal(c.FormValue("bid_amount"))

	resume, err := h.store.SaveMultipart(fileHeader)
	if err != nil {
		slog.Error("resume upload failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ApplyErrorResponse{
			Error: "Upload error", Details: err.Error(),
		})
	}

	if _, err := h.bidService.Submit(uint(projectID), email, resume, days, amount); err != nil {
		slog.Error("bid insert failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ApplyErrorResponse{
			Error: "Database error", Details: err.Error(),
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Bid submitted successfully"})
}

func (h *BidHandler) ListForClient(c *fiber.Ctx) error {
	rows, err := h.bidService.ListForClient(c.Params("clientEmail"))
	if err != nil {
		slog.Error("bid listing failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Server error"})
	}
	return c.JSON(dto.NewBidResponses(rows))
}

func (h *BidHandler) Notifications(c *fiber.Ctx) error {
	rows, err := h.bidService.ListRecentFirst()
	if err != nil {
		slog.Error("notification listing failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Database error"})
	}
	return c.JSON(dto.NewBidResponses(rows))
}

func (h *BidHandler) Accept(c *fiber.Ctx) error {
	return h.decide(c, models.BidAccepted)
}

func (h *BidHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, models.BidRejected)
}

type decisionRequest struct {
	Email string `json:"email"`
}

// decide transitions every bid of the freelancer to the outcome, then mails
// them. A mail failure after the committed update is reported as its own
// condition; the caller sees that the status change stuck. Plain-text
// responses are part of this route group's contract.
func (h *BidHandler) decide(c *fiber.Ctx, outcome models.BidStatus) error {
	var req decisionRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing freelancer email.")
	}

	verb, past := "accept", "accepted"
	if outcome == models.BidRejected {
		verb, past = "reject", "rejected"
	}

	if _, err := h.bidService.TransitionByFreelancer(req.Email, outcome); err != nil {
		slog.Error("bid status update failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to " + verb + " bid.")
	}

	if err := h.notifier.Notify(req.Email, outcome); err != nil {
		slog.Error("decision email failed", "route", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Bid " + past + " but failed to send email.")
	}

	return c.SendString("Bid " + past + " and email sent!")
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
