package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/skillforge/marketplace-backend/internal/config"
	"github.com/skillforge/marketplace-backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	bidHandler *handlers.BidHandler,
	freelancerHandler *handlers.FreelancerHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Uploaded attachments are served straight from the content directory.
	app.Static("/uploads", cfg.UploadDir)

	// Legacy notification routes live at the root and answer in plain text
	// (except the feed); the /api group answers in JSON. The split is part of
	// the interface contract.
	app.Get("/getNotifications", bidHandler.Notifications)
	app.Post("/acceptBid", bidHandler.Accept)
	app.Post("/rejectBid", bidHandler.Reject)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)

	api.Post("/post-project", projectHandler.Create)
	api.Get("/projects", projectHandler.List)
	api.Get("/my-projects", projectHandler.ListMine)

	api.Post("/apply", bidHandler.Apply)
	api.Get("/bids/:clientEmail", bidHandler.ListForClient)

	api.Post("/freelancer/profile", freelancerHandler.Upsert)
	api.Get("/freelancers", freelancerHandler.List)
	api.Get("/freelancer/:email", freelancerHandler.Get)
}
