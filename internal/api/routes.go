package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const maxJSONBytes = 10 * 1024 * 1024

func RegisterRoutes(app *fiber.App, h *Handler, tarotImageDir string) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/tarot-images", tarotImageDir)

	api := app.Group("/api", rateLimit(), jsonBodyLimit)
	api.Get("/health", h.Health)
	api.Post("/chat", h.Chat)
	api.Get("/books", h.Books)
	api.Get("/tarot-daily", h.TarotDaily)
	api.Post("/voice-chat", h.VoiceChat)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint not found"})
	})
}

// rateLimit caps every /api route at 100 requests per 15 minutes per client
// address, rejected before any handler runs.
func rateLimit() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests from this IP, please try again later.",
			})
		},
	})
}

// jsonBodyLimit caps JSON payloads below the app-wide body limit, which has
// to stay large enough for audio uploads.
func jsonBodyLimit(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) && len(c.Body()) > maxJSONBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "Request body too large"})
	}
	return c.Next()
}
