package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"chatwithgod/internal/api"
	"chatwithgod/internal/books"
	"chatwithgod/internal/config"
	"chatwithgod/internal/retrieval"
	"chatwithgod/internal/service"
	"chatwithgod/internal/tarot"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}
	cfg := config.Load()

	// collaborators
	retriever := retrieval.NewClient(cfg.PythonBin, cfg.RetrievalScript, cfg.CallTimeout)
	llm := service.NewLLMClient(cfg)
	rag := service.NewRAGService(retriever, llm, cfg.RetrievalTopK)

	// load-once state
	deck := tarot.NewDeck()
	summary := books.Load(cfg.SummaryPath)
	log.Info("library summary loaded",
		zap.Int("books", summary.TotalBooks),
		zap.Int("chunks", summary.TotalChunks))

	app := fiber.New(fiber.Config{
		// room for the 25MB audio upload plus multipart overhead
		BodyLimit:    26 * 1024 * 1024,
		ErrorHandler: errorHandler(log),
	})
	api.RegisterRoutes(app, api.NewHandler(rag, llm, deck, summary, log), cfg.TarotImageDir)

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// errorHandler is the catch-all: log the detail, answer with a generic body.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		log.Error("unhandled error",
			zap.Error(err),
			zap.Int("status", code),
			zap.String("path", c.Path()))
		if code == fiber.StatusNotFound {
			return c.Status(code).JSON(fiber.Map{"error": "Endpoint not found"})
		}
		return c.Status(code).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
	}
}
