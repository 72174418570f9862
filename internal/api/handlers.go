package api

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"chatwithgod/internal/model"
	"chatwithgod/internal/service"
	"chatwithgod/internal/tarot"
	"chatwithgod/internal/util"
)

const (
	maxMessageChars = 1000
	maxAudioBytes   = 25 * 1024 * 1024
	previewChars    = 100
)

// Speech covers both speech directions of the voice pipeline.
type Speech interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Handler holds the handler dependencies. The deck and the summary are
// loaded once at startup and never written afterwards.
type Handler struct {
	rag     *service.RAGService
	speech  Speech
	deck    *tarot.Deck
	summary model.BooksSummary
	log     *zap.Logger
}

func NewHandler(rag *service.RAGService, speech Speech, deck *tarot.Deck, summary model.BooksSummary, log *zap.Logger) *Handler {
	return &Handler{rag: rag, speech: speech, deck: deck, summary: summary, log: log}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Chat answers a text question through the RAG pipeline.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}
	if utf8.RuneCountInString(message) > maxMessageChars {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is too long (max 1000 characters)"})
	}

	answer, passages, err := h.rag.Ask(c.UserContext(), message)
	if err != nil {
		h.log.Error("chat pipeline failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to receive guidance. Please try again."})
	}

	return c.JSON(model.ChatResponse{
		Response: answer,
		Sources:  sources(passages),
	})
}

// VoiceChat transcribes uploaded audio, answers through the RAG pipeline
// and narrates the answer back as a data URI.
func (h *Handler) VoiceChat(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No audio file provided"})
	}
	if file.Size > maxAudioBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Audio file is too large (max 25MB)"})
	}

	f, err := file.Open()
	if err != nil {
		h.log.Error("opening uploaded audio failed", zap.Error(err))
		return voiceFailure(c)
	}
	defer f.Close()
	audio, err := io.ReadAll(f)
	if err != nil {
		h.log.Error("reading uploaded audio failed", zap.Error(err))
		return voiceFailure(c)
	}

	ctx := c.UserContext()
	transcription, err := h.speech.Transcribe(ctx, audio, file.Filename)
	if err != nil {
		h.log.Error("transcription failed", zap.Error(err))
		return voiceFailure(c)
	}
	transcription = strings.TrimSpace(transcription)
	if transcription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not understand the audio. Please try speaking again."})
	}

	answer, passages, err := h.rag.Ask(ctx, transcription)
	if err != nil {
		h.log.Error("voice chat pipeline failed", zap.Error(err), zap.String("transcription", transcription))
		return voiceFailure(c)
	}

	narration, err := h.speech.Synthesize(ctx, answer)
	if err != nil {
		h.log.Error("narration failed", zap.Error(err))
		return voiceFailure(c)
	}

	return c.JSON(model.VoiceChatResponse{
		Transcription: transcription,
		Response:      answer,
		AudioURL:      "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(narration),
		Sources:       scoredSources(passages),
	})
}

// Books returns the ingestion summary loaded at startup. An uninitialized
// library is the empty summary, never an error.
func (h *Handler) Books(c *fiber.Ctx) error {
	return c.JSON(h.summary)
}

// TarotDaily draws one card uniformly at random.
func (h *Handler) TarotDaily(c *fiber.Ctx) error {
	card, number := h.deck.Draw()
	return c.JSON(model.TarotDraw{
		Name:        card.Name,
		Description: card.Description,
		ImageURL:    c.BaseURL() + card.ImagePath,
		CardNumber:  number,
		TotalCards:  h.deck.Size(),
	})
}

func voiceFailure(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process voice message. Please try again."})
}

func sources(passages []model.Passage) []model.Source {
	out := make([]model.Source, 0, len(passages))
	for _, p := range passages {
		out = append(out, model.Source{
			Book:    bookLabel(p),
			Preview: util.Preview(p.Content, previewChars),
		})
	}
	return out
}

func scoredSources(passages []model.Passage) []model.ScoredSource {
	out := make([]model.ScoredSource, 0, len(passages))
	for _, p := range passages {
		out = append(out, model.ScoredSource{
			Book:    bookLabel(p),
			Preview: util.Preview(p.Content, previewChars),
			Score:   p.Score,
		})
	}
	return out
}

func bookLabel(p model.Passage) string {
	if p.Metadata.Book == "" {
		return service.DefaultSourceLabel
	}
	return p.Metadata.Book
}
