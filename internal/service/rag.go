package service

import (
	"context"
	"fmt"
	"strings"

	"chatwithgod/internal/model"
)

// DefaultSourceLabel is used for passages with no book metadata.
const DefaultSourceLabel = "Sacred Text"

// Retriever finds passages relevant to a query.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]model.Passage, error)
}

// Generator produces a completion from a system prompt and a user message.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// RAGService answers a seeker's question from retrieved passages: retrieve,
// assemble the context block, generate under the persona prompt.
type RAGService struct {
	retriever Retriever
	generator Generator
	topK      int
}

func NewRAGService(r Retriever, g Generator, topK int) *RAGService {
	if topK <= 0 {
		topK = 3
	}
	return &RAGService{retriever: r, generator: g, topK: topK}
}

// Ask runs the full pipeline. The passages are returned alongside the answer
// so callers can attach source attributions. A failure at any stage fails
// the whole call; there are no partial results and no retries.
func (s *RAGService) Ask(ctx context.Context, query string) (string, []model.Passage, error) {
	passages, err := s.retriever.Search(ctx, query, s.topK)
	if err != nil {
		return "", nil, fmt.Errorf("retrieval error: %w", err)
	}

	answer, err := s.generator.Complete(ctx, personaPrompt(buildContext(passages)), query)
	if err != nil {
		return "", nil, fmt.Errorf("generation error: %w", err)
	}
	return answer, passages, nil
}

// buildContext concatenates passages, each under its source label,
// separated by blank lines.
func buildContext(passages []model.Passage) string {
	blocks := make([]string, 0, len(passages))
	for _, p := range passages {
		book := p.Metadata.Book
		if book == "" {
			book = DefaultSourceLabel
		}
		blocks = append(blocks, fmt.Sprintf("From %s:\n%s", book, p.Content))
	}
	return strings.Join(blocks, "\n\n")
}
