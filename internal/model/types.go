package model

// Passage is one retrieval hit from the vector-search script.
type Passage struct {
	Content  string          `json:"content"`
	Metadata PassageMetadata `json:"metadata"`
	Score    float64         `json:"score"`
}

type PassageMetadata struct {
	Book   string `json:"book"`
	Source string `json:"source,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// Source attributes part of an answer to a book, with a short excerpt.
type Source struct {
	Book    string `json:"book"`
	Preview string `json:"preview"`
}

// ScoredSource is a Source that also carries the similarity score.
// Voice chat includes it; text chat does not.
type ScoredSource struct {
	Book    string  `json:"book"`
	Preview string  `json:"preview"`
	Score   float64 `json:"score"`
}

type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []Source `json:"sources"`
}

type VoiceChatResponse struct {
	Transcription string         `json:"transcription"`
	Response      string         `json:"response"`
	AudioURL      string         `json:"audioUrl"`
	Sources       []ScoredSource `json:"sources"`
}

// BooksSummary reports what the offline ingester has indexed so far.
type BooksSummary struct {
	Books       []string `json:"books"`
	TotalBooks  int      `json:"totalBooks"`
	TotalChunks int      `json:"totalChunks"`
}

type TarotDraw struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CardNumber  int    `json:"cardNumber"`
	TotalCards  int    `json:"totalCards"`
}
