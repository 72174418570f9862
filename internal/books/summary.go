package books

import (
	"encoding/json"
	"os"

	"chatwithgod/internal/model"
)

// summaryFile mirrors processing_summary.json written by the offline
// ingestion script.
type summaryFile struct {
	TotalBooks     int      `json:"total_books"`
	TotalChunks    int      `json:"total_chunks"`
	BooksProcessed []string `json:"books_processed"`
}

// Load reads the ingestion summary once. A missing or unreadable file means
// no books have been ingested yet, so the empty summary is returned instead
// of an error.
func Load(path string) model.BooksSummary {
	empty := model.BooksSummary{Books: []string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}
	var f summaryFile
	if err := json.Unmarshal(data, &f); err != nil {
		return empty
	}
	books := f.BooksProcessed
	if books == nil {
		books = []string{}
	}
	return model.BooksSummary{
		Books:       books,
		TotalBooks:  f.TotalBooks,
		TotalChunks: f.TotalChunks,
	}
}
