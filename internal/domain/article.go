package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a single piece of news text submitted for review.
// Text is never modified once the article is created.
type Article struct {
	ID         string
	Text       string
	ReceivedAt time.Time
}

// NewArticle stamps raw text with a correlation ID.
func NewArticle(text string) Article {
	return Article{
		ID:         uuid.NewString(),
		Text:       text,
		ReceivedAt: time.Now().UTC(),
	}
}
