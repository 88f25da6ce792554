package models

import (
	"strings"
	"time"
)

// Sentence sources. GUI submissions come from the desktop recognizer tool,
// web submissions from the authenticated browser client.
const (
	SourceGUI = "gui"
	SourceWeb = "web"
	SourceAPI = "api"
)

type Sentence struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"user,omitempty"`
	Text      string    `json:"text"`
	WordCount int       `json:"wordCount"`
	SessionID string    `json:"sessionId"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// SentenceOwner is the inlined owner info the admin panel shows next to a sentence.
type SentenceOwner struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SentenceWithUser is a sentence joined with its owner, when one exists.
type SentenceWithUser struct {
	Sentence
	User *SentenceOwner `json:"user,omitempty"`
}

// CountWords returns the number of whitespace-separated non-empty tokens in text.
// A sentence's word_count is always recomputed with this before persisting.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
