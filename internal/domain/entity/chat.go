package entity

import (
	"fmt"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single transcript entry. Transcripts are append-only and
// owned by exactly one (user email, idea id) pair.
type Message struct {
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TranscriptKey builds the composite key a transcript is stored under.
func TranscriptKey(email string, ideaID int) string {
	return fmt.Sprintf("%s_%d", email, ideaID)
}
