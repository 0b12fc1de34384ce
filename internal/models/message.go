package models

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a user's append-only chat log. SubmissionID is
// set when the message refers to a specific submission.
type ChatMessage struct {
	ID           string    `json:"id"`
	Role         Role      `json:"role"`
	Content      string    `json:"content"`
	SubmissionID string    `json:"submissionId,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
