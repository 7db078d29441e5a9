package model

import "time"

// Prompt represents a generated prompt stored for a user.
// Rows are immutable after insertion; the only mutation in scope is deletion
// by the owning user.
type Prompt struct {
	ID              int64
	UserID          int64
	Category        string
	Idea            string
	GeneratedPrompt string
	CreatedAt       time.Time
}

// GeneratePromptRequest represents a prompt generation request.
// Category is optional and defaults to "General".
type GeneratePromptRequest struct {
	Idea     string `json:"idea" validate:"required"`
	Category string `json:"category"`
}

// PromptResponse represents a stored prompt in API responses.
type PromptResponse struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Idea      string    `json:"idea"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}
