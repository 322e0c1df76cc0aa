package models

type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleAI   ChatRole = "ai"
)

// IntroMessageID marks the greeting seeded into an empty chat history.
const IntroMessageID = "init"

type ChatMessage struct {
	ID      string   `json:"id"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
	Image   *string  `json:"image,omitempty"` // base64, user messages only
}
