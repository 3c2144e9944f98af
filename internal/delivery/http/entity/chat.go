package entity

// ChatRequest carries one tutoring query. ConversationID is an opaque
// caller-supplied token that is echoed back, never stored. StudentProfile is
// an open map; only interests, preferredDifficulty and learningStyle are
// inspected.
type ChatRequest struct {
	Query          string         `json:"query" validate:"required"`
	ConversationID string         `json:"conversationId" validate:"required"`
	StudentProfile map[string]any `json:"studentProfile"`
}

type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
}
