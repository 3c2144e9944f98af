package domain

var (
	AI_AUTH_FAILED         = "AI service authentication failed"
	AI_RATE_LIMITED        = "AI service rate limit exceeded"
	AI_INVALID_REQUEST     = "Invalid request to AI service"
	AI_SERVICE_ERROR       = "AI service error"
	AI_PARSE_FAILED        = "Failed to parse AI response"
	LESSON_GENERATE_FAILED = "Error generating lesson"
	STORY_GENERATE_FAILED  = "Error generating story starters"
	CHAT_FAILED            = "Error generating response"
	SUBJECT_NOT_FOUND      = "Subject not found"
	HEALTH_STATUS          = "healthy"
	HEALTH_MESSAGE         = "KidsMentor API is running"
)
