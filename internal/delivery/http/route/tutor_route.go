package route

func SetupTutorRoutes(c *RouteConfig) {
	c.Api.Post("/generate-lesson", c.LessonHandler.Generate)

	c.Api.Post("/api/story/generate", c.StoryHandler.Generate)

	c.Api.Get("/api/subjects", c.SubjectHandler.List)
	c.Api.Get("/api/subjects/:subject_id/topics", c.SubjectHandler.Topics)

	c.Api.Post("/api/tutoring/chat", c.ChatHandler.Chat)

	c.Api.Get("/health", c.HealthHandler.Check)
}
