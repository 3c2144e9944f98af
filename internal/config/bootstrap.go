package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/handler"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/middleware"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/route"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/usecase"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	Log       *logrus.Logger
	Validator *validate.Validator
	Generator llm.TextGenerator
}

func Bootstrap(config *BootstrapConfig) {
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	tutorUsecase := usecase.NewTutorUsecase(usecase.TutorConfig{
		Generator: config.Generator,
		Log:       config.Log,
	})
	storyUsecase := usecase.NewStoryUsecase(usecase.StoryConfig{
		Generator: config.Generator,
		Log:       config.Log,
	})
	chatUsecase := usecase.NewChatUsecase(usecase.ChatConfig{
		Generator: config.Generator,
		Log:       config.Log,
	})
	subjectUsecase := usecase.NewSubjectUsecase()

	route.Setup(&route.RouteConfig{
		Api:            config.Api,
		Middleware:     mid,
		LessonHandler:  handler.NewLessonHandler(config.Validator, config.Log, tutorUsecase),
		StoryHandler:   handler.NewStoryHandler(config.Validator, config.Log, storyUsecase),
		ChatHandler:    handler.NewChatHandler(config.Validator, config.Log, chatUsecase),
		SubjectHandler: handler.NewSubjectHandler(config.Log, subjectUsecase),
		HealthHandler:  handler.NewHealthHandler(),
	})
}
