package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/extract"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

// lessonRequiredKeys must all be present in the model payload or the
// request fails; there is no partial success.
var lessonRequiredKeys = []string{
	"lessonTitle",
	"topic",
	"learningObjectives",
	"difficultyLevel",
	"lessonContent",
	"practiceQuiz",
}

const lessonTemperature = 0.2

type TutorUsecase interface {
	GenerateLesson(ctx context.Context, req entity.LessonRequest) (*entity.LessonResponse, error)
}

type TutorConfig struct {
	Generator llm.TextGenerator
	Log       *logrus.Logger
}

type tutorUsecase struct {
	cfg TutorConfig
}

func NewTutorUsecase(cfg TutorConfig) TutorUsecase {
	return &tutorUsecase{cfg: cfg}
}

func (u *tutorUsecase) GenerateLesson(ctx context.Context, req entity.LessonRequest) (*entity.LessonResponse, error) {
	prompt, difficulty := buildLessonPrompt(req)
	u.cfg.Log.WithFields(logrus.Fields{
		"topic":      req.CurrentTopic,
		"difficulty": difficulty,
	}).Info("generating lesson")

	raw, err := u.cfg.Generator.GenerateText(ctx, prompt, llm.GenerateOptions{
		Temperature:  lessonTemperature,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	data, err := extract.ParseObject(raw)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range lessonRequiredKeys {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingKeysError{Keys: missing}
	}

	// Round-trip through JSON to land the open map in the typed response.
	buf, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode lesson payload: %w", err)
	}

	var lesson entity.LessonResponse
	if err := json.Unmarshal(buf, &lesson); err != nil {
		return nil, fmt.Errorf("lesson payload does not match the expected structure: %w", err)
	}

	// Not a real allocator, the front end only needs a stable id per student.
	lesson.LessonID = req.StudentID + 1000

	u.cfg.Log.WithField("lessonTitle", lesson.LessonTitle).Info("lesson generated")
	return &lesson, nil
}
