package usecase

import (
	"context"

	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
)

// subjects is the static catalog; read-only after startup.
var subjects = []entity.Subject{
	{
		ID:     1,
		Name:   "Math",
		Topics: []string{"Addition", "Subtraction", "Shapes", "Counting", "Patterns", "Measurement"},
	},
	{
		ID:     2,
		Name:   "Science",
		Topics: []string{"Animals", "Plants", "Weather", "Seasons", "Space", "Simple Machines"},
	},
	{
		ID:     3,
		Name:   "Reading",
		Topics: []string{"Phonics", "Sight Words", "Comprehension", "Storytelling", "Rhyming", "Vocabulary"},
	},
	{
		ID:     4,
		Name:   "Social Studies",
		Topics: []string{"Communities", "Maps", "Holidays", "Cultures", "History", "Geography"},
	},
	{
		ID:     5,
		Name:   "Art & Music",
		Topics: []string{"Colors", "Drawing", "Music Basics", "Crafts", "Instruments", "Famous Artists"},
	},
}

type SubjectUsecase interface {
	List(ctx context.Context) []entity.Subject
	Topics(ctx context.Context, subjectID int) ([]string, error)
}

type subjectUsecase struct{}

func NewSubjectUsecase() SubjectUsecase {
	return &subjectUsecase{}
}

func (u *subjectUsecase) List(_ context.Context) []entity.Subject {
	return subjects
}

func (u *subjectUsecase) Topics(_ context.Context, subjectID int) ([]string, error) {
	for _, subject := range subjects {
		if subject.ID == subjectID {
			return subject.Topics, nil
		}
	}
	return nil, ErrSubjectNotFound
}
