package entity

// LessonRequest carries the student context used to adapt a lesson.
type LessonRequest struct {
	StudentID          int      `json:"student_id"`
	LastQuizScore      *float64 `json:"last_quiz_score" validate:"omitempty,gte=0,lte=100"`
	CurrentTopic       string   `json:"current_topic" validate:"required"`
	LearningObjectives []string `json:"learning_objectives"`
	Subject            string   `json:"subject"`
	ChallengeLevel     string   `json:"challenge_level"`
	LearningStyle      string   `json:"learning_style"`
}

// LessonContentItem is polymorphic over its Type tag: explanation carries
// Text, example carries Problem/Solution, interactive_problem carries an
// open ProblemData map for the front end to render.
type LessonContentItem struct {
	Type        string         `json:"type"`
	Text        string         `json:"text,omitempty"`
	Problem     string         `json:"problem,omitempty"`
	Solution    string         `json:"solution,omitempty"`
	ProblemData map[string]any `json:"problem_data,omitempty"`
}

type PracticeQuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type LessonResponse struct {
	LessonID           int                 `json:"lesson_id"`
	LessonTitle        string              `json:"lessonTitle"`
	Topic              string              `json:"topic"`
	LearningObjectives []string            `json:"learningObjectives"`
	DifficultyLevel    string              `json:"difficultyLevel"`
	LessonContent      []LessonContentItem `json:"lessonContent"`
	PracticeQuiz       []PracticeQuizItem  `json:"practiceQuiz"`
}
