package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
)

// jsonStructureExample is the lesson shape the model must mimic exactly.
const jsonStructureExample = `
    {
      "lessonTitle": "string",
      "topic": "string", // The specific topic covered in this lesson
      "learningObjectives": ["string"], // List of objectives for this lesson
      "difficultyLevel": "string", // e.g., beginner, intermediate, advanced
      "lessonContent": [
        { "type": "explanation", "text": "string" },
        { "type": "example", "problem": "string", "solution": "string" },
        { "type": "interactive_problem", "problem_data": {...} } // Structure for React component
        // Add more content items as needed
      ],
      "practiceQuiz": [
         { "question": "string", "options": ["string"], "correct_answer": "string"}
         // Add more quiz items as needed
      ]
    }
`

// adaptiveInstruction picks the difficulty strategy for a lesson. An
// explicit challenge level always wins over the score-based fallback; any
// unrecognized non-empty level drops to beginner. Without a level, a missing
// score means an introductory lesson and the boundary at exactly 80 belongs
// to the reinforcement branch.
func adaptiveInstruction(topic string, challengeLevel string, lastQuizScore *float64) (instruction string, difficulty string) {
	if challengeLevel != "" {
		switch strings.ToLower(challengeLevel) {
		case "advanced":
			instruction = fmt.Sprintf(
				"Generate an advanced-level lesson on the topic '%s'. "+
					"Include more complex concepts, challenging examples, and thought-provoking questions. "+
					"The lesson should be suitable for students who already have a good foundation in this subject.",
				topic)
			difficulty = "advanced"
		case "intermediate":
			instruction = fmt.Sprintf(
				"Generate an intermediate-level lesson on the topic '%s'. "+
					"Balance foundational concepts with more challenging applications. "+
					"The content should be appropriate for students who have some familiarity with the basics.",
				topic)
			difficulty = "intermediate"
		default:
			instruction = fmt.Sprintf(
				"Generate a beginner-level lesson on the topic '%s'. "+
					"Focus on foundational concepts with clear explanations and simple examples.",
				topic)
			difficulty = "beginner"
		}
		return instruction, difficulty
	}

	switch {
	case lastQuizScore == nil:
		instruction = fmt.Sprintf("Generate an introductory lesson on the topic '%s' suitable for a beginner.", topic)
		difficulty = "beginner"
	case *lastQuizScore > 80:
		instruction = fmt.Sprintf(
			"The student scored %s%% on the last quiz for a related topic. "+
				"Generate a slightly more challenging lesson building upon '%s' or introducing the next logical topic. "+
				"Aim for an 'intermediate' or 'advanced' difficulty.",
			formatScore(*lastQuizScore), topic)
		difficulty = "intermediate to advanced"
	default:
		instruction = fmt.Sprintf(
			"The student scored %s%% on the last quiz for '%s'. "+
				"Generate a lesson reinforcing '%s' at a similar or slightly easier difficulty. "+
				"Focus on clarity and provide foundational examples. Aim for a 'beginner' or 'easy intermediate' difficulty.",
			formatScore(*lastQuizScore), topic, topic)
		difficulty = "beginner to easy intermediate"
	}
	return instruction, difficulty
}

func learningStyleInstruction(style string) string {
	switch strings.ToLower(style) {
	case "visual":
		return "The student is a visual learner. Include visual descriptions, " +
			"diagrams, charts, and image suggestions. Use spatial organization " +
			"and visual patterns in explanations."
	case "auditory":
		return "The student is an auditory learner. Use rhythmic patterns, " +
			"spoken word examples, and discussion-based activities. " +
			"Include suggestions for speaking concepts aloud."
	case "kinesthetic":
		return "The student is a kinesthetic learner. Incorporate hands-on activities, " +
			"physical movements, and tactile examples. Suggest ways to physically " +
			"engage with the material."
	default:
		return ""
	}
}

// formatScore renders a quiz score with an explicit decimal part, so a whole
// 80 reads "80.0" in the prompt.
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}

// buildLessonPrompt assembles the tutor instruction and returns the
// difficulty label the model is asked to set.
func buildLessonPrompt(req entity.LessonRequest) (string, string) {
	instruction, difficulty := adaptiveInstruction(req.CurrentTopic, req.ChallengeLevel, req.LastQuizScore)

	objectives := "None provided, please infer."
	if len(req.LearningObjectives) > 0 {
		objectives = strings.Join(req.LearningObjectives, ", ")
	}

	score := "N/A (first lesson on topic)"
	if req.LastQuizScore != nil {
		score = formatScore(*req.LastQuizScore) + "%"
	}

	subjectContext := ""
	if req.Subject != "" {
		subjectContext = fmt.Sprintf("This lesson is part of the %s curriculum. ", req.Subject)
	}

	var b strings.Builder
	b.WriteString("Act as an expert AI Tutor specializing in early childhood education concepts.\n")
	b.WriteString("Your task is to create a personalized, engaging, and adaptive lesson plan.\n\n")

	b.WriteString("Student Context:\n")
	fmt.Fprintf(&b, "- Student ID: %d\n", req.StudentID)
	fmt.Fprintf(&b, "- Current Topic: %s\n", req.CurrentTopic)
	fmt.Fprintf(&b, "- Subject: %s\n", orNotSpecified(req.Subject))
	fmt.Fprintf(&b, "- Provided Learning Objectives: %s\n", objectives)
	fmt.Fprintf(&b, "- Last Quiz Score: %s\n", score)
	fmt.Fprintf(&b, "- Challenge Level: %s\n", orNotSpecified(req.ChallengeLevel))
	fmt.Fprintf(&b, "- Learning Style: %s\n\n", orNotSpecified(req.LearningStyle))

	fmt.Fprintf(&b, "%sAdaptive Instruction:\n%s\n\n", subjectContext, instruction)

	if styleInstruction := learningStyleInstruction(req.LearningStyle); styleInstruction != "" {
		b.WriteString(styleInstruction)
		b.WriteString("\n\n")
	}

	b.WriteString("Output Requirements:\n")
	b.WriteString("- Generate the lesson content strictly in the following JSON format. Do not include any text, code formatting backticks, or explanation outside the JSON structure itself.\n")
	b.WriteString("- Ensure the lesson content is broken down into logical parts (explanation, example, interactive_problem).\n")
	b.WriteString("- For 'interactive_problem', define 'problem_data' that a React component can use to render the interactive element.\n")
	b.WriteString("- Create a short practice quiz with multiple-choice questions.\n")
	b.WriteString("- Define clear learning objectives if none were provided.\n")
	fmt.Fprintf(&b, "- Set the overall difficulty level to %q.\n", difficulty)
	b.WriteString("- Make the content age-appropriate for young children (typically ages 3-8).\n")
	b.WriteString("- Use simple, clear language appropriate for the difficulty level.\n")
	b.WriteString("- Include engaging examples and visuals (described in text) where appropriate.\n\n")

	b.WriteString("JSON Output Structure Example (follow this structure exactly):\n")
	b.WriteString(jsonStructureExample)

	return b.String(), difficulty
}

func buildStoryPrompt(req entity.StoryRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a creative assistant for early childhood educators. Your task is to generate "+
		"2-3 engaging, open-ended story starters (not full stories) that are age-appropriate "+
		"for young children (ages %s).\n\n", req.AgeGroup)
	fmt.Fprintf(&b, "Category: %s\n\n", req.Category)

	b.WriteString("The story starters should be:\n")
	fmt.Fprintf(&b, "- Simple and clear language appropriate for young children ages %s\n", req.AgeGroup)
	b.WriteString("- Imaginative and engaging\n")
	b.WriteString("- Open-ended to encourage participation and creativity\n")
	b.WriteString("- 2-3 sentences long (each starter)\n")
	b.WriteString("- Age-appropriate (no scary, violent, or complex themes)\n")
	b.WriteString("- Designed to spark discussion and creative thinking\n\n")

	if req.Theme != "" {
		fmt.Fprintf(&b, "Theme to incorporate: %s\n", req.Theme)
	}
	if len(req.CharacterIdeas) > 0 {
		fmt.Fprintf(&b, "Characters to include: %s\n", strings.Join(req.CharacterIdeas, ", "))
	}
	if req.StartingPhrase != "" {
		fmt.Fprintf(&b, "Starting phrase to use or build upon: '%s'\n", req.StartingPhrase)
	}

	b.WriteString(`
Please format your response as a JSON object containing a list of strings:
{
  "storyStarters": [
    "string - Starter 1",
    "string - Starter 2",
    "string - Starter 3"
  ]
}

Do not include any explanations, only return the JSON object.
`)

	return b.String()
}

func buildChatPrompt(req entity.ChatRequest) string {
	var b strings.Builder

	b.WriteString("Act as an AI tutor for elementary school children (ages 5-11).\n")
	b.WriteString("Your name is KidsPortal AI Edu Assistant.\n\n")

	if profileContext := profileContext(req.StudentProfile); profileContext != "" {
		b.WriteString(profileContext)
		b.WriteString("\n")
	}

	b.WriteString(`Guidelines:
- Be friendly, patient, and encouraging
- Use simple language appropriate for young children
- Give clear, concise explanations
- If asked about a topic you're unsure about, admit limitations politely
- Keep responses brief (1-3 sentences for simple questions)
- Include examples when helpful
- Use analogies that children can relate to
- Include child-friendly images/visuals when possible
- Use visual descriptions and references that would help children visualize concepts
- Be supportive and positive in your responses
- Do not include any harmful, inappropriate, or sensitive content

`)

	fmt.Fprintf(&b, "Please respond to the following query with kid-friendly visuals when appropriate: %q\n", req.Query)

	return b.String()
}

// profileContext renders the optional student profile block. The profile is
// loosely typed at the boundary; only the three known fields are read.
func profileContext(profile map[string]any) string {
	if len(profile) == 0 {
		return ""
	}

	interests := "Not specified"
	if raw, ok := profile["interests"].([]any); ok && len(raw) > 0 {
		parts := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			interests = strings.Join(parts, ", ")
		}
	}

	difficulty := "intermediate"
	if s, ok := profile["preferredDifficulty"].(string); ok && s != "" {
		difficulty = s
	}

	learningStyle := ""
	if s, ok := profile["learningStyle"].(string); ok {
		learningStyle = s
	}

	var b strings.Builder
	b.WriteString("Student Profile Context:\n")
	fmt.Fprintf(&b, "- Interests: %s\n", interests)
	fmt.Fprintf(&b, "- Preferred Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "- Learning Style: %s\n", learningStyle)
	return b.String()
}
