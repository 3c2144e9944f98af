package entity

const (
	DefaultAgeGroup = "3-6"
	DefaultCategory = "Fantasy"
)

type StoryRequest struct {
	Theme          string   `json:"theme"`
	CharacterIdeas []string `json:"character_ideas"`
	StartingPhrase string   `json:"starting_phrase"`
	AgeGroup       string   `json:"age_group"`
	Category       string   `json:"category"`
}

type StoryStarterResponse struct {
	StoryStarters []string `json:"storyStarters"`
}
