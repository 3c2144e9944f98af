package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/extract"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

const (
	storyTemperature = 0.7
	maxStarters      = 3
)

type StoryUsecase interface {
	GenerateStarters(ctx context.Context, req entity.StoryRequest) (*entity.StoryStarterResponse, error)
}

type StoryConfig struct {
	Generator llm.TextGenerator
	Log       *logrus.Logger
}

type storyUsecase struct {
	cfg StoryConfig
}

func NewStoryUsecase(cfg StoryConfig) StoryUsecase {
	return &storyUsecase{cfg: cfg}
}

func (u *storyUsecase) GenerateStarters(ctx context.Context, req entity.StoryRequest) (*entity.StoryStarterResponse, error) {
	if req.AgeGroup == "" {
		req.AgeGroup = entity.DefaultAgeGroup
	}
	if req.Category == "" {
		req.Category = entity.DefaultCategory
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"theme":    req.Theme,
		"category": req.Category,
		"ageGroup": req.AgeGroup,
	}).Info("generating story starters")

	raw, err := u.cfg.Generator.GenerateText(ctx, buildStoryPrompt(req), llm.GenerateOptions{
		Temperature:  storyTemperature,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	starters, err := u.starterList(raw)
	if err != nil {
		return nil, err
	}

	u.cfg.Log.WithField("count", len(starters)).Info("story starters generated")
	return &entity.StoryStarterResponse{StoryStarters: starters}, nil
}

var quotedRe = regexp.MustCompile(`"([^"]+)"`)

// starterList recovers the starter strings from the model output. The JSON
// path prefers the storyStarters key, then any other non-empty list. When
// the located JSON does not parse at all, two textual fallbacks run before
// giving up: quoted substrings, then non-empty lines, each capped at three.
func (u *storyUsecase) starterList(raw string) ([]string, error) {
	data, err := extract.ParseObject(raw)
	if err != nil {
		var parseErr *extract.ParseError
		if !errors.As(err, &parseErr) {
			return nil, err
		}

		u.cfg.Log.WithError(err).Warn("story response is not valid JSON, falling back to text extraction")
		if starters := textualStarters(raw); len(starters) > 0 {
			return starters, nil
		}
		return nil, err
	}

	if raw, ok := data["storyStarters"]; ok {
		if _, isList := raw.([]any); isList {
			return stringList(raw), nil
		}
	}

	// The model sometimes renames the key; accept any non-empty list.
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if starters := stringList(data[key]); len(starters) > 0 {
			u.cfg.Log.WithField("key", key).Warn("storyStarters key missing, using alternate list")
			return starters, nil
		}
	}

	return nil, fmt.Errorf("response did not contain a valid list of story starters")
}

// stringList converts a decoded JSON list into strings. Scalar entries are
// stringified; nested lists and objects are dropped.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch s := item.(type) {
		case string:
			if s != "" {
				out = append(out, s)
			}
		case float64:
			out = append(out, strconv.FormatFloat(s, 'f', -1, 64))
		case bool:
			out = append(out, strconv.FormatBool(s))
		}
	}
	return out
}

func textualStarters(raw string) []string {
	var starters []string
	for _, m := range quotedRe.FindAllStringSubmatch(raw, -1) {
		starters = append(starters, m[1])
		if len(starters) == maxStarters {
			return starters
		}
	}
	if len(starters) > 0 {
		return starters
	}

	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			starters = append(starters, line)
			if len(starters) == maxStarters {
				break
			}
		}
	}
	return starters
}
