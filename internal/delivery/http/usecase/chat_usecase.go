package usecase

import (
	"context"
	"strings"

	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

type ChatUsecase interface {
	Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error)
}

type ChatConfig struct {
	Generator llm.TextGenerator
	Log       *logrus.Logger
}

type chatUsecase struct {
	cfg ChatConfig
}

func NewChatUsecase(cfg ChatConfig) ChatUsecase {
	return &chatUsecase{cfg: cfg}
}

// Chat answers one tutoring query. The reply is free text, so no JSON
// normalization applies; the conversation id is echoed untouched.
func (u *chatUsecase) Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	u.cfg.Log.WithField("conversationId", req.ConversationID).Info("handling tutoring chat request")

	raw, err := u.cfg.Generator.GenerateText(ctx, buildChatPrompt(req), llm.GenerateOptions{})
	if err != nil {
		return nil, err
	}

	return &entity.ChatResponse{
		Response:       strings.TrimSpace(raw),
		ConversationID: req.ConversationID,
	}, nil
}
