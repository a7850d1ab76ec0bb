package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prajith-ops/Stayelo/internal/models"
)

type ChatService struct {
	chatRepo models.ChatRepo
}

func NewChatService(chatRepo models.ChatRepo) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
	}
}

// SaveMessage persists one inbound chat message. The timestamp defaults to
// receipt time when the client omits it.
func (cs *ChatService) SaveMessage(ctx context.Context, sender, text string, timestamp time.Time) (*models.ChatMessage, error) {
	if strings.TrimSpace(sender) == "" {
		return nil, fmt.Errorf("sender is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text is required")
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	msg := &models.ChatMessage{
		Sender:    sender,
		Text:      text,
		Timestamp: timestamp,
	}

	return cs.chatRepo.InsertMessage(ctx, msg)
}

// History returns every stored message, oldest first.
func (cs *ChatService) History(ctx context.Context) ([]*models.ChatMessage, error) {
	return cs.chatRepo.ListMessages(ctx)
}
