package repository

import (
	"context"

	"magicwheel/internal/domain/entity"
)

type ChatRepository interface {
	// AppendMessage creates the chat document on first use, appends the
	// message and refreshes the chat's lastUpdated stamp.
	AppendMessage(ctx context.Context, chat *entity.Chat, message *entity.Message) error

	GetByID(ctx context.Context, chatID string) (*entity.Chat, error)
	ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.Message, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Chat, error)
}
