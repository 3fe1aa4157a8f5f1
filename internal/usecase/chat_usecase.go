package usecase

import (
	"context"
	"strings"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/errors"
)

type ChatUseCase struct {
	chatRepo     repository.ChatRepository
	userRepo     repository.UserRepository
	pusher       EventPusher
	historyLimit int
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	pusher EventPusher,
	historyLimit int,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:     chatRepo,
		userRepo:     userRepo,
		pusher:       pusher,
		historyLimit: historyLimit,
	}
}

// SendMessage appends to the chat identified by chatID, creating it on first
// use, and pushes the message to the receiver if they are connected.
func (u *ChatUseCase) SendMessage(ctx context.Context, senderID, chatID, receiverID, body string) (*entity.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.BadRequest("message body is required", nil)
	}

	if _, err := u.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		ID:           chatID,
		Participants: []string{senderID, receiverID},
	}
	message := &entity.Message{
		Sender:   senderID,
		Receiver: receiverID,
		Body:     body,
	}

	if err := u.chatRepo.AppendMessage(ctx, chat, message); err != nil {
		return nil, err
	}

	u.pusher.SendEvent(receiverID, "chat_message", message)
	return message, nil
}

// GetMessages returns the chat history ordered by timestamp. Ordering happens
// here at read time; storage order is not guaranteed.
func (u *ChatUseCase) GetMessages(ctx context.Context, callerID, chatID string) ([]*entity.Message, error) {
	chat, err := u.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(chat, callerID) {
		return nil, errors.Forbidden("you are not a participant of this chat", nil)
	}

	return u.chatRepo.ListMessages(ctx, chatID, u.historyLimit)
}

func (u *ChatUseCase) ListChats(ctx context.Context, callerID string) ([]*entity.Chat, error) {
	return u.chatRepo.ListByUser(ctx, callerID)
}

func isParticipant(chat *entity.Chat, userID string) bool {
	for _, p := range chat.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
