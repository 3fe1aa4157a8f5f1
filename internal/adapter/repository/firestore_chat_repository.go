package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{client: client}
}

// AppendMessage upserts the chat document and writes the message into its
// subcollection in one transaction. Messages are not kept ordered at write
// time; reads sort by timestamp.
func (r *firestoreChatRepository) AppendMessage(ctx context.Context, chat *entity.Chat, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	now := time.Now()
	message.Timestamp = now
	message.ChatID = chat.ID

	chatRef := r.client.Collection("chats").Doc(chat.ID)
	messageRef := chatRef.Collection("messages").Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(chatRef)
		if err != nil && !isNotFound(err) {
			return errors.Internal("Failed to get chat", err)
		}

		if err == nil && doc.Exists() {
			var existing entity.Chat
			if err := doc.DataTo(&existing); err != nil {
				return errors.Internal("Failed to parse chat data", err)
			}
			chat.CreatedAt = existing.CreatedAt
			chat.Participants = existing.Participants
		} else {
			chat.CreatedAt = now
		}

		chat.LastMessage = message.Body
		chat.LastUpdated = now

		if err := tx.Set(chatRef, chat); err != nil {
			return err
		}
		return tx.Set(messageRef, message)
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, chatID string) (*entity.Chat, error) {
	doc, err := r.client.Collection("chats").Doc(chatID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Chat", err)
		}
		return nil, errors.Internal("Failed to get chat", err)
	}

	var chat entity.Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}

	return &chat, nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.Message, error) {
	query := r.client.Collection("chats").Doc(chatID).
		Collection("messages").
		OrderBy("timestamp", firestore.Asc)
	if limit > 0 {
		query = query.LimitToLast(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list messages", err)
	}

	messages := []*entity.Message{}
	for _, doc := range docs {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreChatRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Chat, error) {
	iter := r.client.Collection("chats").
		Where("participants", "array-contains", userID).
		OrderBy("lastUpdated", firestore.Desc).
		Documents(ctx)

	chats := []*entity.Chat{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chats", err)
		}

		var chat entity.Chat
		if err := doc.DataTo(&chat); err != nil {
			return nil, errors.Internal("Failed to parse chat data", err)
		}
		chats = append(chats, &chat)
	}

	return chats, nil
}
