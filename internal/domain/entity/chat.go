package entity

import "time"

type Chat struct {
	ID           string    `json:"id" firestore:"id"`
	Participants []string  `json:"participants" firestore:"participants"`
	LastMessage  string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastUpdated  time.Time `json:"last_updated" firestore:"lastUpdated"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}

// Message ordering is applied at read time; the stored collection carries no
// ordering invariant.
type Message struct {
	ID        string    `json:"id" firestore:"id"`
	ChatID    string    `json:"chat_id" firestore:"chatId"`
	Sender    string    `json:"sender" firestore:"sender"`
	Receiver  string    `json:"receiver" firestore:"receiver"`
	Body      string    `json:"body" firestore:"body"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
