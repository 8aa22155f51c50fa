package entity

import (
	"context"
	"time"
)

type Message struct {
	ID          int64     `json:"id"`
	ProjectID   *int64    `json:"projectId"`
	SenderID    *int64    `json:"senderId"`
	RecipientID *int64    `json:"recipientId"`
	Subject     *string   `json:"subject"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"isRead"`
	IsBot       bool      `json:"isBot"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageRepositoryInterface interface {
	Create(ctx context.Context, m *Message) error
	ListByProjectID(ctx context.Context, projectID int64) ([]*Message, error)
}
