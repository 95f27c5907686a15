package service

import (
	"context"
	"time"
)

// EventTypeUserRegistered labels UserRegisteredEvent messages.
const EventTypeUserRegistered = "user.registered"

// UserRegisteredEvent is emitted once a registration has been committed.
type UserRegisteredEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Telephones int       `json:"telephones"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishUserRegistered publishes a registration event
	PublishUserRegistered(ctx context.Context, event *UserRegisteredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
