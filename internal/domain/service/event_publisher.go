package service

import (
	"context"
	"time"
)

// Audit event types
const (
	AuditUserRegistered = "user.registered"
	AuditUserLoggedIn   = "user.logged_in"
	AuditUserLoggedOut  = "user.logged_out"
)

// AuditEvent records an authentication action for downstream consumers
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes a single audit event
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
