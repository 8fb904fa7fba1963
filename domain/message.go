// This file defines Message entities and related rules.
// Messages are immutable and append-only.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event. The timestamp is assigned by
// the store at append time; within a chat, storage order is total.
type Message struct {
	ID        uuid.UUID
	ChatID    string
	SenderID  string
	Content   string
	CreatedAt time.Time
}
