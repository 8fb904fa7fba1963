// Package event defines the domain events delivered to room sinks.
package event

import (
	"time"

	"chat-hub/domain"

	"github.com/google/uuid"
)

type DomainEvent interface {
	Room() domain.RoomID
}

// MessageReceived is broadcast to every session joined to the chat room,
// sender included, once the message has been persisted.
type MessageReceived struct {
	ID       uuid.UUID
	ChatID   string
	SenderID string
	Username string
	Content  string
	At       time.Time
}

func (m MessageReceived) Room() domain.RoomID {
	return domain.RoomID(m.ChatID)
}

// ParticipantJoined announces a join to the whole room, not only to the
// joining session.
type ParticipantJoined struct {
	ChatID string
}

func (p ParticipantJoined) Room() domain.RoomID {
	return domain.RoomID(p.ChatID)
}
