package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-hub/domain"
	"chat-hub/domain/event"
)

func TestEncodeEvent_MessageReceived(t *testing.T) {
	req := require.New(t)

	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	payload, err := EncodeEvent(event.MessageReceived{
		ID:       uuid.New(),
		ChatID:   "chat-1",
		SenderID: "alice-id",
		Username: "alice",
		Content:  "hello",
		At:       at,
	})
	req.NoError(err)

	var frame map[string]string
	req.NoError(json.Unmarshal(payload, &frame))
	req.Equal(TypeReceiveMessage, frame["type"])
	req.Equal("chat-1", frame["chat_id"])
	req.Equal("alice-id", frame["sender_id"])
	req.Equal("hello", frame["text"])
	req.Equal("alice", frame["username"])
	req.Equal("2025-06-01T12:30:00Z", frame["timestamp"])
}

func TestEncodeEvent_ParticipantJoined(t *testing.T) {
	req := require.New(t)

	payload, err := EncodeEvent(event.ParticipantJoined{ChatID: "chat-7"})
	req.NoError(err)

	var frame map[string]string
	req.NoError(json.Unmarshal(payload, &frame))
	req.Equal(TypeStatus, frame["type"])
	req.Equal("Joined chat chat-7", frame["message"])
}

func TestEncodeEvent_Unknown(t *testing.T) {
	_, err := EncodeEvent(unknownEvent{})
	require.ErrorIs(t, err, errUnknownEvent)
}

func TestEncodeError(t *testing.T) {
	req := require.New(t)

	var frame map[string]string
	req.NoError(json.Unmarshal(EncodeError("Missing required fields"), &frame))
	req.Equal(TypeError, frame["type"])
	req.Equal("Missing required fields", frame["message"])
}

type unknownEvent struct{}

func (unknownEvent) Room() domain.RoomID { return "nowhere" }
