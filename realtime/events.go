package realtime

import (
	"encoding/json"
	"time"

	"chat-hub/domain/event"
)

// Inbound and outbound frame types carried in the "type" field of every
// websocket message.
const (
	TypeJoinChat    = "join_chat"
	TypeSendMessage = "send_message"

	TypeReceiveMessage = "receive_message"
	TypeStatus         = "status"
	TypeError          = "error"
)

// Envelope is the inbound frame. The type field selects which of the other
// fields are meaningful.
type Envelope struct {
	Type   string `json:"type"`
	ChatID string `json:"chat_id"`
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type receivePayload struct {
	Type      string `json:"type"`
	ChatID    string `json:"chat_id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

type statusPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EncodeEvent turns a domain event into its outbound frame.
func EncodeEvent(e event.DomainEvent) ([]byte, error) {
	switch ev := e.(type) {
	case event.MessageReceived:
		return json.Marshal(receivePayload{
			Type:      TypeReceiveMessage,
			ChatID:    ev.ChatID,
			SenderID:  ev.SenderID,
			Text:      ev.Content,
			Username:  ev.Username,
			Timestamp: ev.At.Format(time.RFC3339Nano),
		})
	case event.ParticipantJoined:
		return json.Marshal(statusPayload{
			Type:    TypeStatus,
			Message: "Joined chat " + ev.ChatID,
		})
	default:
		return nil, errUnknownEvent
	}
}

// EncodeError builds the error frame sent back to the offending session.
func EncodeError(message string) []byte {
	payload, _ := json.Marshal(errorPayload{Type: TypeError, Message: message})
	return payload
}
