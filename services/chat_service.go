//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"sync"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/moderation"
	"chat-hub/repositories"
)

type IChatService interface {
	ChatsForUser(userID string) ([]domain.ChatSummary, error)
	CreatePersonalChat(userID, participantID string) (domain.ChatSummary, bool, error)
	Messages(chatID string) ([]domain.Message, error)
	HandleJoin(sessionID, chatID string, sink contract.EventSink)
	HandleSend(sessionID string, cmd domain.SendMessageCommand, sink contract.EventSink) (event.MessageReceived, error)
	DropSession(sessionID string)
}

// ChatService owns the chat registry operations and the realtime
// persist-then-broadcast sequencing.
type ChatService struct {
	log       *slog.Logger
	users     repositories.IUserRepository
	chats     repositories.IChatRepository
	messages  repositories.IMessageRepository
	registry  contract.IRegistry
	moderator *moderation.Moderator

	// sendMu serializes append and broadcast dispatch so every room observes
	// messages in append-completion order. Sinks never block on Consume, so
	// the critical section stays short and no storage lock is held while a
	// session write happens.
	sendMu sync.Mutex
}

func NewChatService(log *slog.Logger, users repositories.IUserRepository,
	chats repositories.IChatRepository, messages repositories.IMessageRepository,
	registry contract.IRegistry, moderator *moderation.Moderator) *ChatService {
	return &ChatService{
		log:       log,
		users:     users,
		chats:     chats,
		messages:  messages,
		registry:  registry,
		moderator: moderator,
	}
}

// ChatsForUser returns every chat the user participates in, with resolved
// participant summaries.
func (s *ChatService) ChatsForUser(userID string) ([]domain.ChatSummary, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	chats, err := s.chats.ChatsForUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary, err := s.summarize(chat)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// CreatePersonalChat creates the two-party chat between userID and
// participantID, or returns the existing one. The second return value is
// false when the chat already existed.
//
// A fresh chat is named after the invited party, not the creator. The
// asymmetry comes from the product's contact-list view and is kept as a
// documented convention.
func (s *ChatService) CreatePersonalChat(userID, participantID string) (domain.ChatSummary, bool, error) {
	if userID == "" || participantID == "" {
		return domain.ChatSummary{}, false, errors.ErrMissingFields
	}

	if _, err := s.users.GetByID(userID); err != nil {
		return domain.ChatSummary{}, false, err
	}
	participant, err := s.users.GetByID(participantID)
	if err != nil {
		return domain.ChatSummary{}, false, err
	}

	if existing, ok, err := s.chats.FindPersonalChat(userID, participantID); err != nil {
		return domain.ChatSummary{}, false, err
	} else if ok {
		summary, err := s.summarize(existing)
		return summary, false, err
	}

	chat, err := s.chats.CreateChat(participant.Username, false, []string{userID, participantID})
	if err != nil {
		return domain.ChatSummary{}, false, err
	}

	summary, err := s.summarize(chat)
	return summary, true, err
}

// Messages returns the ordered log of a chat.
func (s *ChatService) Messages(chatID string) ([]domain.Message, error) {
	if _, err := s.chats.GetChat(chatID); err != nil {
		return nil, err
	}
	return s.messages.GetMessages(chatID)
}

// HandleJoin subscribes the session to the chat room and announces the join
// to the whole room. No membership check is performed against the chat
// registry: any session may join any room. Known authorization gap, kept on
// purpose; see DESIGN.md.
func (s *ChatService) HandleJoin(sessionID, chatID string, sink contract.EventSink) {
	room := domain.RoomID(chatID)
	s.registry.Subscribe(sessionID, room, sink)
	s.broadcast(room, event.ParticipantJoined{ChatID: chatID})
}

// HandleSend validates, persists, then broadcasts one message.
//
// Order of effects is the contract here: nothing is persisted or broadcast
// when validation fails, and the broadcast only carries what the store
// accepted. The sender's session is joined to the room before fan-out, so
// the sender always receives its own message back as the delivery echo.
func (s *ChatService) HandleSend(sessionID string, cmd domain.SendMessageCommand, sink contract.EventSink) (event.MessageReceived, error) {
	if cmd.ChatID == "" || cmd.SenderID == "" || cmd.Text == "" {
		return event.MessageReceived{}, errors.ErrMissingFields
	}

	sender, err := s.users.GetByID(cmd.SenderID)
	if err != nil {
		return event.MessageReceived{}, errors.ErrInvalidUserOrChat
	}
	if _, err := s.chats.GetChat(cmd.ChatID); err != nil {
		return event.MessageReceived{}, errors.ErrInvalidUserOrChat
	}

	content := cmd.Text
	if s.moderator != nil {
		content = s.moderator.Censor(content)
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	message, err := s.messages.StoreMessage(cmd.ChatID, cmd.SenderID, content)
	if err != nil {
		return event.MessageReceived{}, fmt.Errorf("message append failed: %w", err)
	}

	room := domain.RoomID(cmd.ChatID)
	s.registry.Subscribe(sessionID, room, sink)

	received := event.MessageReceived{
		ID:       message.ID,
		ChatID:   message.ChatID,
		SenderID: message.SenderID,
		Username: sender.Username,
		Content:  message.Content,
		At:       message.CreatedAt,
	}
	s.broadcast(room, received)
	return received, nil
}

// DropSession removes a disconnected session from every room.
func (s *ChatService) DropSession(sessionID string) {
	s.registry.DropSession(sessionID)
}

// broadcast delivers the event to every sink in the room. A failing sink is
// logged and skipped; one slow or dead session never affects the others.
func (s *ChatService) broadcast(room domain.RoomID, e event.DomainEvent) {
	for _, sink := range s.registry.SinksForRoom(room) {
		if err := sink.Consume(e); err != nil {
			s.log.Debug("Sink rejected event", "room", room, "err", err)
		}
	}
}

func (s *ChatService) summarize(chat domain.Chat) (domain.ChatSummary, error) {
	participants := make([]domain.UserSummary, 0, len(chat.Participants))
	for _, id := range chat.Participants {
		user, err := s.users.GetByID(id)
		if err != nil {
			return domain.ChatSummary{}, err
		}
		participants = append(participants, user.Summary())
	}
	return domain.ChatSummary{
		ID:           chat.ID,
		Name:         chat.Name,
		IsGroup:      chat.IsGroup,
		Participants: participants,
	}, nil
}

var _ IChatService = (*ChatService)(nil)
