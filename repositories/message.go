//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"chat-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessage(chatID, senderID, content string) (domain.Message, error)
	GetMessages(chatID string) ([]domain.Message, error)
}

// MessageRepository is the append-only per-chat message log.
type MessageRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

// NewMessageRepository builds the log. A nil limit means unbounded reads.
func NewMessageRepository(db *badger.DB, log *slog.Logger, limit *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limit: limit}
}

// StoreMessage appends a message and assigns its server-side timestamp.
// The key is formatted as "msg:{chat_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order equals time order).
//  2. Prevent data loss by using the UUID as a collision disconnector when
//     two messages land on the same nanosecond.
func (m *MessageRepository) StoreMessage(chatID, senderID, content string) (domain.Message, error) {
	message := domain.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	key := fmt.Sprintf("msg:%s:%019d:%s", chatID, message.CreatedAt.UnixNano(), message.ID)
	data, err := json.Marshal(message)
	if err != nil {
		return domain.Message{}, err
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// GetMessages retrieves the messages of a chat using a prefix scan. Thanks to
// the padded timestamp in the key, results come out sorted ascending; ties on
// the same nanosecond fall back to the key's uuid suffix, an arbitrary but
// stable order.
func (m *MessageRepository) GetMessages(chatID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:" + chatID + ":")
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if m.limit != nil && len(messages) == *m.limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limit))
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var msg domain.Message
				if err := json.Unmarshal(val, &msg); err != nil {
					return err
				}
				messages = append(messages, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
