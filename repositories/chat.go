//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IChatRepository interface {
	CreateChat(name string, isGroup bool, participantIDs []string) (domain.Chat, error)
	GetChat(id string) (domain.Chat, error)
	ChatsForUser(userID string) ([]domain.Chat, error)
	FindPersonalChat(userA, userB string) (domain.Chat, bool, error)
}

// ChatRepository persists chat entities in BadgerDB.
//
// Keys written per chat:
//   - "chat:{uuid}"                    the JSON record
//   - "chatidx:{userID}:{chatID}"      membership index, one per participant
//   - "chatpair:{minID}:{maxID}"       personal-pair index, non-group chats only
//
// The pair index enforces the deduplication invariant for personal chats: at
// most one non-group chat exists for a given unordered pair of users.
type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateChat persists a chat and its membership indexes atomically.
func (c *ChatRepository) CreateChat(name string, isGroup bool, participantIDs []string) (domain.Chat, error) {
	if len(participantIDs) == 0 {
		return domain.Chat{}, errors.ErrMissingFields
	}

	chat := domain.Chat{
		ID:           uuid.NewString(),
		Name:         name,
		IsGroup:      isGroup,
		Participants: participantIDs,
	}

	data, err := json.Marshal(chat)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("chat:"+chat.ID), data); err != nil {
			return err
		}
		for _, userID := range participantIDs {
			key := fmt.Sprintf("chatidx:%s:%s", userID, chat.ID)
			if err := txn.Set([]byte(key), []byte(chat.ID)); err != nil {
				return err
			}
		}
		if !isGroup && len(participantIDs) == 2 {
			return txn.Set(pairKey(participantIDs[0], participantIDs[1]), []byte(chat.ID))
		}
		return nil
	})
	if err != nil {
		return domain.Chat{}, err
	}

	return chat, nil
}

// GetChat retrieves a chat record by its identifier.
func (c *ChatRepository) GetChat(id string) (domain.Chat, error) {
	var chat domain.Chat
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("chat:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &chat)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Chat{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

// ChatsForUser scans the membership index and resolves each chat record.
func (c *ChatRepository) ChatsForUser(userID string) ([]domain.Chat, error) {
	var ids []string
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte("chatidx:" + userID + ":")
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
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

	chats := make([]domain.Chat, 0, len(ids))
	for _, id := range ids {
		chat, err := c.GetChat(id)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

// FindPersonalChat returns the existing non-group chat between the two users,
// if any. The pair is unordered.
func (c *ChatRepository) FindPersonalChat(userA, userB string) (domain.Chat, bool, error) {
	var chatID string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairKey(userA, userB))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			chatID = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Chat{}, false, nil
	}
	if err != nil {
		return domain.Chat{}, false, err
	}

	chat, err := c.GetChat(chatID)
	if err != nil {
		return domain.Chat{}, false, err
	}
	return chat, true, nil
}

func pairKey(userA, userB string) []byte {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return []byte(fmt.Sprintf("chatpair:%s:%s", pair[0], pair[1]))
}
