//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(username, email, hashedPassword string) (domain.User, error)
	GetByID(id string) (domain.User, error)
	GetByUsername(username string) (domain.User, error)
}

// UserRepository persists identity records in BadgerDB.
//
// Three keys are written per user inside a single transaction:
//   - "user:id:{uuid}"          the JSON record
//   - "user:email:{email}"      unique index, value is the user id
//   - "user:name:{lower(name)}" unique index, value is the user id
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a new user. The email and username indexes act as the
// uniqueness guards; the whole write is atomic so a duplicate leaves no
// partial state behind.
func (u *UserRepository) CreateUser(username, email, hashedPassword string) (domain.User, error) {
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte("user:email:" + email)
		if _, err := txn.Get(emailKey); err == nil {
			return errors.ErrEmailTaken
		}
		nameKey := []byte("user:name:" + strings.ToLower(username))
		if _, err := txn.Get(nameKey); err == nil {
			return errors.ErrUsernameTaken
		}
		if err := txn.Set([]byte("user:id:"+user.ID), data); err != nil {
			return err
		}
		if err := txn.Set(emailKey, []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(nameKey, []byte(user.ID))
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// GetByID retrieves a user record by its identifier.
func (u *UserRepository) GetByID(id string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:id:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByUsername resolves the username index and loads the record.
// The lookup is case-insensitive, matching the uniqueness rule.
func (u *UserRepository) GetByUsername(username string) (domain.User, error) {
	var id string
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:name:" + strings.ToLower(username)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u.GetByID(id)
}
