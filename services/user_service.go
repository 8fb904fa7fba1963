//go:generate go run go.uber.org/mock/mockgen -source=user_service.go -destination=../mocks/mock_user_service.go -package=mocks
package services

import (
	"context"
	"strings"

	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"
	"chat-hub/search"
)

type IUserService interface {
	GetByID(id string) (domain.UserSummary, error)
	Profile(id string) (Profile, error)
	Search(ctx context.Context, query string) ([]domain.UserSummary, error)
}

// Profile is the owner-facing projection of a user record.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserService struct {
	users repositories.IUserRepository
	index search.IUserIndex
}

func NewUserService(users repositories.IUserRepository, index search.IUserIndex) *UserService {
	return &UserService{users: users, index: index}
}

func (s *UserService) GetByID(id string) (domain.UserSummary, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return domain.UserSummary{}, err
	}
	return user.Summary(), nil
}

func (s *UserService) Profile(id string) (Profile, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Username: user.Username, Email: user.Email}, nil
}

// Search answers a case-insensitive username substring query through the
// side index. An empty query is rejected rather than returning everything.
func (s *UserService) Search(ctx context.Context, query string) ([]domain.UserSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.ErrMissingFields
	}
	return s.index.Search(ctx, query)
}

var _ IUserService = (*UserService)(nil)
