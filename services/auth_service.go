//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"chat-hub/auth"
	"chat-hub/errors"
	"chat-hub/notify"
	"chat-hub/repositories"
	"chat-hub/search"
)

type IAuthService interface {
	Register(email, username, password string) (Session, error)
	Login(username, password string) (Session, error)
}

// Session is what a successful register or login hands back to the caller.
type Session struct {
	UserID   string
	Username string
	Token    string
}

type AuthService struct {
	log           *slog.Logger
	users         repositories.IUserRepository
	index         search.IUserIndex
	codes         *notify.CodeStore
	mailer        notify.Mailer
	tokenDuration time.Duration
}

func NewAuthService(log *slog.Logger, users repositories.IUserRepository,
	index search.IUserIndex, codes *notify.CodeStore, mailer notify.Mailer,
	tokenDuration time.Duration) *AuthService {
	return &AuthService{
		log:           log,
		users:         users,
		index:         index,
		codes:         codes,
		mailer:        mailer,
		tokenDuration: tokenDuration,
	}
}

// Register creates an account and issues its first session token.
//
// The password is hashed before it leaves this layer; the repository only
// ever sees the Argon2id encoding. A verification code is generated and
// handed to the mailer as a side effect; a delivery failure is logged but
// does not undo the registration.
func (s *AuthService) Register(email, username, password string) (Session, error) {
	valReq := auth.RegisterRequest{Email: email, Username: username, Password: password}
	if err := auth.ValidateRegister(valReq); err != nil {
		return Session{}, fmt.Errorf("%w: %v", errors.ErrMissingFields, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.users.CreateUser(username, email, hashedPassword)
	if err != nil {
		return Session{}, err // Propagates ErrEmailTaken / ErrUsernameTaken
	}

	if err := s.index.Index(user.Summary()); err != nil {
		return Session{}, fmt.Errorf("user indexing failed: %w", err)
	}

	code := s.codes.Generate(email)
	if err := s.mailer.Send(email, "Verification Code", "Your code: "+code); err != nil {
		s.log.Warn("Verification mail delivery failed", "email", email, "err", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.tokenDuration)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}

	return Session{UserID: user.ID, Username: user.Username, Token: token}, nil
}

// Login authenticates by username. Unknown username and wrong password are
// indistinguishable to the caller to prevent account enumeration.
func (s *AuthService) Login(username, password string) (Session, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.tokenDuration)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}

	return Session{UserID: user.ID, Username: user.Username, Token: token}, nil
}

var _ IAuthService = (*AuthService)(nil)
