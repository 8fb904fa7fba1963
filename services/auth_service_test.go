package services_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/mocks"
	"chat-hub/notify"
	"chat-hub/services"
)

type authFixture struct {
	service *services.AuthService
	users   *mocks.MockIUserRepository
	index   *mocks.MockIUserIndex
	mailer  *mocks.MockMailer
	codes   *notify.CodeStore
}

func setupAuthService(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	index := mocks.NewMockIUserIndex(ctrl)
	mailer := mocks.NewMockMailer(ctrl)
	codes := notify.NewCodeStore(time.Minute)

	service := services.NewAuthService(slog.Default(), users, index, codes, mailer, time.Hour)
	return authFixture{service: service, users: users, index: index, mailer: mailer, codes: codes}
}

func TestAuthService_Register(t *testing.T) {
	req := require.New(t)
	f := setupAuthService(t)

	created := domain.User{ID: "alice-id", Username: "alice", Email: "alice@example.com"}
	f.users.EXPECT().
		CreateUser("alice", "alice@example.com", gomock.Not(gomock.Eq("pw1"))).
		Return(created, nil)
	f.index.EXPECT().Index(created.Summary()).Return(nil)
	f.mailer.EXPECT().Send("alice@example.com", "Verification Code", gomock.Any()).Return(nil)

	session, err := f.service.Register("alice@example.com", "alice", "pw1")
	req.NoError(err)
	req.Equal("alice-id", session.UserID)
	req.Equal("alice", session.Username)

	// The issued token is immediately valid
	claims, err := auth.ValidateToken(session.Token)
	req.NoError(err)
	req.Equal("alice-id", claims.UserID)

	// A verification code was left behind for the address
	req.Equal(1, f.codes.Len())
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	req := require.New(t)
	f := setupAuthService(t)

	_, err := f.service.Register("alice@example.com", "", "pw1")
	req.ErrorIs(err, errors.ErrMissingFields)

	_, err = f.service.Register("not-an-email", "alice", "pw1")
	req.ErrorIs(err, errors.ErrMissingFields)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	req := require.New(t)
	f := setupAuthService(t)

	f.users.EXPECT().
		CreateUser("alice", "alice@example.com", gomock.Any()).
		Return(domain.User{}, errors.ErrEmailTaken)

	_, err := f.service.Register("alice@example.com", "alice", "pw1")
	req.ErrorIs(err, errors.ErrEmailTaken)
}

func TestAuthService_Register_MailFailureIsNotFatal(t *testing.T) {
	req := require.New(t)
	f := setupAuthService(t)

	created := domain.User{ID: "alice-id", Username: "alice", Email: "alice@example.com"}
	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(created, nil)
	f.index.EXPECT().Index(gomock.Any()).Return(nil)
	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.ErrNotFound)

	session, err := f.service.Register("alice@example.com", "alice", "pw1")
	req.NoError(err)
	req.NotEmpty(session.Token)
}

func TestAuthService_Login(t *testing.T) {
	req := require.New(t)
	f := setupAuthService(t)

	hash, err := auth.HashPassword("pw1")
	req.NoError(err)
	f.users.EXPECT().GetByUsername("alice").
		Return(domain.User{ID: "alice-id", Username: "alice", PasswordHash: hash}, nil).
		Times(2)

	// Given the right password
	session, err := f.service.Login("alice", "pw1")
	req.NoError(err)
	req.Equal("alice-id", session.UserID)
	req.NotEmpty(session.Token)

	// Given the wrong password
	_, err = f.service.Login("alice", "nope")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	req := require.New(t)
	f := setupAuthService(t)

	f.users.EXPECT().GetByUsername("ghost").Return(domain.User{}, errors.ErrNotFound)

	_, err := f.service.Login("ghost", "pw1")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}
