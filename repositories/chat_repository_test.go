package repositories

import (
	"testing"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewChatRepository(badgerDB)

	chat, err := repo.CreateChat("bob", false, []string{"alice-id", "bob-id"})
	req.NoError(err)
	req.NotEmpty(chat.ID)
	req.False(chat.IsGroup)

	fetched, err := repo.GetChat(chat.ID)
	req.NoError(err)
	req.Equal(chat, fetched)
}

func TestChatRepository_ChatsForUser(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewChatRepository(badgerDB)

	// Given alice participates in two chats and carol in one
	first, err := repo.CreateChat("bob", false, []string{"alice-id", "bob-id"})
	req.NoError(err)
	second, err := repo.CreateChat("team", true, []string{"alice-id", "bob-id", "carol-id"})
	req.NoError(err)

	// When listing chats per user
	aliceChats, err := repo.ChatsForUser("alice-id")
	req.NoError(err)
	carolChats, err := repo.ChatsForUser("carol-id")
	req.NoError(err)

	// Then each user only sees their memberships
	req.Len(aliceChats, 2)
	ids := lo.Map(aliceChats, func(c domain.Chat, _ int) string { return c.ID })
	req.ElementsMatch([]string{first.ID, second.ID}, ids)
	req.Len(carolChats, 1)
	req.Equal(second.ID, carolChats[0].ID)
}

func TestChatRepository_FindPersonalChat_UnorderedPair(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewChatRepository(badgerDB)

	created, err := repo.CreateChat("bob", false, []string{"alice-id", "bob-id"})
	req.NoError(err)

	// The pair index matches regardless of argument order
	found, ok, err := repo.FindPersonalChat("bob-id", "alice-id")
	req.NoError(err)
	req.True(ok)
	req.Equal(created.ID, found.ID)

	_, ok, err = repo.FindPersonalChat("alice-id", "carol-id")
	req.NoError(err)
	req.False(ok)
}

func TestChatRepository_CreateChat_NoParticipants(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewChatRepository(badgerDB)

	_, err = repo.CreateChat("empty", false, nil)
	req.ErrorIs(err, errors.ErrMissingFields)
}
