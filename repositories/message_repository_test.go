package repositories

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_StoreAndGetSorted(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, slog.Default(), nil)
	chatID := "chat-1"

	// Given three appended messages
	first, err := repo.StoreMessage(chatID, "alice-id", "hi")
	req.NoError(err)
	second, err := repo.StoreMessage(chatID, "bob-id", "hello")
	req.NoError(err)
	third, err := repo.StoreMessage(chatID, "alice-id", "how are you")
	req.NoError(err)

	// When fetching the chat log
	messages, err := repo.GetMessages(chatID)
	req.NoError(err)

	// Then messages come out in append order with assigned timestamps
	req.Len(messages, 3)
	req.Equal(first.ID, messages[0].ID)
	req.Equal(second.ID, messages[1].ID)
	req.Equal(third.ID, messages[2].ID)
	req.False(messages[1].CreatedAt.Before(messages[0].CreatedAt))
	req.False(messages[2].CreatedAt.Before(messages[1].CreatedAt))
}

func TestMessageRepository_PerChatIsolation(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, slog.Default(), nil)

	_, err = repo.StoreMessage("chat-1", "alice-id", "hi")
	req.NoError(err)
	_, err = repo.StoreMessage("chat-2", "bob-id", "other room")
	req.NoError(err)

	messages, err := repo.GetMessages("chat-1")
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("hi", messages[0].Content)
}

func TestMessageRepository_Limit(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	limit := 2
	repo := NewMessageRepository(badgerDB, slog.Default(), &limit)
	chatID := "chat-1"

	for _, content := range []string{"one", "two", "three"} {
		_, err = repo.StoreMessage(chatID, "alice-id", content)
		req.NoError(err)
	}

	messages, err := repo.GetMessages(chatID)
	req.NoError(err)
	req.Len(messages, limit)
}

func TestMessageRepository_EmptyChat(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, slog.Default(), nil)

	messages, err := repo.GetMessages("nobody-home")
	req.NoError(err)
	req.Empty(messages)
}
