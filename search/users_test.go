package search

import (
	"context"
	"testing"

	"chat-hub/domain"

	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setupIndex(t *testing.T) (*UserIndex, func()) {
	t.Helper()
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	require.NoError(t, err)
	return NewUserIndex(blugeWriter, 50), func() {
		database.CleanupDB(badgerDB, blugeWriter)
	}
}

func TestUserIndex_SubstringMatch(t *testing.T) {
	req := require.New(t)
	index, cleanup := setupIndex(t)
	defer cleanup()

	// Given a few indexed users
	users := []domain.UserSummary{
		{ID: "1", Username: "alice"},
		{ID: "2", Username: "Alicia"},
		{ID: "3", Username: "bob"},
	}
	for _, u := range users {
		req.NoError(index.Index(u))
	}

	// When searching a lowercase fragment
	results, err := index.Search(context.Background(), "ali")
	req.NoError(err)

	// Then both alice and Alicia match, bob does not
	names := lo.Map(results, func(u domain.UserSummary, _ int) string { return u.Username })
	req.ElementsMatch([]string{"alice", "Alicia"}, names)
}

func TestUserIndex_CaseInsensitive(t *testing.T) {
	req := require.New(t)
	index, cleanup := setupIndex(t)
	defer cleanup()

	req.NoError(index.Index(domain.UserSummary{ID: "1", Username: "Alice"}))

	results, err := index.Search(context.Background(), "ALICE")
	req.NoError(err)
	req.Len(results, 1)
	req.Equal("Alice", results[0].Username)
	req.Equal("1", results[0].ID)
}

func TestUserIndex_NoMatch(t *testing.T) {
	req := require.New(t)
	index, cleanup := setupIndex(t)
	defer cleanup()

	req.NoError(index.Index(domain.UserSummary{ID: "1", Username: "alice"}))

	results, err := index.Search(context.Background(), "zzz")
	req.NoError(err)
	req.Empty(results)
}

func TestUserIndex_ReindexReplaces(t *testing.T) {
	req := require.New(t)
	index, cleanup := setupIndex(t)
	defer cleanup()

	req.NoError(index.Index(domain.UserSummary{ID: "1", Username: "alice"}))
	req.NoError(index.Index(domain.UserSummary{ID: "1", Username: "alice"}))

	results, err := index.Search(context.Background(), "alice")
	req.NoError(err)
	req.Len(results, 1)
}
