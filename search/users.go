//go:generate go run go.uber.org/mock/mockgen -source=users.go -destination=../mocks/mock_user_index.go -package=mocks
// Package search maintains the full-text side index used for user lookup.
package search

import (
	"context"
	"strings"

	"chat-hub/domain"

	"github.com/blugelabs/bluge"
)

type IUserIndex interface {
	Index(user domain.UserSummary) error
	Search(ctx context.Context, query string) ([]domain.UserSummary, error)
}

// UserIndex answers case-insensitive substring queries over usernames.
//
// Usernames are indexed twice: a lowercased keyword field carries the
// searchable term, a stored-only field keeps the original casing for display.
type UserIndex struct {
	writer *bluge.Writer
	limit  int
}

func NewUserIndex(writer *bluge.Writer, limit int) *UserIndex {
	return &UserIndex{writer: writer, limit: limit}
}

// Index registers a user in the side index. Re-indexing the same id replaces
// the previous entry.
func (i *UserIndex) Index(user domain.UserSummary) error {
	doc := bluge.NewDocument(user.ID).
		AddField(bluge.NewKeywordField("username", strings.ToLower(user.Username))).
		AddField(bluge.NewStoredOnlyField("display", []byte(user.Username)))
	return i.writer.Update(doc.ID(), doc)
}

// Search returns every indexed user whose username contains the query,
// ignoring case. Ordering follows the index; callers must not rely on it.
func (i *UserIndex) Search(ctx context.Context, query string) ([]domain.UserSummary, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	pattern := "*" + strings.ToLower(query) + "*"
	q := bluge.NewWildcardQuery(pattern).SetField("username")

	iter, err := reader.Search(ctx, bluge.NewTopNSearch(i.limit, q))
	if err != nil {
		return nil, err
	}

	var results []domain.UserSummary
	for {
		match, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}

		var summary domain.UserSummary
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				summary.ID = string(value)
			case "display":
				summary.Username = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		results = append(results, summary)
	}
	return results, nil
}
