package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_CensorPlainMatch(t *testing.T) {
	req := require.New(t)
	m, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	req.Equal("you *****", m.Censor("you idiot"))
}

func TestModerator_CensorLeetSpeak(t *testing.T) {
	req := require.New(t)
	m, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	// Leet substitutions fold back to letters before matching
	req.Equal("you *****", m.Censor("you 1d10t"))
}

func TestModerator_CensorIgnoresCase(t *testing.T) {
	req := require.New(t)
	m, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	req.Equal("***** online", m.Censor("IDIOT online"))
}

func TestModerator_CleanTextUntouched(t *testing.T) {
	req := require.New(t)
	m, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	input := "perfectly fine message"
	req.Equal(input, m.Censor(input))
}

func TestLoadWordLists(t *testing.T) {
	req := require.New(t)

	lists, err := LoadWordLists()
	req.NoError(err)
	req.NotEmpty(lists.Words)
	req.Contains(lists.Languages, "en")
	req.Contains(lists.Languages, "fr")
	req.Contains(lists.Words, "idiot")
}
