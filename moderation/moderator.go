// Package moderation censors blacklisted terms in message content before it
// reaches persistence and broadcast.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator matches forbidden patterns with an Aho-Corasick automaton built
// once at startup. Matching runs over a normalized view of the text (lowered,
// leet-speak folded, punctuation stripped) while replacement applies to the
// original runes, so spacing and casing of the rest of the text survive.
type Moderator struct {
	machine     *goahocorasick.Machine
	replacement rune
}

type textMapping struct {
	normalized []rune
	sourceIdx  []int
}

// NewModerator builds the automaton from the given word list.
func NewModerator(words []string, replacement rune) (Moderator, error) {
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{machine: m, replacement: replacement}, nil
}

// Censor replaces every matched span with the replacement rune.
func (m *Moderator) Censor(original string) string {
	mapping := m.normalize(original)
	if len(mapping.normalized) == 0 {
		return original
	}

	spans := m.machine.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original
	}

	out := []rune(original)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapping.sourceIdx) {
			continue
		}

		from := mapping.sourceIdx[start]
		to := mapping.sourceIdx[end-1] + 1
		for i := from; i < to; i++ {
			out[i] = m.replacement
		}
	}
	return string(out)
}

// normalize builds the searchable view and records, for every normalized
// rune, the index of the original rune it came from.
func (m *Moderator) normalize(input string) textMapping {
	src := []rune(input)
	norm := make([]rune, 0, len(src))
	idx := make([]int, 0, len(src))

	for i, r := range src {
		folded := foldRune(r)
		if isNoise(folded) {
			continue
		}
		norm = append(norm, unicode.ToLower(folded))
		idx = append(idx, i)
	}
	return textMapping{normalized: norm, sourceIdx: idx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		folded := foldRune(r)
		if isNoise(folded) {
			continue
		}
		out = append(out, unicode.ToLower(folded))
	}
	return out
}

// foldRune maps common leet-speak substitutions back to letters.
func foldRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
