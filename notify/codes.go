package notify

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

const codeLength = 6

// CodeStore keeps pending verification codes in memory, keyed by email.
// State is process-local, lock-guarded, initialized at startup and lost on
// restart. Expired entries are pruned by the sweeper worker.
type CodeStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[string]codeEntry
	now   func() time.Time
}

type codeEntry struct {
	code      string
	expiresAt time.Time
}

func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		ttl:   ttl,
		codes: make(map[string]codeEntry),
		now:   time.Now,
	}
}

// Generate creates a 6-digit code for the email and stores it, replacing any
// previous pending code. Digits are drawn uniformly; the code travels by
// email, so secret-strength randomness is not required here.
func (s *CodeStore) Generate(email string) string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	code := b.String()

	s.mu.Lock()
	s.codes[email] = codeEntry{code: code, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return code
}

// Verify consumes the pending code for the email. A matching, unexpired code
// is removed on success.
func (s *CodeStore) Verify(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok || entry.code != code || s.now().After(entry.expiresAt) {
		return false
	}
	delete(s.codes, email)
	return true
}

// Sweep removes expired entries and returns how many were pruned.
func (s *CodeStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	now := s.now()
	for email, entry := range s.codes {
		if now.After(entry.expiresAt) {
			delete(s.codes, email)
			pruned++
		}
	}
	return pruned
}

// Len reports the number of pending codes.
func (s *CodeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}
