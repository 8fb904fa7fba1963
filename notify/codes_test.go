package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCodeStore_GenerateAndVerify(t *testing.T) {
	req := require.New(t)
	store := NewCodeStore(time.Minute)

	code := store.Generate("alice@x.com")
	req.Len(code, 6)
	for _, r := range code {
		req.True(r >= '0' && r <= '9')
	}

	// A matching code verifies exactly once
	req.True(store.Verify("alice@x.com", code))
	req.False(store.Verify("alice@x.com", code))
}

func TestCodeStore_WrongCode(t *testing.T) {
	req := require.New(t)
	store := NewCodeStore(time.Minute)

	store.Generate("alice@x.com")
	req.False(store.Verify("alice@x.com", "000000"))
	req.False(store.Verify("bob@x.com", "000000"))
}

func TestCodeStore_RegenerateReplaces(t *testing.T) {
	req := require.New(t)
	store := NewCodeStore(time.Minute)

	first := store.Generate("alice@x.com")
	second := store.Generate("alice@x.com")
	req.Equal(1, store.Len())

	if first != second {
		req.False(store.Verify("alice@x.com", first))
	}
	req.True(store.Verify("alice@x.com", second))
}

func TestCodeStore_SweepPrunesExpired(t *testing.T) {
	req := require.New(t)
	store := NewCodeStore(time.Minute)

	store.Generate("alice@x.com")
	store.Generate("bob@x.com")

	// Move the clock past the TTL
	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	req.Equal(2, store.Sweep())
	req.Equal(0, store.Len())
}
