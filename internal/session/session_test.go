package session

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateLookup(t *testing.T) {
	s := NewStore()
	tok, err := s.Create("demo", "u1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(tok), 21)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), tok)

	sess, ok := s.Lookup(tok)
	require.True(t, ok)
	assert.Equal(t, Session{TenantID: "demo", UserID: "u1"}, sess)

	_, ok = s.Lookup("not-a-token")
	assert.False(t, ok)
	_, ok = s.Lookup("")
	assert.False(t, ok)
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	tokens := make([]string, 64)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := s.Create("demo", "u")
			assert.NoError(t, err)
			tokens[i] = tok
		}(i)
	}
	wg.Wait()
	assert.Equal(t, len(tokens), s.Len())
	for _, tok := range tokens {
		_, ok := s.Lookup(tok)
		assert.True(t, ok)
	}
}
