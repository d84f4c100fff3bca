package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	st := newSessionStore(func() time.Time { return now })

	sess := st.create("admin@example.com", time.Hour)
	_, ok := st.get(sess.Token)
	require.True(t, ok)

	now = now.Add(time.Hour)
	_, ok = st.get(sess.Token)
	assert.False(t, ok, "session must expire exactly at ExpiresAt")

	st.mu.RLock()
	_, stored := st.sessions[sess.Token]
	st.mu.RUnlock()
	assert.False(t, stored, "expired session is dropped on lookup")
}

func TestSessionStore_Purge(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	st := newSessionStore(func() time.Time { return now })

	st.create("a@example.com", time.Minute)
	st.create("b@example.com", time.Minute)
	keep := st.create("c@example.com", time.Hour)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, st.purge())

	_, ok := st.get(keep.Token)
	assert.True(t, ok)
}
