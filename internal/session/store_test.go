package session_test

import (
	"testing"
	"time"

	"github.com/mrivero/cyberbomb/internal/models"
	"github.com/mrivero/cyberbomb/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetCreatesOnFirstContact(t *testing.T) {
	st := session.NewStore(time.Hour)

	s := st.Get("abc")
	assert.Equal(t, "abc", s.ID)
	assert.False(t, s.Initialized)
	assert.Equal(t, 1, st.Len())
}

func TestStore_PutRoundTrip(t *testing.T) {
	st := session.NewStore(time.Hour)

	s := st.Get("abc")
	s.Initialized = true
	s.TimeLeft = 570
	s.LevelIndex = 2
	st.Put(s)

	got := st.Get("abc")
	assert.Equal(t, 570, got.TimeLeft)
	assert.Equal(t, 2, got.LevelIndex)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	st := session.NewStore(time.Hour)
	st.Put(models.Session{ID: "abc", TimeLeft: 600})

	s := st.Get("abc")
	s.TimeLeft = 1

	assert.Equal(t, 600, st.Get("abc").TimeLeft, "mutating a read copy must not leak into the store")
}

func TestStore_Delete(t *testing.T) {
	st := session.NewStore(time.Hour)
	st.Put(models.Session{ID: "abc"})

	st.Delete("abc")
	assert.Equal(t, 0, st.Len())
}

func TestStore_LastWriteWins(t *testing.T) {
	st := session.NewStore(time.Hour)

	a := st.Get("abc")
	b := st.Get("abc")
	a.TimeLeft = 100
	b.TimeLeft = 200
	st.Put(a)
	st.Put(b)

	assert.Equal(t, 200, st.Get("abc").TimeLeft)
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := session.NewID()
		require.Len(t, id, 32)
		require.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}
