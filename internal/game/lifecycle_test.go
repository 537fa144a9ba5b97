package game_test

import (
	"testing"
	"time"

	"github.com/mrivero/cyberbomb/internal/game"
	"github.com/mrivero/cyberbomb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *game.Engine {
	return game.New(models.ClassicParams(), game.DefaultLevels())
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestInit_SetsDefaults(t *testing.T) {
	e := newTestEngine()
	now := time.Now()
	s := &models.Session{ID: "abc"}

	e.Init(s, now)

	assert.True(t, s.Initialized)
	assert.Equal(t, 600, s.TimeLeft)
	assert.Equal(t, 0, s.LevelIndex)
	assert.Equal(t, 3, s.HintsLeft)
	assert.Equal(t, models.StatusPlaying, s.Status)
	assert.Empty(t, s.Performance)
	assert.Equal(t, now, s.QuestionStartedAt)
}

func TestInit_Idempotent(t *testing.T) {
	e := newTestEngine()
	s := &models.Session{ID: "abc"}
	e.Init(s, time.Now())

	s.TimeLeft = 42
	s.LevelIndex = 2
	s.HintsLeft = 1

	e.Init(s, time.Now())

	assert.Equal(t, 42, s.TimeLeft, "re-init must not reset progression")
	assert.Equal(t, 2, s.LevelIndex)
	assert.Equal(t, 1, s.HintsLeft)
}

func TestReconcileClientTime_ClientCanOnlyLowerTimer(t *testing.T) {
	tests := []struct {
		name     string
		server   int
		client   *int
		expected int
	}{
		{name: "client below server wins", server: 500, client: intPtr(450), expected: 450},
		{name: "client above server ignored", server: 500, client: intPtr(900), expected: 500},
		{name: "equal values unchanged", server: 500, client: intPtr(500), expected: 500},
		{name: "missing client ignored", server: 500, client: nil, expected: 500},
		{name: "negative client treated as absent", server: 500, client: intPtr(-3), expected: 500},
		{name: "zero client accepted", server: 500, client: intPtr(0), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			s := &models.Session{}
			e.Init(s, time.Now())
			s.TimeLeft = tt.server

			e.ReconcileClientTime(s, tt.client)

			assert.Equal(t, tt.expected, s.TimeLeft)
		})
	}
}

func TestEnforceTimeBudget_ExpiryIsIrreversible(t *testing.T) {
	e := newTestEngine()
	s := &models.Session{}
	e.Init(s, time.Now())
	s.TimeLeft = 0

	require.False(t, e.EnforceTimeBudget(s))
	assert.Equal(t, models.StatusLost, s.Status)

	// No later observation may revive the session.
	s.TimeLeft = 100
	assert.False(t, e.EnforceTimeBudget(s))
	assert.Equal(t, models.StatusLost, s.Status)
}

func TestSnapshot_TerminalSessionRedirects(t *testing.T) {
	e := newTestEngine()
	s := &models.Session{}
	e.Init(s, time.Now())
	s.Status = models.StatusWon

	_, ok := e.Snapshot(s, time.Now())
	assert.False(t, ok)
	assert.Equal(t, models.StatusWon, s.Status)
}

func TestSnapshot_ConsumesPendingMessage(t *testing.T) {
	e := newTestEngine()
	s := &models.Session{}
	e.Init(s, time.Now())
	s.PendingMessage = "Correct! +30 seconds"

	view, ok := e.Snapshot(s, time.Now())
	require.True(t, ok)
	assert.Equal(t, "Correct! +30 seconds", view.SuccessMessage)
	assert.Empty(t, s.PendingMessage, "pending message is consumed on read")

	view, ok = e.Snapshot(s, time.Now())
	require.True(t, ok)
	assert.Empty(t, view.SuccessMessage)
}

func TestSnapshot_HidesSolutions(t *testing.T) {
	e := newTestEngine()
	s := &models.Session{}
	e.Init(s, time.Now())
	s.LevelIndex = 1 // phishing level

	view, ok := e.Snapshot(s, time.Now())
	require.True(t, ok)
	require.Len(t, view.Choices, 3)
	for _, c := range view.Choices {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Label)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	e := newTestEngine()
	s := &models.Session{ID: "keep-me"}
	e.Init(s, time.Now())
	s.LevelIndex = 3
	s.Status = models.StatusWon
	s.Performance = []models.PerformanceEntry{{LevelIndex: 1}}

	e.Reset(s)

	assert.Equal(t, "keep-me", s.ID)
	assert.False(t, s.Initialized)
	assert.Equal(t, 0, s.LevelIndex)
	assert.Empty(t, s.Performance)

	// The next init restores defaults.
	e.Init(s, time.Now())
	assert.Equal(t, models.StatusPlaying, s.Status)
	assert.Equal(t, 600, s.TimeLeft)
}
