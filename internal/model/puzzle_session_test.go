package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessListValueScanRoundTrip(t *testing.T) {
	original := GuessList{"googly", "bouncer", "yorker"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded GuessList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestGuessListValueNilEncodesEmptyArray(t *testing.T) {
	var g GuessList
	value, err := g.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestGuessListScanNil(t *testing.T) {
	var g GuessList
	require.NoError(t, g.Scan(nil))
	assert.Empty(t, g)
}

func TestGuessListScanRejectsUnknownType(t *testing.T) {
	var g GuessList
	assert.Error(t, g.Scan(42))
}

func TestPuzzleSessionAttemptsLeft(t *testing.T) {
	s := PuzzleSession{MaxAttempts: 6}
	assert.Equal(t, 6, s.AttemptsLeft())

	s.Attempts = GuessList{"a", "b", "c", "d", "e", "f"}
	assert.Equal(t, 0, s.AttemptsLeft())

	// more attempts than the ceiling must never go negative
	s.Attempts = append(s.Attempts, "g")
	assert.Equal(t, 0, s.AttemptsLeft())
}

func TestPuzzleSessionFinished(t *testing.T) {
	s := PuzzleSession{}
	assert.False(t, s.Finished())

	now := time.Now()
	s.FinishedAt = &now
	assert.True(t, s.Finished())
}
