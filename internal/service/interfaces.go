package service

import (
	"time"

	"cricwordle_backend/internal/model"
)

// WordRegistry is the read side of the daily word collection. Lookups are
// deterministic and side-effect free; a missing slot surfaces as
// util.ErrNoWordForSlot.
type WordRegistry interface {
	FindWord(date, category, level string) (*model.DailyWord, error)
	FindWordByID(id uint) (*model.DailyWord, error)
}

// SessionStore persists puzzle sessions. AppendAttempt and MarkFinished are
// conditional writes: they fail with the matching state-conflict error
// instead of mutating a finished or exhausted session.
type SessionStore interface {
	Create(session *model.PuzzleSession) error
	FindByID(id string) (*model.PuzzleSession, error)
	AppendAttempt(id, guess string) (*model.PuzzleSession, error)
	MarkFinished(id string, score int, finishedAt time.Time) (*model.PuzzleSession, error)
}

// Clock exists so tests can pin "today"; production uses the system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
