package service

import (
	"strings"
	"time"

	"cricwordle_backend/internal/config"
	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/util"
)

// PuzzleService runs the puzzle session lifecycle: Init binds a session to a
// daily word slot, Guess evaluates and records one attempt, Finish closes
// the session with a score. The service holds no per-session state; every
// call loads from the store, so any instance can serve any request.
type PuzzleService struct {
	words    WordRegistry
	sessions SessionStore
	game     config.GameConfig
	clock    Clock
	loc      *time.Location
}

func NewPuzzleService(words WordRegistry, sessions SessionStore, game config.GameConfig, clock Clock) *PuzzleService {
	if clock == nil {
		clock = systemClock{}
	}
	loc, err := time.LoadLocation(game.Timezone)
	if err != nil {
		loc = time.Local
	}
	return &PuzzleService{
		words:    words,
		sessions: sessions,
		game:     game,
		clock:    clock,
		loc:      loc,
	}
}

type InitResult struct {
	PuzzleID    string    `json:"puzzleId"`
	MaxAttempts int       `json:"maxAttempts"`
	WordLength  int       `json:"wordLength"`
	ExpiresAt   time.Time `json:"expiresAt"`
	MaxScore    int       `json:"maxScore"`
}

type GuessResult struct {
	Feedback     []LetterStatus `json:"feedback"`
	Solved       bool           `json:"solved"`
	AttemptsLeft int            `json:"attemptsLeft"`
}

type FinishResult struct {
	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
}

// Init opens a session for (date, category, level). An empty date means
// today in the operative timezone; an explicit date is allowed so tests and
// replays are deterministic (the word itself is never returned, so this
// leaks nothing). The session denormalizes the slot fields at creation time
// and keeps only the word's id.
func (s *PuzzleService) Init(userID *uint, category, level, date string) (*InitResult, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	level = strings.TrimSpace(level)

	day := strings.TrimSpace(date)
	if day == "" {
		day = s.clock.Now().In(s.loc).Format("2006-01-02")
	} else if len(day) > 10 {
		day = day[:10]
	}

	word, err := s.words.FindWord(day, category, level)
	if err != nil {
		return nil, err
	}

	session := &model.PuzzleSession{
		UserID:      userID,
		Date:        day,
		Category:    category,
		Level:       level,
		WordID:      word.ID,
		MaxAttempts: s.game.MaxAttempts,
		Attempts:    model.GuessList{},
		ExpiresAt:   s.endOfDay(day),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	return &InitResult{
		PuzzleID:    session.ID,
		MaxAttempts: session.MaxAttempts,
		WordLength:  len([]rune(word.Word)),
		ExpiresAt:   session.ExpiresAt,
		MaxScore:    s.maxScoreFor(word),
	}, nil
}

// Guess records one attempt. It does not finish the session even when the
// guess solves the word or uses the last attempt; the client calls Finish
// explicitly.
func (s *PuzzleService) Guess(sessionID string, requesterID *uint, guess string) (*GuessResult, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(session, requesterID); err != nil {
		return nil, err
	}
	if session.Finished() {
		return nil, util.ErrAlreadyFinished
	}
	if len(session.Attempts) >= session.MaxAttempts {
		return nil, util.ErrAttemptsExhausted
	}

	word, err := s.words.FindWordByID(session.WordID)
	if err != nil {
		return nil, err
	}

	guess = strings.ToLower(strings.TrimSpace(guess))
	feedback, err := EvaluateGuess(word.Word, guess)
	if err != nil {
		return nil, err
	}

	updated, err := s.sessions.AppendAttempt(session.ID, guess)
	if err != nil {
		return nil, err
	}

	return &GuessResult{
		Feedback:     feedback,
		Solved:       Solved(feedback),
		AttemptsLeft: updated.AttemptsLeft(),
	}, nil
}

// Finish closes the session exactly once. The score is derived server-side
// from the recorded attempts unless trust_client_score is configured, in
// which case a caller-supplied value is accepted but clamped to
// [0, maxScore]. A second finish fails with util.ErrAlreadyFinished and
// leaves the stored score untouched.
func (s *PuzzleService) Finish(sessionID string, requesterID *uint, clientScore *int) (*FinishResult, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(session, requesterID); err != nil {
		return nil, err
	}
	if session.Finished() {
		return nil, util.ErrAlreadyFinished
	}

	word, err := s.words.FindWordByID(session.WordID)
	if err != nil {
		return nil, err
	}
	maxScore := s.maxScoreFor(word)

	var score int
	if s.game.TrustClientScore && clientScore != nil {
		score = clamp(*clientScore, 0, maxScore)
	} else {
		score = s.computeScore(session, word.Word, maxScore)
	}

	updated, err := s.sessions.MarkFinished(session.ID, score, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &FinishResult{
		Score:    updated.Score,
		MaxScore: maxScore,
	}, nil
}

// computeScore: solving on the first attempt earns the full maxScore;
// every further attempt costs ceil(maxScore/maxAttempts) points, floored at
// zero. An unsolved session scores zero.
func (s *PuzzleService) computeScore(session *model.PuzzleSession, secret string, maxScore int) int {
	secret = strings.ToLower(secret)
	solved := false
	for _, g := range session.Attempts {
		if strings.ToLower(g) == secret {
			solved = true
			break
		}
	}
	if !solved {
		return 0
	}

	used := len(session.Attempts)
	if used <= 1 {
		return maxScore
	}
	penalty := (maxScore + session.MaxAttempts - 1) / session.MaxAttempts
	return clamp(maxScore-used*penalty, 0, maxScore)
}

func (s *PuzzleService) maxScoreFor(word *model.DailyWord) int {
	if word.Points > 0 {
		return word.Points
	}
	return s.game.DefaultMaxScore
}

// endOfDay is the last millisecond of the calendar day in the operative
// timezone. Built from the next midnight rather than midnight+24h so DST
// transition days (23 or 25 hours long) still expire at 23:59:59.999.
func (s *PuzzleService) endOfDay(day string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", day, s.loc)
	if err != nil {
		t = s.clock.Now().In(s.loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, s.loc).Add(-time.Millisecond)
}

// checkOwner rejects a requester that does not match the session owner.
// Anonymous sessions (no owner recorded) are open to any caller.
func checkOwner(session *model.PuzzleSession, requesterID *uint) error {
	if session.UserID == nil {
		return nil
	}
	if requesterID == nil || *requesterID != *session.UserID {
		return util.ErrNotSessionOwner
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
