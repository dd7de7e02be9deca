package repository

import (
	"errors"
	"time"

	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/util"

	"gorm.io/gorm"
)

// PuzzleSessionRepository is the session store. The two mutating operations
// are single conditional UPDATEs keyed on the session's current state, so a
// duplicate request racing the original cannot push a session past its
// attempt ceiling or overwrite a recorded score. The engine validates before
// calling; the WHERE clauses are the storage-level backstop.
type PuzzleSessionRepository struct {
	DB *gorm.DB
}

func NewPuzzleSessionRepository(db *gorm.DB) *PuzzleSessionRepository {
	return &PuzzleSessionRepository{DB: db}
}

func (r *PuzzleSessionRepository) Create(session *model.PuzzleSession) error {
	return r.DB.Create(session).Error
}

func (r *PuzzleSessionRepository) FindByID(id string) (*model.PuzzleSession, error) {
	var session model.PuzzleSession
	err := r.DB.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AppendAttempt appends one guess iff the session is unfinished and below
// its ceiling, then returns the updated row. When the guard fails the
// current row decides which conflict to report.
func (r *PuzzleSessionRepository) AppendAttempt(id, guess string) (*model.PuzzleSession, error) {
	res := r.DB.Model(&model.PuzzleSession{}).
		Where("id = ? AND finished_at IS NULL AND JSON_LENGTH(attempts) < max_attempts", id).
		Update("attempts", gorm.Expr("JSON_ARRAY_APPEND(attempts, '$', ?)", guess))
	if res.Error != nil {
		return nil, res.Error
	}

	session, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if res.RowsAffected == 0 {
		if session.Finished() {
			return nil, util.ErrAlreadyFinished
		}
		return nil, util.ErrAttemptsExhausted
	}
	return session, nil
}

// MarkFinished sets score and finishedAt iff the session is not yet
// finished. A second finish leaves the stored score untouched and reports
// util.ErrAlreadyFinished.
func (r *PuzzleSessionRepository) MarkFinished(id string, score int, finishedAt time.Time) (*model.PuzzleSession, error) {
	res := r.DB.Model(&model.PuzzleSession{}).
		Where("id = ? AND finished_at IS NULL", id).
		Updates(map[string]interface{}{
			"score":       score,
			"finished_at": finishedAt,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	session, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if res.RowsAffected == 0 {
		return nil, util.ErrAlreadyFinished
	}
	return session, nil
}

// FindRecentByUser returns the newest sessions for the profile endpoint.
func (r *PuzzleSessionRepository) FindRecentByUser(userID uint, limit int) ([]model.PuzzleSession, error) {
	var sessions []model.PuzzleSession
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}

// LeaderboardRow is a session joined to its owner for ranking display.
type LeaderboardRow struct {
	UserName string `json:"user"`
	Score    int    `json:"score"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// Leaderboard ranks finished sessions for a date, highest score first.
func (r *PuzzleSessionRepository) Leaderboard(date, category string, limit int) ([]LeaderboardRow, error) {
	query := r.DB.Model(&model.PuzzleSession{}).
		Select("COALESCE(users.name, 'Anonymous') AS user_name, puzzle_sessions.score, puzzle_sessions.category, puzzle_sessions.level").
		Joins("LEFT JOIN users ON users.id = puzzle_sessions.user_id").
		Where("puzzle_sessions.date = ? AND puzzle_sessions.finished_at IS NOT NULL", date)
	if category != "" {
		query = query.Where("puzzle_sessions.category = ?", category)
	}

	var rows []LeaderboardRow
	err := query.Order("puzzle_sessions.score DESC").Limit(limit).Scan(&rows).Error
	return rows, err
}
