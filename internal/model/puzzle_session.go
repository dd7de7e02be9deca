package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// GuessList is stored as a MySQL JSON column so the repository can append
// attempts with JSON_ARRAY_APPEND in a single conditional UPDATE.
type GuessList []string

func (g GuessList) Value() (driver.Value, error) {
	if g == nil {
		g = GuessList{}
	}
	return json.Marshal(g)
}

func (g *GuessList) Scan(value interface{}) error {
	if value == nil {
		*g = GuessList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into GuessList", value)
	}
	return json.Unmarshal(raw, g)
}

// PuzzleSession is one player's run at a daily word slot.
//
// Lifecycle: created by init with an empty attempts list; guess appends to
// attempts while finishedAt is null and len(attempts) < maxAttempts; finish
// sets score and finishedAt exactly once. A session that never receives
// finish simply stays open; there is no cleanup from here.
type PuzzleSession struct {
	UUIDBase
	UserID      *uint      `gorm:"index" json:"userId,omitempty"`
	Date        string     `gorm:"size:10;not null;index" json:"date"`
	Category    string     `gorm:"size:50;not null;index" json:"category"`
	Level       string     `gorm:"size:20;not null" json:"level"`
	WordID      uint       `gorm:"not null;index" json:"wordId"`
	MaxAttempts int        `gorm:"not null;default:6" json:"maxAttempts"`
	Attempts    GuessList  `gorm:"type:json" json:"attempts"`
	Score       int        `gorm:"default:0" json:"score"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

func (PuzzleSession) TableName() string {
	return "puzzle_sessions"
}

func (s *PuzzleSession) Finished() bool {
	return s.FinishedAt != nil
}

func (s *PuzzleSession) AttemptsLeft() int {
	left := s.MaxAttempts - len(s.Attempts)
	if left < 0 {
		return 0
	}
	return left
}
