package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const leaderboardCacheTTL = 30 * time.Second

// LeaderboardService serves the daily ranking and the per-user recent
// session history shown on the profile page.
type LeaderboardService struct {
	SessionRepo *repository.PuzzleSessionRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewLeaderboardService(sessionRepo *repository.PuzzleSessionRepository, userRepo *repository.UserRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
	}
}

// Leaderboard returns the top finished sessions for a date, highest score
// first, cached briefly in Redis since the board is re-fetched on every
// page load while only changing when someone finishes.
func (s *LeaderboardService) Leaderboard(ctx context.Context, date, category string, limit int) ([]repository.LeaderboardRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("cricwordle:leaderboard:%s:%s:%d", date, category, limit)
	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var rows []repository.LeaderboardRow
		if json.Unmarshal([]byte(cached), &rows) == nil {
			return rows, nil
		}
	}

	rows, err := s.SessionRepo.Leaderboard(date, category, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rows); err == nil {
		s.Redis.Set(ctx, cacheKey, payload, leaderboardCacheTTL)
	}
	return rows, nil
}

type Profile struct {
	User           *model.User           `json:"user"`
	RecentSessions []model.PuzzleSession `json:"recentSessions"`
}

func (s *LeaderboardService) ProfileFor(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.SessionRepo.FindRecentByUser(userID, 7)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user,
		RecentSessions: sessions,
	}, nil
}
