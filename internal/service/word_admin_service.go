package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	categoriesCacheKey = "cricwordle:categories"
	categoriesCacheTTL = 5 * time.Minute
)

// WordAdminService owns the write side of the daily word collection:
// bulk seeding, category listing and category deletion.
type WordAdminService struct {
	WordRepo *repository.DailyWordRepository
	Redis    *redis.Client
}

func NewWordAdminService(wordRepo *repository.DailyWordRepository, rdb *redis.Client) *WordAdminService {
	return &WordAdminService{
		WordRepo: wordRepo,
		Redis:    rdb,
	}
}

// WordSeed is one row of a bulk seed request. Answer is accepted as a
// legacy alias for Word; the translation happens here so the rest of the
// system only ever sees the canonical field.
type WordSeed struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Word     string `json:"word"`
	Answer   string `json:"answer"`
	Points   int    `json:"points"`
}

// SeedWords normalizes and inserts word slots, skipping malformed rows and
// rows whose slot already exists. Returns the number actually inserted.
func (s *WordAdminService) SeedWords(ctx context.Context, seeds []WordSeed) (int64, error) {
	words := make([]model.DailyWord, 0, len(seeds))
	for _, seed := range seeds {
		word := seed.Word
		if word == "" {
			word = seed.Answer
		}

		date := strings.TrimSpace(seed.Date)
		category := strings.ToLower(strings.TrimSpace(seed.Category))
		level := strings.TrimSpace(seed.Level)
		word = strings.ToLower(strings.TrimSpace(word))

		if date == "" || category == "" || level == "" || word == "" {
			continue
		}

		words = append(words, model.DailyWord{
			Date:     date,
			Category: category,
			Level:    level,
			Word:     word,
			Points:   seed.Points,
		})
	}

	inserted, err := s.WordRepo.InsertMany(words)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		s.Redis.Del(ctx, categoriesCacheKey)
	}
	return inserted, nil
}

// Categories serves the distinct category list through a short-lived Redis
// cache; this is the hottest read on the public surface.
func (s *WordAdminService) Categories(ctx context.Context) ([]string, error) {
	if cached, err := s.Redis.Get(ctx, categoriesCacheKey).Result(); err == nil {
		var categories []string
		if json.Unmarshal([]byte(cached), &categories) == nil {
			return categories, nil
		}
	}

	categories, err := s.WordRepo.Categories()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		s.Redis.Set(ctx, categoriesCacheKey, payload, categoriesCacheTTL)
	}
	return categories, nil
}

func (s *WordAdminService) WordsByCategory(category string) ([]model.DailyWord, error) {
	return s.WordRepo.FindByCategory(strings.ToLower(strings.TrimSpace(category)))
}

func (s *WordAdminService) DeleteCategory(ctx context.Context, category string) (int64, error) {
	deleted, err := s.WordRepo.DeleteCategory(strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.Redis.Del(ctx, categoriesCacheKey)
	}
	return deleted, nil
}
