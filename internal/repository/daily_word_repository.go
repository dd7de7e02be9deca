package repository

import (
	"errors"

	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyWordRepository is the word registry: read-only lookups for the puzzle
// engine plus the write side used by the admin seeding endpoints.
type DailyWordRepository struct {
	DB *gorm.DB
}

func NewDailyWordRepository(db *gorm.DB) *DailyWordRepository {
	return &DailyWordRepository{DB: db}
}

// FindWord resolves the secret word slot for a calendar day. A missing slot
// is a normal outcome (admin has not seeded it yet) and maps to
// util.ErrNoWordForSlot.
func (r *DailyWordRepository) FindWord(date, category, level string) (*model.DailyWord, error) {
	var word model.DailyWord
	err := r.DB.Where("date = ? AND category = ? AND level = ?", date, category, level).First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoWordForSlot
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *DailyWordRepository) FindWordByID(id uint) (*model.DailyWord, error) {
	var word model.DailyWord
	err := r.DB.First(&word, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoWordForSlot
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// InsertMany seeds word slots, silently skipping rows whose
// (date, category, level) slot already exists. Returns the number inserted.
func (r *DailyWordRepository) InsertMany(words []model.DailyWord) (int64, error) {
	if len(words) == 0 {
		return 0, nil
	}
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&words)
	return res.RowsAffected, res.Error
}

func (r *DailyWordRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.DailyWord{}).Distinct("category").Order("category").Pluck("category", &categories).Error
	return categories, err
}

func (r *DailyWordRepository) FindByCategory(category string) ([]model.DailyWord, error) {
	var words []model.DailyWord
	err := r.DB.Where("category = ?", category).Order("date, level").Find(&words).Error
	return words, err
}

func (r *DailyWordRepository) DeleteCategory(category string) (int64, error) {
	res := r.DB.Where("category = ?", category).Delete(&model.DailyWord{})
	return res.RowsAffected, res.Error
}
