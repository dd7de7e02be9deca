package model

// DailyWord is one secret word slot. The (date, category, level) tuple is
// unique: at most one word per slot per day. Rows are written by the admin
// seeding endpoints only; the puzzle engine reads them and never mutates.
type DailyWord struct {
	BaseModel
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_word_slot" json:"date"`
	Category string `gorm:"size:50;not null;uniqueIndex:idx_word_slot" json:"category"`
	Level    string `gorm:"size:20;not null;uniqueIndex:idx_word_slot" json:"level"`
	Word     string `gorm:"size:50;not null" json:"-"`
	Points   int    `gorm:"default:0" json:"points"`
}

func (DailyWord) TableName() string {
	return "daily_words"
}
