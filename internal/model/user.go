package model

type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Username string `gorm:"size:50;unique;not null" json:"username"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"isAdmin"`
}

func (User) TableName() string {
	return "users"
}
