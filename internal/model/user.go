package model

import "time"

// User 用户
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:100" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserSettings 用户设置
type UserSettings struct {
	UserID        string    `gorm:"primaryKey;size:36" json:"user_id"`
	Theme         string    `gorm:"size:20;default:dark" json:"theme"`
	Language      string    `gorm:"size:10;default:en" json:"language"`
	Notifications bool      `gorm:"default:true" json:"notifications"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

func (UserSettings) TableName() string {
	return "user_settings"
}
