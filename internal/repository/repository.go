package repository

import "gorm.io/gorm"

// Repositories 仓库集合
type Repositories struct {
	Chat ChatRepository
	User UserRepository
}

// NewRepositories 创建所有仓库
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Chat: NewChatRepository(db),
		User: NewUserRepository(db),
	}
}
