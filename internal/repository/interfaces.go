// Package repository 定义数据访问接口
// 接口抽象使依赖注入和单元测试成为可能
package repository

import "github.com/notesaura/notesaura-ai/internal/model"

// ChatRepository 会话与消息数据访问接口
// 消息只允许追加，按创建时间有序
type ChatRepository interface {
	// 会话操作
	CreateSession(session *model.ChatSession) error
	GetSessionByID(id string) (*model.ChatSession, error)
	ListSessionsWithMessages() ([]*model.ChatSession, error)
	ListSessionsByUser(userID string) ([]*model.ChatSession, error)
	UpdateSessionTitle(id, title string) error
	TouchSession(id string) error
	DeleteSession(id string) error
	DeleteAllSessions() error

	// 消息操作
	CreateMessage(msg *model.Message) error
	GetMessagesBySession(sessionID string) ([]*model.Message, error)
	GetRecentMessagesBySession(sessionID string, limit int) ([]*model.Message, error)
}

// UserRepository 用户数据访问接口
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(id string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetSettings(userID string) (*model.UserSettings, error)
	UpsertSettings(settings *model.UserSettings) error
}

// 确保实现满足接口
var (
	_ ChatRepository = (*chatRepositoryImpl)(nil)
	_ UserRepository = (*userRepositoryImpl)(nil)
)
