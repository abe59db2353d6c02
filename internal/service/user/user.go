// Package user 提供用户设置与数据导出
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/notesaura/notesaura-ai/internal/model"
	"github.com/notesaura/notesaura-ai/internal/repository"
)

// Service 用户服务
type Service struct {
	users repository.UserRepository
	chats repository.ChatRepository
}

// NewService 创建用户服务
func NewService(users repository.UserRepository, chats repository.ChatRepository) *Service {
	return &Service{users: users, chats: chats}
}

// UpdateSettingsRequest 更新设置请求
type UpdateSettingsRequest struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// GetSettings 获取用户设置，缺省时返回默认值
func (s *Service) GetSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	settings, err := s.users.GetSettings(userID)
	if err != nil {
		return &model.UserSettings{
			UserID:        userID,
			Theme:         "dark",
			Language:      "en",
			Notifications: true,
		}, nil
	}
	return settings, nil
}

// UpdateSettings 更新或创建用户设置
func (s *Service) UpdateSettings(ctx context.Context, userID string, req *UpdateSettingsRequest) error {
	settings := &model.UserSettings{
		UserID:        userID,
		Theme:         req.Theme,
		Language:      req.Language,
		Notifications: req.Notifications,
	}
	if err := s.users.UpsertSettings(settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// ExportedUser 导出数据中的用户信息
type ExportedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportedMessage 导出数据中的消息
type ExportedMessage struct {
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	FileName  *string   `json:"file_name,omitempty"`
	FileType  *string   `json:"file_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportedSession 导出数据中的会话
type ExportedSession struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	CreatedAt time.Time         `json:"created_at"`
	Messages  []ExportedMessage `json:"messages"`
}

// ExportData 用户数据导出结构
type ExportData struct {
	User         ExportedUser        `json:"user"`
	Settings     *model.UserSettings `json:"settings"`
	ChatSessions []ExportedSession   `json:"chat_sessions"`
	ExportedAt   time.Time           `json:"exported_at"`
}

// Export 导出用户全部数据
func (s *Service) Export(ctx context.Context, userID string) (*ExportData, error) {
	usr, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	settings, _ := s.users.GetSettings(userID)

	sessions, err := s.chats.ListSessionsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	exported := make([]ExportedSession, 0, len(sessions))
	for _, session := range sessions {
		messages := make([]ExportedMessage, 0, len(session.Messages))
		for _, msg := range session.Messages {
			messages = append(messages, ExportedMessage{
				Content:   msg.Content,
				Role:      msg.Role,
				FileName:  msg.FileName,
				FileType:  msg.FileType,
				CreatedAt: msg.CreatedAt,
			})
		}
		exported = append(exported, ExportedSession{
			ID:        session.ID,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			Messages:  messages,
		})
	}

	return &ExportData{
		User: ExportedUser{
			ID:        usr.ID,
			Name:      usr.Name,
			Email:     usr.Email,
			CreatedAt: usr.CreatedAt,
		},
		Settings:     settings,
		ChatSessions: exported,
		ExportedAt:   time.Now(),
	}, nil
}
