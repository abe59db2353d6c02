package repository

import (
	"time"

	"github.com/notesaura/notesaura-ai/internal/model"
	"gorm.io/gorm"
)

// chatRepositoryImpl 聊天数据访问
type chatRepositoryImpl struct {
	db *gorm.DB
}

// NewChatRepository 创建聊天仓库
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepositoryImpl{db: db}
}

// CreateSession 创建会话
func (r *chatRepositoryImpl) CreateSession(session *model.ChatSession) error {
	return r.db.Create(session).Error
}

// GetSessionByID 获取会话
func (r *chatRepositoryImpl) GetSessionByID(id string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessionsWithMessages 列出至少有一条消息的会话
// 空会话不展示在历史侧栏，按最近更新排序
func (r *chatRepositoryImpl) ListSessionsWithMessages() ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	err := r.db.
		Where("EXISTS (SELECT 1 FROM messages WHERE messages.session_id = chat_sessions.id)").
		Order("updated_at DESC").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Find(&sessions).Error
	return sessions, err
}

// ListSessionsByUser 列出用户的全部会话（含消息，用于数据导出）
func (r *chatRepositoryImpl) ListSessionsByUser(userID string) ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Find(&sessions).Error
	return sessions, err
}

// UpdateSessionTitle 更新会话标题
func (r *chatRepositoryImpl) UpdateSessionTitle(id, title string) error {
	return r.db.Model(&model.ChatSession{}).Where("id = ?", id).
		Update("title", title).Error
}

// TouchSession 刷新会话更新时间
func (r *chatRepositoryImpl) TouchSession(id string) error {
	return r.db.Model(&model.ChatSession{}).Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}

// DeleteSession 删除会话及其消息
func (r *chatRepositoryImpl) DeleteSession(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Message{}, "session_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ChatSession{}, "id = ?", id).Error
	})
}

// DeleteAllSessions 清空全部会话
func (r *chatRepositoryImpl) DeleteAllSessions() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM messages").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM chat_sessions").Error
	})
}

// CreateMessage 追加消息
func (r *chatRepositoryImpl) CreateMessage(msg *model.Message) error {
	return r.db.Create(msg).Error
}

// GetMessagesBySession 获取会话全部消息（时间升序）
func (r *chatRepositoryImpl) GetMessagesBySession(sessionID string) ([]*model.Message, error) {
	var messages []*model.Message
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// GetRecentMessagesBySession 获取会话最近的 N 条消息（时间降序）
// 调用方负责反转为时间升序
func (r *chatRepositoryImpl) GetRecentMessagesBySession(sessionID string, limit int) ([]*model.Message, error) {
	var messages []*model.Message
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
