package model

import "time"

// 消息角色
const (
	RoleUser      = "USER"
	RoleAssistant = "ASSISTANT"
)

// 附件文件类型
const (
	FileTypeText  = "TEXT"
	FileTypePDF   = "PDF"
	FileTypeDocx  = "DOCX"
	FileTypeAudio = "AUDIO"
)

// ChatSession 聊天会话
// 会话在用户首次交互时创建，允许匿名会话（UserID 为空）
type ChatSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    *string   `gorm:"index;size:36" json:"user_id,omitempty"`
	Title     string    `gorm:"size:255;default:New Chat" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Messages  []Message `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
}

// Message 聊天消息
// 消息创建后不可变，按创建时间在会话内严格有序，只允许追加
type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID string    `gorm:"index;size:36;not null" json:"session_id"`
	Role      string    `gorm:"size:20" json:"role"` // USER, ASSISTANT
	Content   string    `gorm:"type:text" json:"content"`
	FileName  *string   `gorm:"size:255" json:"file_name,omitempty"`
	FileType  *string   `gorm:"size:10" json:"file_type,omitempty"` // TEXT, PDF, DOCX, AUDIO
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 指定表名
func (ChatSession) TableName() string {
	return "chat_sessions"
}

func (Message) TableName() string {
	return "messages"
}
