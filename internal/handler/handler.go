package handler

import (
	"github.com/notesaura/notesaura-ai/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Chat     *ChatHandler
	Upload   *UploadHandler
	Session  *SessionHandler
	Auth     *AuthHandler
	Settings *SettingsHandler
	System   *SystemHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Chat:     NewChatHandler(svc),
		Upload:   NewUploadHandler(svc),
		Session:  NewSessionHandler(svc),
		Auth:     NewAuthHandler(svc),
		Settings: NewSettingsHandler(svc),
		System:   NewSystemHandler(svc),
	}
}
