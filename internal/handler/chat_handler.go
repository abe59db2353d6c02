package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/service"
	"github.com/notesaura/notesaura-ai/internal/service/generate"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	svc *service.Services
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(svc *service.Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ChatRequest 聊天请求
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// Chat 处理一条聊天消息
// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Message and session ID are required")
		return
	}
	if req.Message == "" || req.SessionID == "" {
		BadRequest(c, "Message and session ID are required")
		return
	}

	summary, err := h.svc.Chat.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, generate.ErrNotConfigured) {
			InternalServerError(c, "AI service not properly configured", nil)
			return
		}
		InternalServerError(c, "Failed to process chat message", err)
		return
	}

	Success(c, gin.H{"summary": summary})
}
