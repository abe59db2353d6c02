package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/middleware"
	"github.com/notesaura/notesaura-ai/internal/service"
	"github.com/notesaura/notesaura-ai/internal/service/chat"
)

// SessionHandler 会话处理器
type SessionHandler struct {
	svc *service.Services
}

// NewSessionHandler 创建会话处理器
func NewSessionHandler(svc *service.Services) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// ListSessions 列出有消息的会话（含消息）
// GET /api/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.svc.Chat.ListSessions(c.Request.Context())
	if err != nil {
		InternalServerError(c, "Failed to fetch sessions", err)
		return
	}
	Success(c, gin.H{"sessions": sessions})
}

// CreateSession 创建会话
// POST /api/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req chat.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	// 登录用户的会话归属其名下
	if userID, ok := middleware.GetUserID(c); ok {
		if _, authed := middleware.GetCurrentUser(c); authed {
			req.UserID = userID
		}
	}

	session, err := h.svc.Chat.CreateSession(c.Request.Context(), &req)
	if err != nil {
		InternalServerError(c, "Failed to create session", err)
		return
	}
	Created(c, gin.H{"session": session})
}

// DeleteSession 删除单个会话
// DELETE /api/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Session ID is required")
		return
	}

	if err := h.svc.Chat.DeleteSession(c.Request.Context(), id); err != nil {
		InternalServerError(c, "Failed to delete session", err)
		return
	}
	Success(c, gin.H{"success": true})
}

// ClearSessions 清空全部会话
// DELETE /api/sessions
func (h *SessionHandler) ClearSessions(c *gin.Context) {
	if err := h.svc.Chat.ClearSessions(c.Request.Context()); err != nil {
		InternalServerError(c, "Failed to clear sessions", err)
		return
	}
	Success(c, gin.H{"success": true})
}

// GetMessages 获取会话消息
// GET /api/sessions/:id/messages
func (h *SessionHandler) GetMessages(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Session ID is required")
		return
	}

	messages, err := h.svc.Chat.GetMessages(c.Request.Context(), id)
	if err != nil {
		InternalServerError(c, "Failed to fetch messages", err)
		return
	}
	Success(c, gin.H{"messages": messages})
}
