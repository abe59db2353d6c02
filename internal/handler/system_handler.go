package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/database"
	"github.com/notesaura/notesaura-ai/internal/service"
)

// SystemHandler 系统处理器
type SystemHandler struct {
	svc *service.Services
	db  *database.DB
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(svc *service.Services) *SystemHandler {
	return &SystemHandler{svc: svc}
}

// SetDB 注入数据库连接（用于健康检查探测）
func (h *SystemHandler) SetDB(db *database.DB) {
	h.db = db
}

// Health 健康检查
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			dbStatus = "error: " + err.Error()
		}
	} else {
		dbStatus = "not connected"
	}

	c.JSON(200, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// TestAI 生成服务自检：一次固定指令往返
// GET /api/test-ai
func (h *SystemHandler) TestAI(c *gin.Context) {
	if !h.svc.Dispatcher.Ready() {
		InternalServerError(c, "AI service not properly configured", nil)
		return
	}

	reply, err := h.svc.Dispatcher.Text(c.Request.Context(), "Say hello in one short sentence.")
	if err != nil {
		InternalServerError(c, "AI service test failed", err)
		return
	}

	Success(c, gin.H{"response": reply})
}
