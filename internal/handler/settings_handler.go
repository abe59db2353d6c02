package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/middleware"
	"github.com/notesaura/notesaura-ai/internal/service"
	"github.com/notesaura/notesaura-ai/internal/service/user"
)

// SettingsHandler 用户设置与数据导出处理器
type SettingsHandler struct {
	svc *service.Services
}

// NewSettingsHandler 创建设置处理器
func NewSettingsHandler(svc *service.Services) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetSettings 获取用户设置
// GET /api/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Authentication required")
		return
	}

	settings, err := h.svc.User.GetSettings(c.Request.Context(), userID)
	if err != nil {
		InternalServerError(c, "Failed to fetch settings", err)
		return
	}
	Success(c, gin.H{"settings": settings})
}

// UpdateSettings 更新用户设置
// PUT /api/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Authentication required")
		return
	}

	var req user.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	if err := h.svc.User.UpdateSettings(c.Request.Context(), userID, &req); err != nil {
		InternalServerError(c, "Failed to update settings", err)
		return
	}
	Success(c, gin.H{"success": true})
}

// ExportData 导出用户数据（JSON 附件）
// GET /api/export-data
func (h *SettingsHandler) ExportData(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Authentication required")
		return
	}

	data, err := h.svc.User.Export(c.Request.Context(), userID)
	if err != nil {
		InternalServerError(c, "Failed to export data", err)
		return
	}

	fileName := fmt.Sprintf("notesaura-data-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.JSON(200, data)
}
