package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/service"
	"github.com/notesaura/notesaura-ai/internal/service/generate"
)

// UploadHandler 文件上传处理器
type UploadHandler struct {
	svc *service.Services
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(svc *service.Services) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload 处理文件上传并生成总结
// POST /api/upload (multipart: file, sessionId, customInstructions?)
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "No file provided")
		return
	}

	sessionID := c.PostForm("sessionId")
	if sessionID == "" {
		BadRequest(c, "Session ID is required")
		return
	}
	custom := c.PostForm("customInstructions")

	file, err := fileHeader.Open()
	if err != nil {
		InternalServerError(c, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		InternalServerError(c, "Failed to read uploaded file", err)
		return
	}

	summary, kind, err := h.svc.Chat.ProcessUpload(c.Request.Context(), sessionID, fileHeader.Filename, data, custom)
	if err != nil {
		if errors.Is(err, generate.ErrNotConfigured) {
			InternalServerError(c, "AI service not properly configured", nil)
			return
		}
		InternalServerError(c, "Failed to process file", err)
		return
	}

	Success(c, gin.H{
		"summary":  summary,
		"fileType": string(kind),
	})
}
