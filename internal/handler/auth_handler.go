package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/service"
	"github.com/notesaura/notesaura-ai/internal/service/auth"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *service.Services
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc *service.Services) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup 用户注册
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	user, err := h.svc.Auth.Signup(c.Request.Context(), &req)
	if err != nil {
		if err.Error() == "user already exists" {
			Conflict(c, "User with this email already exists")
			return
		}
		InternalServerError(c, "Failed to create user", err)
		return
	}

	Created(c, gin.H{"user": user})
}

// Login 用户登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	resp, err := h.svc.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		Unauthorized(c, "Invalid email or password")
		return
	}

	Success(c, resp)
}

// CheckUser 按邮箱查询用户是否存在
// POST /api/auth/check-user
func (h *AuthHandler) CheckUser(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Email is required")
		return
	}

	Success(c, gin.H{"exists": h.svc.Auth.UserExists(c.Request.Context(), req.Email)})
}
