package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/config"
)

// ========== API 响应格式 ==========

// Success 成功响应 (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}

// InternalServerError 500 错误响应
// 底层错误详情只在开发环境下返回
func InternalServerError(c *gin.Context, msg string, err error) {
	payload := gin.H{"error": msg}
	if err != nil && config.Get().App.IsDevelopment() {
		payload["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, payload)
}
