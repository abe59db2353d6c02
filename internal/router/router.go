package router

import (
	"github.com/gin-gonic/gin"

	"github.com/notesaura/notesaura-ai/internal/handler"
	"github.com/notesaura/notesaura-ai/internal/middleware"
	"github.com/notesaura/notesaura-ai/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, svc *service.Services) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.AuthMiddleware(svc))

	// 健康检查
	r.GET("/health", h.System.Health)

	// API
	api := r.Group("/api")
	{
		// 认证
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/check-user", h.Auth.CheckUser)
		}

		// 聊天与上传
		api.POST("/chat", h.Chat.Chat)
		api.POST("/upload", h.Upload.Upload)

		// 会话
		sessions := api.Group("/sessions")
		{
			sessions.GET("", h.Session.ListSessions)
			sessions.POST("", h.Session.CreateSession)
			sessions.DELETE("", h.Session.ClearSessions)
			sessions.DELETE("/:id", h.Session.DeleteSession)
			sessions.GET("/:id/messages", h.Session.GetMessages)
		}

		// 设置与数据导出（需要登录）
		settings := api.Group("/settings", middleware.RequireAuth(svc))
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
		}
		api.GET("/export-data", middleware.RequireAuth(svc), h.Settings.ExportData)

		// 生成服务自检
		api.GET("/test-ai", h.System.TestAI)
	}

	return r
}
