package service

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/redis/go-redis/v9"

	"github.com/notesaura/notesaura-ai/internal/config"
	"github.com/notesaura/notesaura-ai/internal/repository"
	"github.com/notesaura/notesaura-ai/internal/service/auth"
	"github.com/notesaura/notesaura-ai/internal/service/chat"
	"github.com/notesaura/notesaura-ai/internal/service/extract"
	"github.com/notesaura/notesaura-ai/internal/service/generate"
	"github.com/notesaura/notesaura-ai/internal/service/history"
	"github.com/notesaura/notesaura-ai/internal/service/user"
)

// historyWindow 上下文窗口大小（缓存与上下文组装保持一致）
const historyWindow = 20

// Services 服务集合
type Services struct {
	Chat *chat.Service
	Auth *auth.Service
	User *user.Service

	Config     *config.Config
	Dispatcher *generate.Dispatcher
}

// NewServices 创建所有服务
// 参考 eino-examples，使用简单的 newXxx() 函数直接初始化 eino 组件
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	ctx := context.Background()

	// 聊天与上传使用独立配置的模型标识，分别初始化
	chatModel, err := newChatModel(ctx, cfg, cfg.AI.ChatModel)
	if err != nil {
		log.Printf("Warning: failed to create chat model: %v", err)
	}
	uploadModel, err := newChatModel(ctx, cfg, cfg.AI.UploadModel)
	if err != nil {
		log.Printf("Warning: failed to create upload model: %v", err)
	}

	dispatcher := generate.NewDispatcher(chatModel, uploadModel)
	historyCache := history.NewCache(redisClient, historyWindow)
	extractor := extract.NewExtractor()

	return &Services{
		Chat: chat.NewService(repo.Chat, historyCache, dispatcher, extractor),
		Auth: auth.NewService(repo.User),
		User: user.NewService(repo.User, repo.Chat),

		Config:     cfg,
		Dispatcher: dispatcher,
	}, nil
}

// newChatModel 创建 ChatModel
// gemini 走 OpenAI 兼容端点，和 openai/deepseek 共用同一个客户端
func newChatModel(ctx context.Context, cfg *config.Config, modelName string) (model.BaseChatModel, error) {
	aiCfg := cfg.AI

	var baseURL string
	switch aiCfg.Provider {
	case "gemini", "google":
		baseURL = aiCfg.BaseURL
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
		}
	case "openai":
		baseURL = aiCfg.BaseURL
	case "deepseek":
		baseURL = aiCfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.deepseek.com/v1"
		}
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", aiCfg.Provider)
	}

	if aiCfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required for provider: %s", aiCfg.Provider)
	}

	if modelName == "" {
		modelName = "gemini-flash-latest"
	}

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  aiCfg.APIKey,
		BaseURL: baseURL,
		Model:   modelName,
	})
}
