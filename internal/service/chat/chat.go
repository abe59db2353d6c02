// Package chat 实现会话管理与消息生成流水线
// 单次请求的流程：组装上下文 → 组装指令 → 调度模型 → 清理输出 → 持久化
package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/notesaura/notesaura-ai/internal/model"
	"github.com/notesaura/notesaura-ai/internal/repository"
	"github.com/notesaura/notesaura-ai/internal/service/extract"
	"github.com/notesaura/notesaura-ai/internal/service/generate"
	"github.com/notesaura/notesaura-ai/internal/service/history"
	"github.com/notesaura/notesaura-ai/internal/service/prompt"
	"github.com/notesaura/notesaura-ai/internal/service/sanitize"
)

const (
	// contextWindow 上下文取最近 20 条消息（10 轮对话）
	contextWindow = 20
	// titleBudget 默认标题取首条输入的前 50 个字符
	titleBudget = 50
	// defaultTitle 新会话的默认标题
	defaultTitle = "New Chat"
)

// Service 聊天服务
type Service struct {
	repo       repository.ChatRepository
	history    *history.Cache
	dispatcher *generate.Dispatcher
	extractor  *extract.Extractor
}

// NewService 创建聊天服务
func NewService(repo repository.ChatRepository, hist *history.Cache, dispatcher *generate.Dispatcher, extractor *extract.Extractor) *Service {
	return &Service{
		repo:       repo,
		history:    hist,
		dispatcher: dispatcher,
		extractor:  extractor,
	}
}

// CreateSessionRequest 创建会话请求
// UserID 不参与 JSON 绑定，归属只能由服务端按认证结果设置
type CreateSessionRequest struct {
	Title  string `json:"title"`
	UserID string `json:"-"`
}

// CreateSession 创建会话
func (s *Service) CreateSession(ctx context.Context, req *CreateSessionRequest) (*model.ChatSession, error) {
	title := req.Title
	if title == "" {
		title = defaultTitle
	}

	session := &model.ChatSession{
		ID:    uuid.New().String(),
		Title: title,
	}
	if req.UserID != "" {
		session.UserID = &req.UserID
	}

	if err := s.repo.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ListSessions 列出至少有一条消息的会话（含消息）
func (s *Service) ListSessions(ctx context.Context) ([]*model.ChatSession, error) {
	return s.repo.ListSessionsWithMessages()
}

// DeleteSession 删除会话
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.repo.DeleteSession(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.history.Invalidate(ctx, id)
	return nil
}

// ClearSessions 清空全部会话
func (s *Service) ClearSessions(ctx context.Context) error {
	if err := s.repo.DeleteAllSessions(); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	s.history.InvalidateAll(ctx)
	return nil
}

// GetMessages 获取会话全部消息
func (s *Service) GetMessages(ctx context.Context, sessionID string) ([]*model.Message, error) {
	return s.repo.GetMessagesBySession(sessionID)
}

// SendMessage 处理一条聊天消息并返回清理后的回复
// 模型调用失败时错误原样上抛，由接口层转为 500
func (s *Service) SendMessage(ctx context.Context, sessionID, message string) (string, error) {
	if !s.dispatcher.Ready() {
		return "", generate.ErrNotConfigured
	}

	// 先取上下文，当前消息不进入本轮指令的历史段
	recent, err := s.recentMessages(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load context: %w", err)
	}

	if _, err := s.appendMessage(ctx, sessionID, model.RoleUser, message, nil, nil); err != nil {
		return "", err
	}
	s.maybeSetTitle(recent, sessionID, message)

	// 聊天通道：历史不截断
	transcript := prompt.RenderTranscript(recent, false)
	instruction := prompt.Chat(transcript, message)

	raw, err := s.dispatcher.Text(ctx, instruction)
	if err != nil {
		return "", err
	}
	cleaned := sanitize.Clean(raw)

	if _, err := s.appendMessage(ctx, sessionID, model.RoleAssistant, cleaned, nil, nil); err != nil {
		return "", err
	}
	s.touch(ctx, sessionID)

	return cleaned, nil
}

// ProcessUpload 处理文件上传并返回清理后的总结
// TEXT/DOCX 抽取文本走文本通道，PDF/AUDIO 走多模态通道；两条通道都用上传模型，
// 多模态通道失败只降级不报错
func (s *Service) ProcessUpload(ctx context.Context, sessionID, fileName string, data []byte, custom string) (string, extract.FileKind, error) {
	if !s.dispatcher.Ready() {
		return "", "", generate.ErrNotConfigured
	}

	extraction := s.extractor.Extract(ctx, fileName, data)
	kind := extraction.Kind

	recent, err := s.recentMessages(ctx, sessionID)
	if err != nil {
		return "", kind, fmt.Errorf("failed to load context: %w", err)
	}

	userContent := "Uploaded: " + fileName
	if custom != "" {
		userContent += "\n\nInstructions: " + custom
	}
	fileType := string(kind)
	if _, err := s.appendMessage(ctx, sessionID, model.RoleUser, userContent, &fileName, &fileType); err != nil {
		return "", kind, err
	}
	s.maybeSetTitle(recent, sessionID, userContent)

	// 上传通道：历史单条截断到 200 字符
	transcript := prompt.RenderTranscript(recent, true)

	var cleaned string
	if extraction.Multimodal {
		instruction := prompt.Multimodal(transcript, fileName, kind == extract.KindAudio, custom)
		outcome := s.dispatcher.Multimodal(ctx, instruction, &generate.Attachment{
			FileName: fileName,
			MIMEType: extract.MIMEType(fileName, kind),
			Data:     data,
			Audio:    kind == extract.KindAudio,
		})
		cleaned = sanitize.Clean(outcome.Text)
	} else {
		instruction := prompt.TextUpload(transcript, fileName, extraction.Text, custom)
		raw, err := s.dispatcher.UploadText(ctx, instruction)
		if err != nil {
			return "", kind, err
		}
		cleaned = sanitize.Clean(raw)
	}

	if _, err := s.appendMessage(ctx, sessionID, model.RoleAssistant, cleaned, nil, nil); err != nil {
		return "", kind, err
	}
	s.touch(ctx, sessionID)

	return cleaned, kind, nil
}

// recentMessages 组装上下文：缓存优先，未命中读库并回填
// 会话不存在或没有历史时返回空序列，不视为错误
func (s *Service) recentMessages(ctx context.Context, sessionID string) ([]*model.Message, error) {
	if cached, ok := s.history.Get(ctx, sessionID); ok {
		return cached, nil
	}

	// 库中按时间降序取最近 N 条，反转为时间升序
	recent, err := s.repo.GetRecentMessagesBySession(sessionID, contextWindow)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	if len(recent) > 0 {
		s.history.Set(ctx, sessionID, recent)
	}
	return recent, nil
}

// appendMessage 追加消息并同步缓存
func (s *Service) appendMessage(ctx context.Context, sessionID, role, content string, fileName, fileType *string) (*model.Message, error) {
	msg := &model.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		FileName:  fileName,
		FileType:  fileType,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	s.history.Append(ctx, sessionID, msg)
	return msg, nil
}

// maybeSetTitle 首条输入时用其截断作为会话标题
func (s *Service) maybeSetTitle(priorMessages []*model.Message, sessionID, input string) {
	if len(priorMessages) > 0 {
		return
	}

	title := input
	if runes := []rune(title); len(runes) > titleBudget {
		title = string(runes[:titleBudget]) + "..."
	}
	if err := s.repo.UpdateSessionTitle(sessionID, title); err != nil {
		log.Printf("Warning: failed to set session title: %v", err)
	}
}

// touch 刷新会话更新时间
// 与消息写入不在同一事务内，中间崩溃只会留下陈旧的 updated_at
func (s *Service) touch(ctx context.Context, sessionID string) {
	if err := s.repo.TouchSession(sessionID); err != nil {
		log.Printf("Warning: failed to touch session %s: %v", sessionID, err)
	}
}
