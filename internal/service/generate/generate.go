// Package generate 调度外部生成模型
// 文本通道错误原样上抛；多模态通道从不上抛，失败时降级为可读的回退消息
package generate

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ErrNotConfigured 生成模型未配置（缺少 API Key）
// 在任何网络调用之前返回
var ErrNotConfigured = errors.New("AI service not properly configured")

// emptyReply 模型返回空内容时的兜底文案
const emptyReply = "Sorry, I could not generate a summary. Please try again."

// Kind 调度结果类别
type Kind int

const (
	// OK 模型正常返回
	OK Kind = iota
	// Fallback 多模态通道失败后的降级文案
	Fallback
)

// Outcome 多模态调度结果（带标签，降级与正常返回显式区分）
type Outcome struct {
	Kind Kind
	Text string
}

// Attachment 多模态附件
type Attachment struct {
	FileName string
	MIMEType string
	Data     []byte
	Audio    bool
}

// Dispatcher 生成调度器
// 聊天与上传使用两个独立配置的模型标识
type Dispatcher struct {
	chatModel   model.BaseChatModel
	uploadModel model.BaseChatModel
}

// NewDispatcher 创建调度器
func NewDispatcher(chatModel, uploadModel model.BaseChatModel) *Dispatcher {
	return &Dispatcher{
		chatModel:   chatModel,
		uploadModel: uploadModel,
	}
}

// Ready 模型是否可用
func (d *Dispatcher) Ready() bool {
	return d.chatModel != nil && d.uploadModel != nil
}

// Text 聊天的文本通道：单次阻塞调用，不重试，错误原样返回
func (d *Dispatcher) Text(ctx context.Context, instruction string) (string, error) {
	return generateText(ctx, d.chatModel, instruction)
}

// UploadText 上传的文本通道：与 Text 行为相同，但使用上传模型
// 上传请求无论走文本还是多模态都用上传模型
func (d *Dispatcher) UploadText(ctx context.Context, instruction string) (string, error) {
	return generateText(ctx, d.uploadModel, instruction)
}

func generateText(ctx context.Context, m model.BaseChatModel, instruction string) (string, error) {
	if m == nil {
		return "", ErrNotConfigured
	}

	resp, err := m.Generate(ctx, []*schema.Message{
		schema.UserMessage(instruction),
	})
	if err != nil {
		return "", err
	}
	if resp.Content == "" {
		return emptyReply, nil
	}
	return resp.Content, nil
}

// Multimodal 多模态通道：文件字节以 base64 内联提交
// 本通道失败不会使整个请求失败，降级文案中带上文件名与底层错误
func (d *Dispatcher) Multimodal(ctx context.Context, instruction string, att *Attachment) Outcome {
	if d.uploadModel == nil {
		return fallback(att, ErrNotConfigured)
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", att.MIMEType, base64.StdEncoding.EncodeToString(att.Data))

	filePart := schema.ChatMessagePart{
		Type: schema.ChatMessagePartTypeFileURL,
		FileURL: &schema.ChatMessageFileURL{
			URL:      dataURI,
			MIMEType: att.MIMEType,
			Name:     att.FileName,
		},
	}
	if att.Audio {
		filePart = schema.ChatMessagePart{
			Type: schema.ChatMessagePartTypeAudioURL,
			AudioURL: &schema.ChatMessageAudioURL{
				URL:      dataURI,
				MIMEType: att.MIMEType,
			},
		}
	}

	resp, err := d.uploadModel.Generate(ctx, []*schema.Message{
		{
			Role: schema.User,
			MultiContent: []schema.ChatMessagePart{
				{Type: schema.ChatMessagePartTypeText, Text: instruction},
				filePart,
			},
		},
	})
	if err != nil {
		return fallback(att, err)
	}
	if resp.Content == "" {
		return Outcome{Kind: OK, Text: emptyReply}
	}
	return Outcome{Kind: OK, Text: resp.Content}
}

// fallback 生成降级文案
func fallback(att *Attachment, err error) Outcome {
	kindName := "PDF"
	if att.Audio {
		kindName = "audio"
	}
	reason := "Please try again or use a different file format."
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}
	return Outcome{
		Kind: Fallback,
		Text: fmt.Sprintf("I've received the %s file \"%s\", but I'm having trouble processing it directly. %s", kindName, att.FileName, reason),
	}
}
