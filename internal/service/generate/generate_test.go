// Package generate 调度器单元测试
package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// stubModel 固定回复的 ChatModel 桩
type stubModel struct {
	reply string
	err   error

	gotMessages []*schema.Message
}

func (m *stubModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.gotMessages = input
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *stubModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

// ========== Ready 测试 ==========

func TestReady(t *testing.T) {
	if NewDispatcher(nil, nil).Ready() {
		t.Error("dispatcher without models should not be ready")
	}
	if NewDispatcher(&stubModel{}, nil).Ready() {
		t.Error("dispatcher missing upload model should not be ready")
	}
	if !NewDispatcher(&stubModel{}, &stubModel{}).Ready() {
		t.Error("dispatcher with both models should be ready")
	}
}

// ========== 文本通道测试 ==========

func TestText_Success(t *testing.T) {
	d := NewDispatcher(&stubModel{reply: "the answer"}, &stubModel{})

	got, err := d.Text(context.Background(), "question")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "the answer" {
		t.Errorf("Text() = %q, want %q", got, "the answer")
	}
}

func TestText_ErrorPropagates(t *testing.T) {
	wantErr := errors.New("upstream boom")
	d := NewDispatcher(&stubModel{err: wantErr}, &stubModel{})

	_, err := d.Text(context.Background(), "question")
	if !errors.Is(err, wantErr) {
		t.Errorf("Text() error = %v, want %v", err, wantErr)
	}
}

func TestText_NotConfigured(t *testing.T) {
	d := NewDispatcher(nil, &stubModel{})

	_, err := d.Text(context.Background(), "question")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Text() error = %v, want ErrNotConfigured", err)
	}
}

func TestText_EmptyReply(t *testing.T) {
	d := NewDispatcher(&stubModel{reply: ""}, &stubModel{})

	got, err := d.Text(context.Background(), "question")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != emptyReply {
		t.Errorf("Text() = %q, want fallback copy", got)
	}
}

// ========== 上传文本通道测试 ==========

func TestUploadText_UsesUploadModel(t *testing.T) {
	chatModel := &stubModel{reply: "chat reply"}
	uploadModel := &stubModel{reply: "upload reply"}
	d := NewDispatcher(chatModel, uploadModel)

	got, err := d.UploadText(context.Background(), "summarize the file")
	if err != nil {
		t.Fatalf("UploadText() error = %v", err)
	}
	if got != "upload reply" {
		t.Errorf("UploadText() = %q, want %q", got, "upload reply")
	}
	if chatModel.gotMessages != nil {
		t.Error("UploadText() must not invoke the chat model")
	}
	if uploadModel.gotMessages == nil {
		t.Error("UploadText() should invoke the upload model")
	}
}

func TestUploadText_NotConfigured(t *testing.T) {
	d := NewDispatcher(&stubModel{}, nil)

	_, err := d.UploadText(context.Background(), "summarize")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("UploadText() error = %v, want ErrNotConfigured", err)
	}
}

// ========== 多模态通道测试 ==========

func pdfAttachment() *Attachment {
	return &Attachment{
		FileName: "paper.pdf",
		MIMEType: "application/pdf",
		Data:     []byte("%PDF-1.4"),
	}
}

func TestMultimodal_Success(t *testing.T) {
	upload := &stubModel{reply: "summary of the pdf"}
	d := NewDispatcher(&stubModel{}, upload)

	outcome := d.Multimodal(context.Background(), "summarize", pdfAttachment())
	if outcome.Kind != OK {
		t.Errorf("Kind = %v, want OK", outcome.Kind)
	}
	if outcome.Text != "summary of the pdf" {
		t.Errorf("Text = %q, want %q", outcome.Text, "summary of the pdf")
	}

	if len(upload.gotMessages) != 1 {
		t.Fatalf("got %d messages, want 1", len(upload.gotMessages))
	}
	parts := upload.gotMessages[0].MultiContent
	if len(parts) != 2 {
		t.Fatalf("got %d message parts, want 2", len(parts))
	}
	if parts[0].Type != schema.ChatMessagePartTypeText || parts[0].Text != "summarize" {
		t.Error("first part should carry the instruction text")
	}
	if parts[1].Type != schema.ChatMessagePartTypeFileURL {
		t.Errorf("second part type = %v, want file url", parts[1].Type)
	}
	if !strings.HasPrefix(parts[1].FileURL.URL, "data:application/pdf;base64,") {
		t.Errorf("file url %q should be a base64 data uri", parts[1].FileURL.URL)
	}
}

func TestMultimodal_AudioUsesAudioPart(t *testing.T) {
	upload := &stubModel{reply: "transcript"}
	d := NewDispatcher(&stubModel{}, upload)

	d.Multimodal(context.Background(), "transcribe", &Attachment{
		FileName: "lecture.mp3",
		MIMEType: "audio/mp3",
		Data:     []byte{0xFF, 0xFB},
		Audio:    true,
	})

	parts := upload.gotMessages[0].MultiContent
	if parts[1].Type != schema.ChatMessagePartTypeAudioURL {
		t.Errorf("second part type = %v, want audio url", parts[1].Type)
	}
	if !strings.HasPrefix(parts[1].AudioURL.URL, "data:audio/mp3;base64,") {
		t.Errorf("audio url %q should be a base64 data uri", parts[1].AudioURL.URL)
	}
}

func TestMultimodal_NeverErrors(t *testing.T) {
	d := NewDispatcher(&stubModel{}, &stubModel{err: errors.New("model exploded")})

	outcome := d.Multimodal(context.Background(), "summarize", pdfAttachment())
	if outcome.Kind != Fallback {
		t.Errorf("Kind = %v, want Fallback", outcome.Kind)
	}
	if !strings.Contains(outcome.Text, "paper.pdf") {
		t.Errorf("fallback %q should contain the file name", outcome.Text)
	}
	if !strings.Contains(outcome.Text, "model exploded") {
		t.Errorf("fallback %q should contain the underlying error", outcome.Text)
	}
}

func TestMultimodal_NotConfiguredFallsBack(t *testing.T) {
	d := NewDispatcher(&stubModel{}, nil)

	outcome := d.Multimodal(context.Background(), "summarize", &Attachment{
		FileName: "lecture.wav",
		MIMEType: "audio/wav",
		Audio:    true,
	})
	if outcome.Kind != Fallback {
		t.Errorf("Kind = %v, want Fallback", outcome.Kind)
	}
	if !strings.Contains(outcome.Text, "audio file") {
		t.Errorf("fallback %q should name the audio kind", outcome.Text)
	}
	if !strings.Contains(outcome.Text, "lecture.wav") {
		t.Errorf("fallback %q should contain the file name", outcome.Text)
	}
}

func TestMultimodal_EmptyReply(t *testing.T) {
	d := NewDispatcher(&stubModel{}, &stubModel{reply: ""})

	outcome := d.Multimodal(context.Background(), "summarize", pdfAttachment())
	if outcome.Kind != OK {
		t.Errorf("Kind = %v, want OK", outcome.Kind)
	}
	if outcome.Text != emptyReply {
		t.Errorf("Text = %q, want fallback copy", outcome.Text)
	}
}
