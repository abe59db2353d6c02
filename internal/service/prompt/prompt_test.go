// Package prompt 指令组装单元测试
package prompt

import (
	"strings"
	"testing"

	"github.com/notesaura/notesaura-ai/internal/model"
)

func msg(role, content string) *model.Message {
	return &model.Message{Role: role, Content: content}
}

// ========== 历史渲染测试 ==========

func TestRenderTranscript_Empty(t *testing.T) {
	if got := RenderTranscript(nil, false); got != "" {
		t.Errorf("RenderTranscript(nil) = %q, want empty", got)
	}
	if got := RenderTranscript([]*model.Message{}, true); got != "" {
		t.Errorf("RenderTranscript(empty) = %q, want empty", got)
	}
}

func TestRenderTranscript_RolesAndHeader(t *testing.T) {
	messages := []*model.Message{
		msg(model.RoleUser, "what is recursion"),
		msg(model.RoleAssistant, "a function calling itself"),
	}

	got := RenderTranscript(messages, false)

	if !strings.Contains(got, "Previous conversation in this session:") {
		t.Error("transcript missing header line")
	}
	if !strings.Contains(got, "User: what is recursion") {
		t.Error("transcript missing user line")
	}
	if !strings.Contains(got, "Assistant: a function calling itself") {
		t.Error("transcript missing assistant line")
	}
	if strings.Contains(got, "Based on the conversation above") {
		t.Error("chat transcript should not have the continue trailer")
	}
}

func TestRenderTranscript_NoTruncationInChatMode(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := RenderTranscript([]*model.Message{msg(model.RoleUser, long)}, false)

	if !strings.Contains(got, long) {
		t.Error("chat transcript should keep long messages untruncated")
	}
	if strings.Contains(got, "...") {
		t.Error("chat transcript should not contain ellipsis")
	}
}

func TestRenderTranscript_TruncationInUploadMode(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := RenderTranscript([]*model.Message{msg(model.RoleUser, long)}, true)

	want := strings.Repeat("a", 200) + "..."
	if !strings.Contains(got, want) {
		t.Error("upload transcript should truncate to 200 chars with ellipsis")
	}
	if strings.Contains(got, strings.Repeat("a", 201)) {
		t.Error("upload transcript kept more than 200 chars")
	}
	if !strings.Contains(got, "Based on the conversation above, continue helping the user with their studies.") {
		t.Error("upload transcript missing continue trailer")
	}
}

func TestRenderTranscript_ShortMessageNotTruncated(t *testing.T) {
	got := RenderTranscript([]*model.Message{msg(model.RoleUser, "short")}, true)
	if strings.Contains(got, "short...") {
		t.Error("short messages should not gain an ellipsis")
	}
}

// ========== 聊天指令测试 ==========

func TestChat_ContainsPieces(t *testing.T) {
	transcript := RenderTranscript([]*model.Message{msg(model.RoleUser, "earlier question")}, false)
	got := Chat(transcript, "explain photosynthesis")

	if !strings.Contains(got, "You are NotesAura AI") {
		t.Error("chat prompt missing persona")
	}
	if !strings.Contains(got, "refer to previous topics discussed") {
		t.Error("chat prompt missing chat history checklist item")
	}
	if !strings.Contains(got, "earlier question") {
		t.Error("chat prompt missing transcript")
	}
	if !strings.Contains(got, "User's current message: explain photosynthesis") {
		t.Error("chat prompt missing current message lead-in")
	}
}

func TestChat_EmptyTranscript(t *testing.T) {
	got := Chat("", "hello")
	if !strings.Contains(got, "User's current message: hello") {
		t.Error("chat prompt without history missing current message")
	}
	if strings.Contains(got, "Previous conversation in this session:") {
		t.Error("chat prompt without history should not mention previous conversation")
	}
}

// ========== 文本上传指令测试 ==========

func TestTextUpload_Default(t *testing.T) {
	got := TextUpload("", "notes.txt", "file body here", "")

	if !strings.Contains(got, `Please summarize the following content from the file "notes.txt"`) {
		t.Error("upload prompt missing default summarize instruction")
	}
	if !strings.Contains(got, "file body here") {
		t.Error("upload prompt missing extracted content")
	}
}

func TestTextUpload_CustomInstructionsBeforeContent(t *testing.T) {
	got := TextUpload("", "notes.txt", "extracted body", "make flashcards")

	instrIdx := strings.Index(got, "make flashcards")
	contentIdx := strings.Index(got, "extracted body")
	if instrIdx < 0 {
		t.Fatal("upload prompt missing custom instructions")
	}
	if contentIdx < 0 {
		t.Fatal("upload prompt missing extracted content")
	}
	if instrIdx > contentIdx {
		t.Error("custom instructions should appear before extracted content")
	}
	if !strings.Contains(got, "Connect new file content") {
		t.Error("upload prompt missing upload history checklist item")
	}
}

// ========== 多模态指令测试 ==========

func TestMultimodal_PDF(t *testing.T) {
	got := Multimodal("", "paper.pdf", false, "")

	if !strings.Contains(got, "analyze and summarize the content of this PDF document") {
		t.Error("pdf prompt missing analyze task")
	}
	if !strings.Contains(got, `"paper.pdf"`) {
		t.Error("pdf prompt missing file name")
	}
	if strings.Contains(got, "transcribe") {
		t.Error("pdf prompt should not mention transcription")
	}
}

func TestMultimodal_Audio(t *testing.T) {
	got := Multimodal("", "lecture.mp3", true, "")

	if !strings.Contains(got, "transcribe and summarize the complete content of this audio file") {
		t.Error("audio prompt missing transcribe task")
	}
	if !strings.Contains(got, "Make sure to process the complete audio from beginning to end.") {
		t.Error("audio prompt missing completeness reminder")
	}
	if !strings.Contains(got, "transcribe the ENTIRE audio content") {
		t.Error("audio prompt missing audio checklist items")
	}
}

func TestMultimodal_CustomInstructions(t *testing.T) {
	got := Multimodal("", "lecture.mp3", true, "list the key dates")

	if !strings.Contains(got, "list the key dates") {
		t.Error("multimodal prompt missing custom instructions")
	}
	if !strings.Contains(got, "respond according to these instructions") {
		t.Error("multimodal prompt missing instruction directive")
	}
}
