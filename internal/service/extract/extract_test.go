// Package extract 文件类型识别与抽取单元测试
package extract

import (
	"context"
	"strings"
	"testing"
)

// ========== 文件类型识别测试 ==========

func TestKindOf(t *testing.T) {
	tests := []struct {
		fileName string
		want     FileKind
	}{
		{"notes.txt", KindText},
		{"README.md", KindText},
		{"paper.pdf", KindPDF},
		{"Paper.PDF", KindPDF},
		{"report.docx", KindDocx},
		{"report.doc", KindDocx},
		{"lecture.mp3", KindAudio},
		{"lecture.wav", KindAudio},
		{"lecture.m4a", KindAudio},
		{"lecture.ogg", KindAudio},
		{"lecture.webm", KindAudio},
		{"lecture.flac", KindAudio},
		{"lecture.aac", KindAudio},
		{"unknown.xyz", KindText},
		{"noextension", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := KindOf(tt.fileName); got != tt.want {
				t.Errorf("KindOf(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

// ========== MIME 类型测试 ==========

func TestMIMEType(t *testing.T) {
	tests := []struct {
		fileName string
		kind     FileKind
		want     string
	}{
		{"paper.pdf", KindPDF, "application/pdf"},
		{"a.mp3", KindAudio, "audio/mp3"},
		{"a.wav", KindAudio, "audio/wav"},
		{"a.m4a", KindAudio, "audio/mp4"},
		{"a.ogg", KindAudio, "audio/ogg"},
		{"a.webm", KindAudio, "audio/webm"},
		{"a.flac", KindAudio, "audio/flac"},
		{"a.aac", KindAudio, "audio/aac"},
		{"a.unknown", KindAudio, "audio/mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := MIMEType(tt.fileName, tt.kind); got != tt.want {
				t.Errorf("MIMEType(%q, %v) = %q, want %q", tt.fileName, tt.kind, got, tt.want)
			}
		})
	}
}

// ========== 抽取测试 ==========

func TestExtract_Text(t *testing.T) {
	e := NewExtractor()
	got := e.Extract(context.Background(), "notes.txt", []byte("hello notes"))

	if got.Kind != KindText {
		t.Errorf("Kind = %v, want %v", got.Kind, KindText)
	}
	if got.Text != "hello notes" {
		t.Errorf("Text = %q, want %q", got.Text, "hello notes")
	}
	if got.Multimodal {
		t.Error("text extraction should not be multimodal")
	}
}

func TestExtract_PDFIsMultimodal(t *testing.T) {
	e := NewExtractor()
	got := e.Extract(context.Background(), "paper.pdf", []byte("%PDF-1.4"))

	if got.Kind != KindPDF {
		t.Errorf("Kind = %v, want %v", got.Kind, KindPDF)
	}
	if !got.Multimodal {
		t.Error("pdf extraction should be multimodal")
	}
	if got.Text != "" {
		t.Errorf("pdf extraction Text = %q, want empty", got.Text)
	}
}

func TestExtract_AudioIsMultimodal(t *testing.T) {
	e := NewExtractor()
	got := e.Extract(context.Background(), "lecture.mp3", []byte{0xFF, 0xFB})

	if got.Kind != KindAudio {
		t.Errorf("Kind = %v, want %v", got.Kind, KindAudio)
	}
	if !got.Multimodal {
		t.Error("audio extraction should be multimodal")
	}
}

func TestExtract_DocxFallbackOnGarbage(t *testing.T) {
	e := NewExtractor()
	got := e.Extract(context.Background(), "broken.docx", []byte("not a zip archive"))

	if got.Kind != KindDocx {
		t.Errorf("Kind = %v, want %v", got.Kind, KindDocx)
	}
	if got.Multimodal {
		t.Error("docx extraction should not be multimodal")
	}
	if got.Text == "" {
		t.Error("docx fallback text should not be empty")
	}
	if !strings.Contains(got.Text, "[Document: broken.docx]") {
		t.Errorf("fallback %q should reference the document by name", got.Text)
	}
	if !strings.Contains(got.Text, "simulated text extraction") {
		t.Errorf("fallback %q should use the parse-failure copy", got.Text)
	}
}
