// Package sanitize 清理逻辑单元测试
package sanitize

import (
	"testing"
)

// ========== Markdown 标记清理测试 ==========

func TestClean_Markdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"粗体星号", "**bold**", "bold"},
		{"粗体下划线", "__bold__", "bold"},
		{"斜体星号", "*italic*", "italic"},
		{"斜体下划线", "_italic_", "italic"},
		{"标题", "# Title\ncontent", "Title\ncontent"},
		{"多级标题", "### Section\ntext", "Section\ntext"},
		{"双引号", `say "hello" now`, "say hello now"},
		{"单引号", "it is 'quoted' here", "it is quoted here"},
		{"行内代码", "use `fmt.Println` here", "use fmt.Println here"},
		{"代码块", "before\n```go\ncode line\n```\nafter", "before\ncode line\n\nafter"},
		{"纯文本不变", "plain text stays", "plain text stays"},
		{"空串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ========== emoji 与正文保留测试 ==========

func TestClean_PreservesEmojiAndWords(t *testing.T) {
	got := Clean("**Hello** _world_ 😊")
	want := "Hello world 😊"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

// ========== 换行压缩测试 ==========

func TestClean_CollapsesNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"四个换行", "A\n\n\n\nB", "A\n\nB"},
		{"三个换行", "A\n\n\nB", "A\n\nB"},
		{"两个换行保留", "A\n\nB", "A\n\nB"},
		{"单个换行保留", "A\nB", "A\nB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ========== 首尾空白测试 ==========

func TestClean_TrimsWhitespace(t *testing.T) {
	got := Clean("  \n hello \n  ")
	if got != "hello" {
		t.Errorf("Clean() = %q, want %q", got, "hello")
	}
}

// ========== 幂等性测试 ==========

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"**bold** and *italic* with `code`",
		"# Header\n\n\n\nbody with \"quotes\"",
		"plain text 😊",
		"```python\nprint(1)\n```",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

// ========== 规则顺序交互测试 ==========

func TestClean_OrderInteractions(t *testing.T) {
	// 粗体先于斜体处理，**text** 不会被斜体规则吃掉星号
	got := Clean("**bold** then *italic*")
	want := "bold then italic"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}

	// 嵌套：粗体内的斜体
	got = Clean("***both***")
	if got != "both" {
		t.Errorf("Clean(***both***) = %q, want %q", got, "both")
	}
}
