// Package sanitize 清理模型输出中的 Markdown 标记
// 只去除结构性标记，emoji 和正文内容原样保留
package sanitize

import (
	"regexp"
	"strings"
)

// 各规则按固定顺序应用，顺序不能变：
// 先去粗体再去斜体，单个 * / _ 的匹配才不会吃掉粗体标记
var (
	reBold        = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reBoldUnder   = regexp.MustCompile(`__(.*?)__`)
	reItalic      = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnder = regexp.MustCompile(`_([^_]+)_`)
	reHeader      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	reDoubleQuote = regexp.MustCompile(`"([^"]+)"`)
	reSingleQuote = regexp.MustCompile(`'([^']+)'`)
	reCodeBlock   = regexp.MustCompile("(?s)```.*?\n(.*?)```")
	reInlineCode  = regexp.MustCompile("`([^`]+)`")
	reNewlines    = regexp.MustCompile(`\n{3,}`)
)

// Clean 清理模型回复中的 Markdown 格式
func Clean(text string) string {
	cleaned := text

	// 粗体（**text** 或 __text__）
	cleaned = reBold.ReplaceAllString(cleaned, "${1}")
	cleaned = reBoldUnder.ReplaceAllString(cleaned, "${1}")

	// 斜体（*text* 或 _text_）
	cleaned = reItalic.ReplaceAllString(cleaned, "${1}")
	cleaned = reItalicUnder.ReplaceAllString(cleaned, "${1}")

	// 标题行开头的 # 标记
	cleaned = reHeader.ReplaceAllString(cleaned, "")

	// 包裹词语的引号
	cleaned = reDoubleQuote.ReplaceAllString(cleaned, "${1}")
	cleaned = reSingleQuote.ReplaceAllString(cleaned, "${1}")

	// 代码块（保留内容，去掉围栏和语言标记）与行内代码
	cleaned = reCodeBlock.ReplaceAllString(cleaned, "${1}")
	cleaned = reInlineCode.ReplaceAllString(cleaned, "${1}")

	// 连续 3 个以上换行压缩为 2 个
	cleaned = reNewlines.ReplaceAllString(cleaned, "\n\n")

	return strings.TrimSpace(cleaned)
}
