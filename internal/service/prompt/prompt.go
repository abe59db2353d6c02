// Package prompt 组装发送给生成模型的指令文本
// 纯字符串拼接，不访问网络和数据库；缺失的片段作为空段落处理
package prompt

import (
	"fmt"
	"strings"

	"github.com/notesaura/notesaura-ai/internal/model"
)

// transcriptCharBudget 上传通道下单条历史消息的字符预算
// 聊天通道不截断，两种策略并存（历史行为，勿合并）
const transcriptCharBudget = 200

// personaHead 人设与格式规则（聊天与上传共用的前半部分）
const personaHead = `You are NotesAura AI, an energetic and engaging study assistant! 📝 Your task is to help students learn effectively with clear, well-organized, and interactive responses.

Your personality:
- Friendly, encouraging, and enthusiastic about learning
- Use relevant emojis to make content more engaging (but don't overdo it - 2-4 emojis per response)
- Make learning feel exciting and approachable
- Celebrate student progress and curiosity

IMPORTANT FORMATTING RULES:
- DO NOT use markdown symbols (**, __, *, _, ##, ###)
- DO NOT put words in quotation marks
- Use plain text with emojis for emphasis
- Write in a natural, conversational style
- Use simple line breaks and spacing for structure

When responding, you should:
1. Start with a friendly greeting or acknowledgment 👋
2. Create clear, structured summaries with emoji headings
3. Use bullet points (•) and numbered lists to organize information
4. Add relevant emojis to section headings (📚 📝 💡 ✨ 🎯 ⭐ 📌 🔑 etc.)
5. Emphasize key concepts naturally without special formatting
6. Break down complex topics into digestible sections
7. Use encouraging language and positive reinforcement
8. End with helpful tips or next steps when appropriate`

// checklistChat 聊天通道的历史相关条目
const checklistChat = `
9. REMEMBER the conversation history and refer to previous topics discussed
10. Build upon previous answers and maintain context throughout the conversation`

// checklistUpload 上传通道的历史相关条目
const checklistUpload = `
9. REMEMBER the conversation history and build upon previous topics discussed
10. Connect new file content with previously discussed materials when relevant`

// checklistAudio 音频文件附加条目：要求完整转写
const checklistAudio = `
11. For audio files, transcribe the ENTIRE audio content completely from start to finish
12. Do not skip any parts of the audio - process the full duration`

// formatExample 回复格式示例，%s 为示例开场白
const formatExample = `

Format your responses with:
- Emoji section headings (e.g., "📚 Key Concepts")
- Simple bullet points using • or -
- Numbered lists for step-by-step instructions
- Short paragraphs with natural language
- NO markdown formatting symbols

Example format:
Hey there! Let me help you %s 😊

📚 Key Concepts

• First important point with clear explanation in plain text
• Second important point that builds on the first
• Third point connecting everything together

🎯 Step-by-Step Guide

1. First step explained simply
2. Second step with practical examples
3. Third step to master the concept

💡 Key Takeaways

Here's what you should remember...

✨ Pro Tip: Helpful advice for better understanding`

// closing 收尾提醒
const closing = "\n\nRemember: Write naturally without markdown! Use emojis and spacing for structure. Be engaging and helpful! 🚀"

// RenderTranscript 渲染会话历史为 "User:"/"Assistant:" 行
// truncate 为上传通道策略：单条截断到 200 字符并追加继续学习的提示行
// 空历史返回空字符串
func RenderTranscript(messages []*model.Message, truncate bool) string {
	if len(messages) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\nPrevious conversation in this session:\n")
	for _, msg := range messages {
		role := "Assistant"
		if msg.Role == model.RoleUser {
			role = "User"
		}
		content := msg.Content
		if truncate {
			if runes := []rune(content); len(runes) > transcriptCharBudget {
				content = string(runes[:transcriptCharBudget]) + "..."
			}
		}
		sb.WriteString(role)
		sb.WriteString(": ")
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}
	if truncate {
		sb.WriteString("\nBased on the conversation above, continue helping the user with their studies.\n")
	}
	return sb.String()
}

// Chat 组装纯文本聊天指令
func Chat(transcript, message string) string {
	task := "User's current message: " + message
	return personaHead + checklistChat +
		fmt.Sprintf(formatExample, "understand this topic") +
		transcript + "\n\n" + task + closing
}

// TextUpload 组装文本类上传的指令，抽取出的内容直接内嵌
// 提供自定义指令时按指令处理，否则默认总结
func TextUpload(transcript, fileName, content, custom string) string {
	var task string
	if custom != "" {
		task = fmt.Sprintf("The user has uploaded a file titled \"%s\" with the following specific instructions:\n\n\"%s\"\n\nFile content:\n%s\n\nPlease respond according to the user's instructions above.",
			fileName, custom, content)
	} else {
		task = fmt.Sprintf("Please summarize the following content from the file \"%s\":\n\n%s", fileName, content)
	}
	return uploadPrompt(transcript, task, false)
}

// Multimodal 组装 PDF/音频上传的指令，文件本体由调度器随指令一并提交
func Multimodal(transcript, fileName string, audio bool, custom string) string {
	fileDesc := "PDF document"
	taskDesc := "analyze and summarize the content of this"
	reminder := ""
	if audio {
		fileDesc = "audio file"
		taskDesc = "transcribe and summarize the complete content of this"
		reminder = "Make sure to process the complete audio from beginning to end."
	}

	var task string
	if custom != "" {
		task = fmt.Sprintf("The user has uploaded a %s titled \"%s\" with the following specific instructions:\n\n\"%s\"\n\nPlease process the file content and respond according to these instructions.",
			fileDesc, fileName, custom)
	} else {
		task = fmt.Sprintf("Please %s %s titled \"%s\". %s", taskDesc, fileDesc, fileName, reminder)
	}
	return uploadPrompt(transcript, task, audio)
}

// uploadPrompt 上传通道的公共组装
func uploadPrompt(transcript, task string, audio bool) string {
	checklist := checklistUpload
	if audio {
		checklist += checklistAudio
	}
	return personaHead + checklist +
		fmt.Sprintf(formatExample, "with this") +
		transcript + "\n\n" + task + closing
}
