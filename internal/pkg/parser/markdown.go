/*
 * @Description: 富文本字段的 Markdown 转换与 HTML 清理
 * @Author: 安知鱼
 * @Date: 2025-08-08 15:57:23
 * @LastEditTime: 2026-10-14 12:31:40
 * @LastEditors: 安知鱼
 */
package parser

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var mdParser goldmark.Markdown
var policy *bluemonday.Policy

func init() {
	mdParser = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,         // 支持 GitHub Flavored Markdown
			extension.Typographer, // 美化排版
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(), // 原始 HTML 交给 bluemonday 清理
		),
	)

	// 富文本字段统一使用 UGC 策略
	policy = bluemonday.UGCPolicy()
	// 服务列表页使用 Font Awesome 的 class
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("i", "span", "code")
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td")
}

// MarkdownToHTML 将 Markdown 字符串转换为安全的 HTML 字符串
func MarkdownToHTML(mdContent string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(mdContent), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}

// SanitizeHTML 清理富文本字段中的危险标签与属性
func SanitizeHTML(htmlContent string) string {
	return policy.Sanitize(htmlContent)
}
