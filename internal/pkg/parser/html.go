/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-08 16:10:36
 * @LastEditTime: 2026-10-14 12:32:02
 * @LastEditors: 安知鱼
 */
package parser

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTagsPolicy = bluemonday.StripTagsPolicy()

// StripHTML 去除所有标签并还原实体，连续空白折叠为一个空格，用于 RSS 摘要与 SEO 描述
func StripHTML(htmlContent string) string {
	text := html.UnescapeString(stripTagsPolicy.Sanitize(htmlContent))
	return strings.Join(strings.Fields(text), " ")
}
