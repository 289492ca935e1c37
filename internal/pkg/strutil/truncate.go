/*
 * @Description: 字符串截断与 slug 生成
 * @Author: 安知鱼
 * @Date: 2025-08-08 16:10:53
 * @LastEditTime: 2026-10-14 12:33:15
 * @LastEditors: 安知鱼
 */
package strutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Truncate 按字符数截断 UTF-8 字符串，超出时追加省略号
func Truncate(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsSlug 判断 s 是否为合法 slug：小写字母、数字，以单个连字符分隔
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify 由标题生成 slug，非 ASCII 字母数字的字符均视为分隔符
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if r == '\'' {
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
