/*
 * @Description: 公开页面路径的规范化
 * @Author: 安知鱼
 * @Date: 2025-06-25 16:11:37
 * @LastEditTime: 2026-10-14 12:36:44
 * @LastEditors: 安知鱼
 */
package uri

import (
	"path"
	"strings"
)

// NormalizePath 将请求路径规范为以 "/" 开头和结尾的形式，例如 "blog/post" -> "/blog/post/"
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = path.Clean("/" + p)
	if p == "/" {
		return p
	}
	return p + "/"
}

// Join 在父路径后追加一段 slug，结果以 "/" 结尾
func Join(parent, slug string) string {
	return NormalizePath(parent + "/" + slug)
}
