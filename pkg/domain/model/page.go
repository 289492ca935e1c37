/*
 * @Description: 页面树基础模型
 * @Author: 安知鱼
 * @Date: 2025-07-12 16:20:11
 * @LastEditTime: 2026-10-14 10:40:02
 * @LastEditors: 安知鱼
 */
package model

import (
	"strings"
	"time"
)

// PageKind 页面类型标识
type PageKind string

const (
	KindRoot           PageKind = "root"
	KindHome           PageKind = "home"
	KindService        PageKind = "service"
	KindProject        PageKind = "project"
	KindBlogPage       PageKind = "blog_page"
	KindBlogIndex      PageKind = "blog_index"
	KindBlogPost       PageKind = "blog_post"
	KindAbout          PageKind = "about"
	KindContact        PageKind = "contact"
	KindServices       PageKind = "services"
	KindTeam           PageKind = "team"
	KindPortfolioIndex PageKind = "portfolio_index"
)

// PathStepLength 物化路径中每一层的字符数
const PathStepLength = 4

// Page 所有页面共享的树节点与发布状态
type Page struct {
	ID                uint       `json:"id"`
	Kind              PageKind   `json:"kind"`
	ParentID          *uint      `json:"parent_id"`
	Depth             int        `json:"depth"`
	Path              string     `json:"-"`
	URLPath           string     `json:"url_path"`
	Slug              string     `json:"slug"`
	Title             string     `json:"title"`
	SEOTitle          string     `json:"seo_title"`
	SearchDescription string     `json:"search_description"`
	Live              bool       `json:"live"`
	Private           bool       `json:"private"`
	FirstPublishedAt  *time.Time `json:"first_published_at"`
	LastPublishedAt   *time.Time `json:"last_published_at"`
	GoLiveAt          *time.Time `json:"go_live_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsRoot 是否为页面树根节点
func (p *Page) IsRoot() bool {
	return p.ParentID == nil
}

// IsDescendantOf 判断 p 是否位于 ancestor 的子树中（不包含自身）
func (p *Page) IsDescendantOf(ancestor *Page) bool {
	return len(p.Path) > len(ancestor.Path) && strings.HasPrefix(p.Path, ancestor.Path)
}

// AncestorPaths 返回从根到父节点的所有物化路径
func (p *Page) AncestorPaths() []string {
	var paths []string
	for l := PathStepLength; l < len(p.Path); l += PathStepLength {
		paths = append(paths, p.Path[:l])
	}
	return paths
}

// Document 页面及其具体类型内容
type Document struct {
	Page
	Content Content `json:"content"`
}

// PageOptions 创建或更新页面时的可选参数
type PageOptions struct {
	Title             string
	Slug              string
	SEOTitle          string
	SearchDescription string
	// Markdown 为 true 时，富文本字段先按 Markdown 转换为 HTML
	Markdown bool
	Publish  bool
}
