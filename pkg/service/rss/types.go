/*
 * @Description: RSS Feed 类型定义
 * @Author: 安知鱼
 * @Date: 2025-09-30 00:00:00
 * @LastEditTime: 2026-10-14 18:20:44
 * @LastEditors: 安知鱼
 */
package rss

import "time"

// defaultLimit 未指定数量时输出的文章数
const defaultLimit = 20

// FeedItem 一篇博客文章
type FeedItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Categories  []string  `json:"categories"`
	PublishedAt time.Time `json:"published_at"`
}

// Feed 博客订阅源，link 同时作为 guid
type Feed struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Description string     `json:"description"`
	BuiltAt     time.Time  `json:"built_at"`
	Items       []FeedItem `json:"items"`
}

// FeedOptions 生成选项
type FeedOptions struct {
	Limit     int
	BaseURL   string
	BuildTime time.Time
}
