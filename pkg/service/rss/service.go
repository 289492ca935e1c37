/*
 * @Description: 博客文章 RSS Feed
 * @Author: 安知鱼
 * @Date: 2025-09-30 00:00:00
 * @LastEditTime: 2026-10-14 15:06:54
 * @LastEditors: 安知鱼
 */
package rss

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/parser"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/strutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
)

// Service RSS 服务接口
type Service interface {
	// GenerateFeed 生成 RSS feed
	GenerateFeed(ctx context.Context, opts *FeedOptions) (*Feed, error)
	// GenerateXML 生成 RSS XML 字符串
	GenerateXML(feed *Feed) string
	// InvalidateCache 清除 RSS 缓存
	InvalidateCache(ctx context.Context) error
}

type service struct {
	pageSvc  page.Service
	cacheSvc utility.CacheService
	siteName string
}

// NewService 创建 RSS 服务
func NewService(pageSvc page.Service, cacheSvc utility.CacheService, siteName string) Service {
	return &service{
		pageSvc:  pageSvc,
		cacheSvc: cacheSvc,
		siteName: siteName,
	}
}

const (
	rssCacheKey = "rss:feed:latest"
	rssCacheTTL = time.Hour
)

// GenerateFeed 生成 RSS feed（支持缓存）
func (s *service) GenerateFeed(ctx context.Context, opts *FeedOptions) (*Feed, error) {
	if cachedData, err := s.cacheSvc.Get(ctx, rssCacheKey); err == nil && cachedData != "" {
		var feed Feed
		if err := json.Unmarshal([]byte(cachedData), &feed); err == nil {
			return &feed, nil
		}
	}

	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.BuildTime.IsZero() {
		opts.BuildTime = time.Now()
	}
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")

	posts, err := s.pageSvc.LatestPosts(ctx, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("获取博客文章失败: %w", err)
	}

	feed := &Feed{
		Title:       s.siteName,
		Link:        baseURL,
		Description: s.siteName + " Blog",
		BuiltAt:     opts.BuildTime.UTC(),
		Items:       make([]FeedItem, 0, len(posts)),
	}
	for _, entry := range posts {
		post, ok := entry.Content.(*model.BlogPost)
		if !ok {
			continue
		}
		feed.Items = append(feed.Items, buildItem(entry, post, baseURL))
	}

	if feedData, err := json.Marshal(feed); err == nil {
		_ = s.cacheSvc.Set(ctx, rssCacheKey, string(feedData), rssCacheTTL)
	}
	return feed, nil
}

func (s *service) InvalidateCache(ctx context.Context) error {
	return s.cacheSvc.Delete(ctx, rssCacheKey)
}

func buildItem(entry page.ListingEntry, post *model.BlogPost, baseURL string) FeedItem {
	published := entry.CreatedAt
	if entry.FirstPublishedAt != nil {
		published = *entry.FirstPublishedAt
	}
	return FeedItem{
		Title:       entry.Title,
		Link:        baseURL + entry.URL,
		Description: postDescription(post),
		Author:      post.Author,
		Categories:  post.TagList(),
		PublishedAt: published.UTC(),
	}
}

// postDescription 优先使用摘要，否则取第一个段落的纯文本
func postDescription(post *model.BlogPost) string {
	if post.Excerpt != "" {
		return post.Excerpt
	}
	for _, b := range post.Content {
		if b.Type == model.BlockParagraph && b.HTML != "" {
			return strutil.Truncate(parser.StripHTML(b.HTML), 200)
		}
	}
	return ""
}

// GenerateXML 生成 RSS XML 字符串
func (s *service) GenerateXML(feed *Feed) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	sb.WriteString("  <channel>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", xmlEscape(feed.Title))
	fmt.Fprintf(&sb, "    <link>%s</link>\n", xmlEscape(feed.Link))
	fmt.Fprintf(&sb, "    <description>%s</description>\n", xmlEscape(feed.Description))
	sb.WriteString("    <language>en</language>\n")
	fmt.Fprintf(&sb, "    <lastBuildDate>%s</lastBuildDate>\n", feed.BuiltAt.Format(time.RFC1123Z))
	fmt.Fprintf(&sb, "    <atom:link href=\"%s/rss.xml\" rel=\"self\" type=\"application/rss+xml\"/>\n", xmlEscape(feed.Link))

	for _, item := range feed.Items {
		sb.WriteString("    <item>\n")
		fmt.Fprintf(&sb, "      <title>%s</title>\n", xmlEscape(item.Title))
		fmt.Fprintf(&sb, "      <link>%s</link>\n", xmlEscape(item.Link))
		fmt.Fprintf(&sb, "      <guid isPermaLink=\"true\">%s</guid>\n", xmlEscape(item.Link))
		fmt.Fprintf(&sb, "      <pubDate>%s</pubDate>\n", item.PublishedAt.Format(time.RFC1123Z))
		if item.Description != "" {
			fmt.Fprintf(&sb, "      <description>%s</description>\n", xmlEscape(item.Description))
		}
		if item.Author != "" {
			fmt.Fprintf(&sb, "      <author>%s</author>\n", xmlEscape(item.Author))
		}
		for _, category := range item.Categories {
			fmt.Fprintf(&sb, "      <category>%s</category>\n", xmlEscape(category))
		}
		sb.WriteString("    </item>\n")
	}

	sb.WriteString("  </channel>\n")
	sb.WriteString("</rss>")
	return sb.String()
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
