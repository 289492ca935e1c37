/*
 * @Description: RSS Feed 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-30 00:00:00
 * @LastEditTime: 2026-10-14 16:58:14
 * @LastEditors: 安知鱼
 */
package rss

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/rss"
	"github.com/gin-gonic/gin"
)

// Handler RSS 处理器
type Handler struct {
	rssService rss.Service
	siteURL    string
}

// NewHandler 创建 RSS 处理器，siteURL 为空时按请求推断
func NewHandler(rssService rss.Service, siteURL string) *Handler {
	return &Handler{
		rssService: rssService,
		siteURL:    strings.TrimRight(siteURL, "/"),
	}
}

// GetRSSFeed 获取 RSS feed
// @Summary      获取RSS订阅源
// @Description  获取最近 20 篇博客文章的RSS订阅源（XML格式）
// @Tags         辅助工具
// @Produce      xml
// @Success      200  {string}  string  "RSS XML内容"
// @Failure      500  {object}  response.Response  "生成RSS feed失败"
// @Router       /rss.xml [get]
func (h *Handler) GetRSSFeed(c *gin.Context) {
	opts := &rss.FeedOptions{
		Limit:     20,
		BaseURL:   h.getSiteURL(c),
		BuildTime: time.Now(),
	}

	feed, err := h.rssService.GenerateFeed(c.Request.Context(), opts)
	if err != nil {
		log.Printf("[RSS Handler] 生成 RSS feed 失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, "生成RSS feed失败")
		return
	}

	xmlContent := h.rssService.GenerateXML(feed)

	c.Header("Content-Type", "text/xml; charset=utf-8")
	c.Header("Cache-Control", "public, max-age=3600") // 缓存1小时
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Last-Modified", time.Now().UTC().Format(http.TimeFormat))

	c.String(http.StatusOK, xmlContent)
}

// getSiteURL 获取站点 URL
func (h *Handler) getSiteURL(c *gin.Context) string {
	if h.siteURL != "" {
		return h.siteURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	// 优先使用 X-Forwarded-Proto
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := c.Request.Host
	return fmt.Sprintf("%s://%s", scheme, host)
}
