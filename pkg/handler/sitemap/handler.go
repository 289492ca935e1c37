/*
 * @Description: 站点地图处理器
 * @Author: 安知鱼
 * @Date: 2025-09-21 00:00:00
 * @LastEditTime: 2026-10-14 17:01:40
 * @LastEditors: 安知鱼
 */
package sitemap

import (
	"log"
	"net/http"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/sitemap"
	"github.com/gin-gonic/gin"
)

// Handler 站点地图处理器
type Handler struct {
	sitemapService sitemap.Service
}

// NewHandler 创建站点地图处理器
func NewHandler(sitemapService sitemap.Service) *Handler {
	return &Handler{
		sitemapService: sitemapService,
	}
}

// GetSitemap 获取站点地图
// @Summary      获取站点地图
// @Description  获取所有已发布且公开页面的XML站点地图
// @Tags         辅助工具
// @Produce      xml
// @Success      200  {string}  string  "XML格式的站点地图"
// @Failure      500  {string}  string  "生成失败"
// @Router       /sitemap.xml [get]
func (h *Handler) GetSitemap(c *gin.Context) {
	xmlData, err := h.sitemapService.GenerateXML(c.Request.Context())
	if err != nil {
		log.Printf("[Sitemap] 生成站点地图失败: %v", err)
		c.String(http.StatusInternalServerError, "生成站点地图失败")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600") // 1小时缓存
	c.Header("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, "text/xml; charset=utf-8", xmlData)
}

// GetRobots 获取robots.txt
// @Summary      获取robots.txt
// @Description  获取搜索引擎爬虫规则文件
// @Tags         辅助工具
// @Produce      plain
// @Success      200  {string}  string  "robots.txt内容"
// @Failure      500  {string}  string  "生成失败"
// @Router       /robots.txt [get]
func (h *Handler) GetRobots(c *gin.Context) {
	robotsContent, err := h.sitemapService.GenerateRobots(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "生成robots.txt失败")
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "public, max-age=86400") // 24小时缓存

	c.String(http.StatusOK, robotsContent)
}
