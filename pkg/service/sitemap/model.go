/*
 * @Description: 站点地图数据模型
 * @Author: 安知鱼
 * @Date: 2025-09-21 00:00:00
 * @LastEditTime: 2026-10-14 18:12:05
 * @LastEditors: 安知鱼
 */
package sitemap

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
)

const xmlNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const lastModLayout = "2006-01-02T15:04:05-07:00"

// URLSet 站点地图根元素
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL 站点地图中的一个页面
type URL struct {
	Location     string  `xml:"loc"`
	LastModified string  `xml:"lastmod,omitempty"`
	ChangeFreq   string  `xml:"changefreq,omitempty"`
	Priority     float32 `xml:"priority,omitempty"`
}

// ChangeFrequency 页面的预期更新频率
type ChangeFrequency string

const (
	ChangeFreqDaily   ChangeFrequency = "daily"
	ChangeFreqWeekly  ChangeFrequency = "weekly"
	ChangeFreqMonthly ChangeFrequency = "monthly"
)

// entryFor 把公开页面转换为站点地图条目，优先使用最近发布时间
func entryFor(baseURL string, p page.PublicPage) URL {
	lastMod := p.UpdatedAt
	if p.LastPublishedAt != nil {
		lastMod = *p.LastPublishedAt
	}
	return URL{
		Location:     baseURL + p.URL,
		LastModified: lastMod.In(time.UTC).Format(lastModLayout),
		ChangeFreq:   string(changeFreqFor(p.Kind)),
		Priority:     priorityFor(p.URL),
	}
}

// changeFreqFor 列表页按天，文章与项目按周
func changeFreqFor(kind model.PageKind) ChangeFrequency {
	switch kind {
	case model.KindHome, model.KindBlogIndex:
		return ChangeFreqDaily
	case model.KindBlogPost, model.KindBlogPage, model.KindPortfolioIndex:
		return ChangeFreqWeekly
	}
	return ChangeFreqMonthly
}

// priorityFor 首页 1.0，每深一层减 0.2，最低 0.4
func priorityFor(url string) float32 {
	if url == "/" {
		return 1.0
	}
	depth := strings.Count(strings.Trim(url, "/"), "/") + 1
	p := 1.0 - 0.2*float32(depth)
	if p < 0.4 {
		return 0.4
	}
	return p
}
