/*
 * @Description: 站点地图服务
 * @Author: 安知鱼
 * @Date: 2025-09-21 00:00:00
 * @LastEditTime: 2026-10-14 14:58:40
 * @LastEditors: 安知鱼
 */
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
)

// Service 站点地图服务接口
type Service interface {
	// GenerateSitemap 生成包含所有已发布且未受限页面的站点地图
	GenerateSitemap(ctx context.Context) (*URLSet, error)
	// GenerateXML 生成站点地图 XML
	GenerateXML(ctx context.Context) ([]byte, error)
	// GenerateRobots 生成robots.txt
	GenerateRobots(ctx context.Context) (string, error)
}

type service struct {
	pageSvc page.Service
	baseURL string
}

// NewService 创建站点地图服务，baseURL 为站点访问地址
func NewService(pageSvc page.Service, baseURL string) Service {
	return &service{
		pageSvc: pageSvc,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *service) GenerateSitemap(ctx context.Context) (*URLSet, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("站点URL未配置")
	}
	pages, err := s.pageSvc.PublicPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取公开页面失败: %w", err)
	}

	set := &URLSet{Xmlns: xmlNamespace, URLs: make([]URL, 0, len(pages))}
	for _, p := range pages {
		set.URLs = append(set.URLs, entryFor(s.baseURL, p))
	}
	return set, nil
}

func (s *service) GenerateXML(ctx context.Context) ([]byte, error) {
	set, err := s.GenerateSitemap(ctx)
	if err != nil {
		return nil, err
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("生成站点地图XML失败: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func (s *service) GenerateRobots(ctx context.Context) (string, error) {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	sb.WriteString("Allow: /\n")
	sb.WriteString("Disallow: /api/\n")
	if s.baseURL != "" {
		sb.WriteString("\nSitemap: " + s.baseURL + "/sitemap.xml\n")
	}
	return sb.String(), nil
}
