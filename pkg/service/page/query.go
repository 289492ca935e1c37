package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/uri"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
)

const (
	renderCachePrefix = "page:render:"
	renderCacheTTL    = 10 * time.Minute
)

// ListingEntry 列表页中的一个子页面
type ListingEntry struct {
	*model.Document
	URL string `json:"url"`
}

// PublicPage 公开页面及其地址
type PublicPage struct {
	*model.Page
	URL string `json:"url"`
}

// Breadcrumb 面包屑导航中的一级
type Breadcrumb struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RenderContext 页面渲染上下文
type RenderContext struct {
	Page        *model.Page   `json:"page"`
	Content     model.Content `json:"content"`
	Listing     any           `json:"listing"`
	Breadcrumbs []Breadcrumb  `json:"breadcrumbs"`
}

// siteRoot 站点根页面为第一个首页，不存在时退回页面树根节点
func (s *service) siteRoot(ctx context.Context) (*model.Page, error) {
	home, err := s.repo.FindFirstByKind(ctx, model.KindHome)
	if err == nil {
		return home, nil
	}
	if !errors.Is(err, constant.ErrNotFound) {
		return nil, err
	}
	root, err := s.repo.FindRoot(ctx)
	if errors.Is(err, constant.ErrNotFound) {
		return nil, constant.ErrRootMissing
	}
	return root, err
}

func publicURL(p, site *model.Page) string {
	if strings.HasPrefix(p.URLPath, site.URLPath) {
		return "/" + strings.TrimPrefix(p.URLPath, site.URLPath)
	}
	return p.URLPath
}

func (s *service) PublicURL(ctx context.Context, p *model.Page) (string, error) {
	site, err := s.siteRoot(ctx)
	if err != nil {
		return "", err
	}
	return publicURL(p, site), nil
}

func (s *service) Resolve(ctx context.Context, publicPath string) (*model.Document, error) {
	site, err := s.siteRoot(ctx)
	if err != nil {
		return nil, err
	}
	urlPath := uri.NormalizePath(site.URLPath + strings.TrimPrefix(uri.NormalizePath(publicPath), "/"))
	doc, err := s.repo.FindByURLPath(ctx, urlPath)
	if err != nil {
		return nil, err
	}
	if !doc.Live || doc.Kind == model.KindRoot {
		return nil, constant.ErrNotFound
	}
	private, err := s.repo.FindPrivatePaths(ctx)
	if err != nil {
		return nil, err
	}
	if isRestricted(doc.Path, private) {
		return nil, constant.ErrNotFound
	}
	return doc, nil
}

func (s *service) Listing(ctx context.Context, doc *model.Document) (any, error) {
	switch c := doc.Content.(type) {
	case *model.BlogIndexPage:
		return s.liveDescendants(ctx, &doc.Page, model.KindBlogPost, 0)
	case *model.PortfolioIndexPage:
		return s.liveDescendants(ctx, &doc.Page, model.KindProject, 0)
	case *model.ServicesPage:
		return c.ServiceItems, nil
	case *model.TeamPage:
		return c.TeamMembers, nil
	}
	return nil, nil
}

// liveDescendants 返回已发布且未受限的子孙页面，按首次发布时间倒序
func (s *service) liveDescendants(ctx context.Context, ancestor *model.Page, kind model.PageKind, limit int) ([]ListingEntry, error) {
	docs, err := s.repo.FindDescendants(ctx, ancestor.Path, repository.DescendantQuery{Kind: kind, LiveOnly: true})
	if err != nil {
		return nil, err
	}
	private, err := s.repo.FindPrivatePaths(ctx)
	if err != nil {
		return nil, err
	}
	site, err := s.siteRoot(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ListingEntry, 0, len(docs))
	for _, d := range docs {
		if isRestricted(d.Path, private) {
			continue
		}
		entries = append(entries, ListingEntry{Document: d, URL: publicURL(&d.Page, site)})
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}

func (s *service) LatestPosts(ctx context.Context, limit int) ([]ListingEntry, error) {
	root, err := s.repo.FindRoot(ctx)
	if err != nil {
		return nil, err
	}
	return s.liveDescendants(ctx, root, model.KindBlogPost, limit)
}

func (s *service) PublicPages(ctx context.Context) ([]PublicPage, error) {
	site, err := s.siteRoot(ctx)
	if err != nil {
		return nil, err
	}
	live, err := s.repo.FindLive(ctx)
	if err != nil {
		return nil, err
	}
	private, err := s.repo.FindPrivatePaths(ctx)
	if err != nil {
		return nil, err
	}
	pages := make([]PublicPage, 0, len(live))
	for _, p := range live {
		if p.Kind == model.KindRoot || isRestricted(p.Path, private) {
			continue
		}
		if p.ID != site.ID && !p.IsDescendantOf(site) {
			continue
		}
		pages = append(pages, PublicPage{Page: p, URL: publicURL(p, site)})
	}
	return pages, nil
}

func (s *service) RenderContext(ctx context.Context, publicPath string) ([]byte, error) {
	key := renderCachePrefix + uri.NormalizePath(publicPath)
	if cached, err := s.cacheSvc.Get(ctx, key); err == nil && cached != "" {
		return []byte(cached), nil
	}

	doc, err := s.Resolve(ctx, publicPath)
	if err != nil {
		return nil, err
	}
	listing, err := s.Listing(ctx, doc)
	if err != nil {
		return nil, err
	}
	crumbs, err := s.breadcrumbs(ctx, &doc.Page)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(RenderContext{
		Page:        &doc.Page,
		Content:     doc.Content,
		Listing:     listing,
		Breadcrumbs: crumbs,
	})
	if err != nil {
		return nil, fmt.Errorf("序列化渲染上下文失败: %w", err)
	}
	_ = s.cacheSvc.Set(ctx, key, string(data), renderCacheTTL)
	return data, nil
}

// breadcrumbs 从站点根到当前页面的导航路径
func (s *service) breadcrumbs(ctx context.Context, p *model.Page) ([]Breadcrumb, error) {
	site, err := s.siteRoot(ctx)
	if err != nil {
		return nil, err
	}
	ancestors, err := s.repo.FindByPaths(ctx, p.AncestorPaths())
	if err != nil {
		return nil, err
	}
	crumbs := make([]Breadcrumb, 0, len(ancestors)+1)
	for _, a := range append(ancestors, p) {
		if a.ID != site.ID && !a.IsDescendantOf(site) {
			continue
		}
		crumbs = append(crumbs, Breadcrumb{Title: a.Title, URL: publicURL(a, site)})
	}
	return crumbs, nil
}

func (s *service) InvalidateRenderCache(ctx context.Context) error {
	_, err := s.cacheSvc.DeletePattern(ctx, renderCachePrefix+"*")
	return err
}
