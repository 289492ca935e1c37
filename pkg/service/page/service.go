/*
 * @Description: 页面树服务：创建、更新、发布、删除
 * @Author: 安知鱼
 * @Date: 2025-07-12 17:03:29
 * @LastEditTime: 2026-10-14 13:52:16
 * @LastEditors: 安知鱼
 */
package page

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/event"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/parser"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/strutil"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/uri"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/utils"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
)

// Service 页面树服务接口
type Service interface {
	// EnsureRoot 根节点不存在时创建
	EnsureRoot(ctx context.Context) (*model.Page, error)

	// Create 在 parentID 下创建页面，content 为 nil 时不合法
	Create(ctx context.Context, parentID uint, content model.Content, opts model.PageOptions) (*model.Document, error)
	// Update 替换页面内容与全部条目；content 为 nil 时只更新基础字段
	Update(ctx context.Context, id uint, content model.Content, opts model.PageOptions) (*model.Document, error)
	// Delete 删除页面及其子树，返回删除的页面数
	Delete(ctx context.Context, id uint) (int, error)

	Publish(ctx context.Context, id uint) (*model.Page, error)
	Unpublish(ctx context.Context, id uint) (*model.Page, error)
	// SchedulePublish 设置定时发布时间，时间已到时立即发布
	SchedulePublish(ctx context.Context, id uint, at time.Time) (*model.Page, error)
	// PublishDue 发布所有到期的定时页面，返回发布数量
	PublishDue(ctx context.Context, now time.Time) (int, error)
	SetPrivate(ctx context.Context, id uint, private bool) (*model.Page, error)

	Get(ctx context.Context, id uint) (*model.Document, error)
	Children(ctx context.Context, id uint) ([]*model.Page, error)
	// Resolve 按公开路径查找已发布且未受限的页面
	Resolve(ctx context.Context, publicPath string) (*model.Document, error)
	// Listing 返回列表类页面展示的子内容
	Listing(ctx context.Context, doc *model.Document) (any, error)
	// RenderContext 返回页面渲染上下文的 JSON，按路径缓存
	RenderContext(ctx context.Context, publicPath string) ([]byte, error)
	// InvalidateRenderCache 清除所有页面渲染缓存
	InvalidateRenderCache(ctx context.Context) error

	// PublicPages 返回所有已发布且未受限的站点页面及其公开地址
	PublicPages(ctx context.Context) ([]PublicPage, error)
	// LatestPosts 返回最近发布的博客文章
	LatestPosts(ctx context.Context, limit int) ([]ListingEntry, error)
	// PublicURL 返回页面的公开地址
	PublicURL(ctx context.Context, p *model.Page) (string, error)
}

type service struct {
	repo     repository.PageRepository
	txMgr    repository.TransactionManager
	cacheSvc utility.CacheService
	eventBus *event.EventBus
	now      func() time.Time
}

// NewService 创建页面服务
func NewService(
	repo repository.PageRepository,
	txMgr repository.TransactionManager,
	cacheSvc utility.CacheService,
	eventBus *event.EventBus,
) Service {
	return &service{
		repo:     repo,
		txMgr:    txMgr,
		cacheSvc: cacheSvc,
		eventBus: eventBus,
		now:      time.Now,
	}
}

func (s *service) EnsureRoot(ctx context.Context) (*model.Page, error) {
	root, err := s.repo.FindRoot(ctx)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, constant.ErrNotFound) {
		return nil, err
	}
	doc := &model.Document{
		Page: model.Page{
			Kind:    model.KindRoot,
			Depth:   1,
			Path:    RootPath,
			URLPath: "/",
			Slug:    "root",
			Title:   "Root",
			Live:    true,
		},
		Content: model.NewRootPage(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("创建根页面失败: %w", err)
	}
	log.Println("✅ 已创建页面树根节点")
	return &doc.Page, nil
}

func (s *service) Create(ctx context.Context, parentID uint, content model.Content, opts model.PageOptions) (*model.Document, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: 缺少页面内容", constant.ErrBadRequest)
	}
	pt, ok := model.LookupPageType(content.Kind())
	if !ok || !pt.Creatable {
		return nil, fmt.Errorf("%w: 不支持的页面类型 %q", constant.ErrBadRequest, content.Kind())
	}
	if opts.Title == "" {
		return nil, fmt.Errorf("%w: 标题不能为空", constant.ErrBadRequest)
	}
	slug := opts.Slug
	if slug == "" {
		slug = strutil.Slugify(opts.Title)
	}
	if !strutil.IsSlug(slug) {
		return nil, fmt.Errorf("%w: %q", constant.ErrInvalidSlug, slug)
	}
	if err := s.prepareContent(content, opts.Markdown); err != nil {
		return nil, err
	}
	if d, ok := content.(model.PublishDater); ok {
		d.EnsurePublishDate(model.NewDate(utils.NowInSite()))
	}

	doc := &model.Document{
		Page: model.Page{
			Kind:              pt.Kind,
			Slug:              slug,
			Title:             opts.Title,
			SEOTitle:          opts.SEOTitle,
			SearchDescription: opts.SearchDescription,
		},
		Content: content,
	}
	if opts.Publish {
		s.markPublished(&doc.Page)
	}

	err := s.txMgr.Do(ctx, func(repos repository.Repositories) error {
		parent, err := repos.Page.FindMetaByID(ctx, parentID)
		if err != nil {
			return fmt.Errorf("父页面不存在: %w", err)
		}
		parentType, ok := model.LookupPageType(parent.Kind)
		if !ok || !parentType.AllowsSubpage(pt.Kind) || !pt.AllowsParent(parent.Kind) {
			return fmt.Errorf("%w: %s 下不能创建 %s", constant.ErrPageTypeNotAllowed, parent.Kind, pt.Kind)
		}
		if pt.MaxCount > 0 {
			n, err := repos.Page.CountByKind(ctx, pt.Kind)
			if err != nil {
				return err
			}
			if n >= pt.MaxCount {
				return fmt.Errorf("%w: %s 最多 %d 个", constant.ErrPageLimitReached, pt.Kind, pt.MaxCount)
			}
		}
		exists, err := repos.Page.SlugExists(ctx, parent.ID, slug, 0)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %q", constant.ErrSlugConflict, slug)
		}
		maxChild, err := repos.Page.MaxChildPath(ctx, parent.Path)
		if err != nil {
			return err
		}
		path, err := nextChildPath(parent.Path, maxChild)
		if err != nil {
			return err
		}

		doc.ParentID = &parent.ID
		doc.Depth = parent.Depth + 1
		doc.Path = path
		doc.URLPath = uri.Join(parent.URLPath, slug)
		return repos.Page.Create(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	s.changed(ctx, &doc.Page)
	return doc, nil
}

func (s *service) Update(ctx context.Context, id uint, content model.Content, opts model.PageOptions) (*model.Document, error) {
	if content != nil {
		if err := s.prepareContent(content, opts.Markdown); err != nil {
			return nil, err
		}
	}

	var doc *model.Document
	err := s.txMgr.Do(ctx, func(repos repository.Repositories) error {
		var err error
		doc, err = repos.Page.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if content != nil {
			if content.Kind() != doc.Kind {
				return fmt.Errorf("%w: 页面类型不能从 %s 改为 %s", constant.ErrBadRequest, doc.Kind, content.Kind())
			}
			if d, ok := content.(model.PublishDater); ok {
				d.EnsurePublishDate(model.NewDate(utils.NowInSite()))
			}
			doc.Content = content
		}
		if opts.Title != "" {
			doc.Title = opts.Title
		}
		if opts.SEOTitle != "" {
			doc.SEOTitle = opts.SEOTitle
		}
		if opts.SearchDescription != "" {
			doc.SearchDescription = opts.SearchDescription
		}
		if opts.Slug != "" && opts.Slug != doc.Slug {
			if err := s.renameSlug(ctx, repos.Page, &doc.Page, opts.Slug); err != nil {
				return err
			}
		}
		if opts.Publish {
			s.markPublished(&doc.Page)
		}
		return repos.Page.Save(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	s.changed(ctx, &doc.Page)
	return doc, nil
}

// renameSlug 修改 slug 并重写所有子孙页面的 url_path
func (s *service) renameSlug(ctx context.Context, repo repository.PageRepository, p *model.Page, slug string) error {
	if p.IsRoot() {
		return fmt.Errorf("%w: 根页面不能修改 slug", constant.ErrInvalidOperation)
	}
	if !strutil.IsSlug(slug) {
		return fmt.Errorf("%w: %q", constant.ErrInvalidSlug, slug)
	}
	exists, err := repo.SlugExists(ctx, *p.ParentID, slug, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %q", constant.ErrSlugConflict, slug)
	}
	parent, err := repo.FindMetaByID(ctx, *p.ParentID)
	if err != nil {
		return err
	}
	oldURL := p.URLPath
	newURL := uri.Join(parent.URLPath, slug)
	if _, err := repo.ReplaceURLPrefix(ctx, p.Path, oldURL, newURL); err != nil {
		return err
	}
	p.Slug = slug
	p.URLPath = newURL
	return nil
}

// prepareContent 转换并清理富文本字段，再校验内容
func (s *service) prepareContent(content model.Content, markdown bool) error {
	if markdown {
		if err := model.TransformRichText(content, parser.MarkdownToHTML); err != nil {
			return fmt.Errorf("%w: Markdown 转换失败: %v", constant.ErrBadRequest, err)
		}
	} else if err := model.TransformRichText(content, func(s string) (string, error) {
		return parser.SanitizeHTML(s), nil
	}); err != nil {
		return err
	}
	return model.ValidateContent(content)
}

func (s *service) Delete(ctx context.Context, id uint) (int, error) {
	var deleted *model.Page
	var n int
	err := s.txMgr.Do(ctx, func(repos repository.Repositories) error {
		p, err := repos.Page.FindMetaByID(ctx, id)
		if err != nil {
			return err
		}
		if p.IsRoot() {
			return fmt.Errorf("%w: 根页面不能删除", constant.ErrInvalidOperation)
		}
		deleted = p
		n, err = repos.Page.DeleteSubtree(ctx, p.Path)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.changed(ctx, deleted)
	return n, nil
}

func (s *service) Get(ctx context.Context, id uint) (*model.Document, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Children(ctx context.Context, id uint) ([]*model.Page, error) {
	if _, err := s.repo.FindMetaByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.FindChildren(ctx, id)
}

// changed 页面变化后清除渲染缓存并发布事件
func (s *service) changed(ctx context.Context, p *model.Page) {
	if err := s.InvalidateRenderCache(ctx); err != nil {
		log.Printf("[Page] 清除渲染缓存失败: %v", err)
	}
	if s.eventBus != nil {
		s.eventBus.Publish(event.PageChanged, event.PageChangedPayload{ID: p.ID, URLPath: p.URLPath})
	}
}
