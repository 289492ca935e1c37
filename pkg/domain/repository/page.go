package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
)

// DescendantQuery 子树查询条件
type DescendantQuery struct {
	Kind model.PageKind
	// LiveOnly 只返回已发布的页面
	LiveOnly bool
	Limit    int
}

// PageRepository 页面树仓库接口
type PageRepository interface {
	BaseRepository[model.Document]

	// Save 更新页面基础字段、内容文档，并按切片顺序重写全部子条目
	Save(ctx context.Context, doc *model.Document) error

	// UpdateMeta 只更新页面基础字段（发布状态、可见性、slug 等），不触碰内容
	UpdateMeta(ctx context.Context, page *model.Page) error

	// FindMetaByID 只读取页面基础字段
	FindMetaByID(ctx context.Context, id uint) (*model.Page, error)

	// FindByURLPath 按 url_path 读取页面及内容
	FindByURLPath(ctx context.Context, urlPath string) (*model.Document, error)

	// FindRoot 返回深度为 1 的根节点
	FindRoot(ctx context.Context) (*model.Page, error)

	// FindFirstByKind 返回物化路径最靠前的指定类型页面
	FindFirstByKind(ctx context.Context, kind model.PageKind) (*model.Page, error)

	// FindChildren 按物化路径顺序返回直接子页面
	FindChildren(ctx context.Context, parentID uint) ([]*model.Page, error)

	// FindDescendants 返回 path 子树中满足条件的页面及内容，按首次发布时间倒序
	FindDescendants(ctx context.Context, path string, q DescendantQuery) ([]*model.Document, error)

	// FindByPaths 按物化路径批量读取，结果按路径排序
	FindByPaths(ctx context.Context, paths []string) ([]*model.Page, error)

	// FindLive 返回所有已发布页面，按路径排序
	FindLive(ctx context.Context) ([]*model.Page, error)

	// FindPrivatePaths 返回所有设置了访问限制的页面路径
	FindPrivatePaths(ctx context.Context) ([]string, error)

	// FindDueForPublish 返回 go_live_at 不晚于 now 的页面
	FindDueForPublish(ctx context.Context, now time.Time) ([]*model.Page, error)

	// CountByKind 统计指定类型的页面总数
	CountByKind(ctx context.Context, kind model.PageKind) (int, error)

	// SlugExists 判断同一父页面下是否已有该 slug，excludeID 为 0 表示不排除
	SlugExists(ctx context.Context, parentID uint, slug string, excludeID uint) (bool, error)

	// MaxChildPath 返回 parentPath 下一层中最大的物化路径，没有子页面时返回空字符串
	MaxChildPath(ctx context.Context, parentPath string) (string, error)

	// ReplaceURLPrefix 将 path 子树（不含自身）中 url_path 的 oldPrefix 前缀替换为 newPrefix
	ReplaceURLPrefix(ctx context.Context, path, oldPrefix, newPrefix string) (int, error)

	// DeleteSubtree 删除 path 子树中的所有页面及其条目，返回删除的页面数
	DeleteSubtree(ctx context.Context, path string) (int, error)
}
