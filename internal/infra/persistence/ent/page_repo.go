package ent

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	pagesTable     = "pages"
	pageItemsTable = "page_items"
)

var pageColumns = []string{
	"id", "kind", "parent_id", "depth", "path", "url_path", "slug", "title", "seo_title",
	"search_description", "live", "private", "first_published_at", "last_published_at",
	"go_live_at", "created_at", "updated_at",
}

var pageDocumentColumns = append(append([]string{}, pageColumns...), "content")

// pageRepo 页面树仓库，内容文档存于 pages.content，子集合存于 page_items
type pageRepo struct {
	sqlBase
}

// NewPageRepo 创建页面仓库，exec 可以是 *sql.DB 或 *sql.Tx
func NewPageRepo(exec executor, dbDialect string) repository.PageRepository {
	return &pageRepo{sqlBase{exec: exec, dialect: dbDialect}}
}

func (r *pageRepo) Create(ctx context.Context, doc *model.Document) error {
	content, items, err := encodeContent(doc.Content)
	if err != nil {
		return err
	}
	now := time.Now()
	doc.CreatedAt, doc.UpdatedAt = now, now

	var parentID any
	if doc.ParentID != nil {
		parentID = *doc.ParentID
	}
	ib := r.builder().Insert(pagesTable).
		Columns("kind", "parent_id", "depth", "path", "url_path", "slug", "title", "seo_title",
			"search_description", "live", "private", "first_published_at", "last_published_at",
			"go_live_at", "content", "created_at", "updated_at").
		Values(string(doc.Kind), parentID, doc.Depth, doc.Path, doc.URLPath, doc.Slug, doc.Title,
			doc.SEOTitle, doc.SearchDescription, doc.Live, doc.Private,
			r.nullTimeArg(doc.FirstPublishedAt), r.nullTimeArg(doc.LastPublishedAt),
			r.nullTimeArg(doc.GoLiveAt), string(content), r.timeArg(now), r.timeArg(now))
	id, err := r.insert(ctx, ib)
	if err != nil {
		return fmt.Errorf("创建页面失败: %w", err)
	}
	doc.ID = id
	return r.writeItems(ctx, id, nil, items)
}

func (r *pageRepo) Save(ctx context.Context, doc *model.Document) error {
	content, items, err := encodeContent(doc.Content)
	if err != nil {
		return err
	}
	if err := r.updateMeta(ctx, &doc.Page, map[string]any{"content": string(content)}); err != nil {
		return err
	}
	if _, err := r.execQuery(ctx, r.builder().Delete(pageItemsTable).
		Where(entsql.EQ("page_id", doc.ID))); err != nil {
		return fmt.Errorf("清理页面条目失败: %w", err)
	}
	return r.writeItems(ctx, doc.ID, nil, items)
}

func (r *pageRepo) UpdateMeta(ctx context.Context, page *model.Page) error {
	return r.updateMeta(ctx, page, nil)
}

func (r *pageRepo) updateMeta(ctx context.Context, page *model.Page, extra map[string]any) error {
	page.UpdatedAt = time.Now()
	ub := r.builder().Update(pagesTable).
		Set("url_path", page.URLPath).
		Set("slug", page.Slug).
		Set("title", page.Title).
		Set("seo_title", page.SEOTitle).
		Set("search_description", page.SearchDescription).
		Set("live", page.Live).
		Set("private", page.Private).
		Set("first_published_at", r.nullTimeArg(page.FirstPublishedAt)).
		Set("last_published_at", r.nullTimeArg(page.LastPublishedAt)).
		Set("go_live_at", r.nullTimeArg(page.GoLiveAt)).
		Set("updated_at", r.timeArg(page.UpdatedAt))
	for col, v := range extra {
		ub.Set(col, v)
	}
	n, err := r.execQuery(ctx, ub.Where(entsql.EQ("id", page.ID)))
	if err != nil {
		return fmt.Errorf("更新页面失败: %w", err)
	}
	if n == 0 {
		if _, err := r.FindMetaByID(ctx, page.ID); err != nil {
			return err
		}
	}
	return nil
}

// writeItems 按记录顺序写入条目，嵌套条目通过 parent_item_id 关联
func (r *pageRepo) writeItems(ctx context.Context, pageID uint, parentItemID *uint, records []model.ItemRecord) error {
	for _, rec := range records {
		var parent any
		if parentItemID != nil {
			parent = *parentItemID
		}
		ib := r.builder().Insert(pageItemsTable).
			Columns("page_id", "parent_item_id", "collection", "sort_order", "data").
			Values(pageID, parent, rec.Collection, rec.SortOrder, string(rec.Data))
		id, err := r.insert(ctx, ib)
		if err != nil {
			return fmt.Errorf("写入页面条目 %s 失败: %w", rec.Collection, err)
		}
		if len(rec.Children) > 0 {
			if err := r.writeItems(ctx, pageID, &id, rec.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *pageRepo) FindByID(ctx context.Context, id uint) (*model.Document, error) {
	return r.findDocument(ctx, entsql.EQ("id", id))
}

func (r *pageRepo) FindByURLPath(ctx context.Context, urlPath string) (*model.Document, error) {
	return r.findDocument(ctx, entsql.EQ("url_path", urlPath))
}

func (r *pageRepo) findDocument(ctx context.Context, pred *entsql.Predicate) (*model.Document, error) {
	query, args := r.builder().Select(pageDocumentColumns...).
		From(r.builder().Table(pagesTable)).
		Where(pred).
		OrderBy(entsql.Asc("path")).
		Limit(1).
		Query()
	page, content, err := scanPage(r.exec.QueryRowContext(ctx, query, args...), true)
	if err != nil {
		return nil, notFound(err)
	}
	return r.decodeDocument(ctx, page, content)
}

func (r *pageRepo) FindMetaByID(ctx context.Context, id uint) (*model.Page, error) {
	return r.findOne(ctx, r.pageSelector().Where(entsql.EQ("id", id)))
}

func (r *pageRepo) FindRoot(ctx context.Context) (*model.Page, error) {
	return r.findOne(ctx, r.pageSelector().
		Where(entsql.IsNull("parent_id")).
		Where(entsql.EQ("depth", 1)).
		OrderBy(entsql.Asc("path")).
		Limit(1))
}

func (r *pageRepo) FindFirstByKind(ctx context.Context, kind model.PageKind) (*model.Page, error) {
	return r.findOne(ctx, r.pageSelector().
		Where(entsql.EQ("kind", string(kind))).
		OrderBy(entsql.Asc("path")).
		Limit(1))
}

func (r *pageRepo) FindChildren(ctx context.Context, parentID uint) ([]*model.Page, error) {
	return r.findMany(ctx, r.pageSelector().
		Where(entsql.EQ("parent_id", parentID)).
		OrderBy(entsql.Asc("path")))
}

func (r *pageRepo) FindDescendants(ctx context.Context, path string, q repository.DescendantQuery) ([]*model.Document, error) {
	sel := r.builder().Select(pageDocumentColumns...).
		From(r.builder().Table(pagesTable)).
		Where(entsql.HasPrefix("path", path)).
		Where(entsql.NEQ("path", path))
	if q.Kind != "" {
		sel.Where(entsql.EQ("kind", string(q.Kind)))
	}
	if q.LiveOnly {
		sel.Where(entsql.EQ("live", true))
	}
	sel.OrderBy(entsql.Desc("first_published_at"), entsql.Desc("id"))
	if q.Limit > 0 {
		sel.Limit(q.Limit)
	}

	query, args := sel.Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询子页面失败: %w", err)
	}
	type row struct {
		page    *model.Page
		content []byte
	}
	var found []row
	for rows.Next() {
		page, content, err := scanPage(rows, true)
		if err != nil {
			rows.Close()
			return nil, err
		}
		found = append(found, row{page, content})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 读取条目前先关闭 rows，保证在单连接事务中也能继续查询
	docs := make([]*model.Document, 0, len(found))
	for _, f := range found {
		doc, err := r.decodeDocument(ctx, f.page, f.content)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *pageRepo) FindByPaths(ctx context.Context, paths []string) ([]*model.Page, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, r.pageSelector().
		Where(entsql.In("path", stringArgs(paths)...)).
		OrderBy(entsql.Asc("path")))
}

func (r *pageRepo) FindLive(ctx context.Context) ([]*model.Page, error) {
	return r.findMany(ctx, r.pageSelector().
		Where(entsql.EQ("live", true)).
		OrderBy(entsql.Asc("path")))
}

func (r *pageRepo) FindPrivatePaths(ctx context.Context) ([]string, error) {
	query, args := r.builder().Select("path").
		From(r.builder().Table(pagesTable)).
		Where(entsql.EQ("private", true)).
		Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询受限页面失败: %w", err)
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func (r *pageRepo) FindDueForPublish(ctx context.Context, now time.Time) ([]*model.Page, error) {
	return r.findMany(ctx, r.pageSelector().
		Where(entsql.NotNull("go_live_at")).
		Where(entsql.LTE("go_live_at", r.timeArg(now))).
		OrderBy(entsql.Asc("go_live_at"), entsql.Asc("id")))
}

func (r *pageRepo) CountByKind(ctx context.Context, kind model.PageKind) (int, error) {
	return r.count(ctx, r.builder().Select(entsql.Count("*")).
		From(r.builder().Table(pagesTable)).
		Where(entsql.EQ("kind", string(kind))))
}

func (r *pageRepo) SlugExists(ctx context.Context, parentID uint, slug string, excludeID uint) (bool, error) {
	sel := r.builder().Select(entsql.Count("*")).
		From(r.builder().Table(pagesTable)).
		Where(entsql.EQ("parent_id", parentID)).
		Where(entsql.EQ("slug", slug))
	if excludeID != 0 {
		sel.Where(entsql.NEQ("id", excludeID))
	}
	n, err := r.count(ctx, sel)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *pageRepo) MaxChildPath(ctx context.Context, parentPath string) (string, error) {
	query, args := r.builder().Select("path").
		From(r.builder().Table(pagesTable)).
		Where(entsql.HasPrefix("path", parentPath)).
		Where(entsql.EQ("depth", len(parentPath)/model.PathStepLength+1)).
		OrderBy(entsql.Desc("path")).
		Limit(1).
		Query()
	var path string
	err := r.exec.QueryRowContext(ctx, query, args...).Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return path, err
}

func (r *pageRepo) ReplaceURLPrefix(ctx context.Context, path, oldPrefix, newPrefix string) (int, error) {
	query, args := r.builder().Select("id", "url_path").
		From(r.builder().Table(pagesTable)).
		Where(entsql.HasPrefix("path", path)).
		Where(entsql.NEQ("path", path)).
		Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("查询子页面失败: %w", err)
	}
	updates := map[uint]string{}
	for rows.Next() {
		var id uint
		var urlPath string
		if err := rows.Scan(&id, &urlPath); err != nil {
			rows.Close()
			return 0, err
		}
		if strings.HasPrefix(urlPath, oldPrefix) {
			updates[id] = newPrefix + strings.TrimPrefix(urlPath, oldPrefix)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for id, urlPath := range updates {
		if _, err := r.execQuery(ctx, r.builder().Update(pagesTable).
			Set("url_path", urlPath).
			Where(entsql.EQ("id", id))); err != nil {
			return 0, fmt.Errorf("更新子页面路径失败: %w", err)
		}
	}
	return len(updates), nil
}

func (r *pageRepo) DeleteSubtree(ctx context.Context, path string) (int, error) {
	query, args := r.builder().Select("id").
		From(r.builder().Table(pagesTable)).
		Where(entsql.HasPrefix("path", path)).
		Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	var ids []uint
	for rows.Next() {
		var id uint
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if _, err := r.execQuery(ctx, r.builder().Delete(pageItemsTable).
		Where(entsql.In("page_id", uintArgs(ids)...))); err != nil {
		return 0, fmt.Errorf("删除页面条目失败: %w", err)
	}
	// 级联删除的子孙页面不计入 RowsAffected，按查询到的 ID 计数
	if _, err := r.execQuery(ctx, r.builder().Delete(pagesTable).
		Where(entsql.In("id", uintArgs(ids)...))); err != nil {
		return 0, fmt.Errorf("删除页面失败: %w", err)
	}
	return len(ids), nil
}

func (r *pageRepo) pageSelector() *entsql.Selector {
	return r.builder().Select(pageColumns...).From(r.builder().Table(pagesTable))
}

func (r *pageRepo) findOne(ctx context.Context, sel *entsql.Selector) (*model.Page, error) {
	query, args := sel.Query()
	page, _, err := scanPage(r.exec.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		return nil, notFound(err)
	}
	return page, nil
}

func (r *pageRepo) findMany(ctx context.Context, sel *entsql.Selector) ([]*model.Page, error) {
	query, args := sel.Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询页面失败: %w", err)
	}
	defer rows.Close()
	pages := make([]*model.Page, 0)
	for rows.Next() {
		page, _, err := scanPage(rows, false)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// loadItems 读取页面的全部条目并还原嵌套关系，顺序为 sort_order, id
func (r *pageRepo) loadItems(ctx context.Context, pageID uint) ([]model.ItemRecord, error) {
	query, args := r.builder().Select("id", "parent_item_id", "collection", "sort_order", "data").
		From(r.builder().Table(pageItemsTable)).
		Where(entsql.EQ("page_id", pageID)).
		OrderBy(entsql.Asc("sort_order"), entsql.Asc("id")).
		Query()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询页面条目失败: %w", err)
	}
	defer rows.Close()

	type node struct {
		rec      model.ItemRecord
		parent   uint
		children []uint
	}
	nodes := map[uint]*node{}
	var order, roots []uint
	for rows.Next() {
		var id uint
		var parent sql.NullInt64
		var data string
		n := &node{}
		if err := rows.Scan(&id, &parent, &n.rec.Collection, &n.rec.SortOrder, &data); err != nil {
			return nil, err
		}
		n.rec.Data = json.RawMessage(data)
		if parent.Valid {
			n.parent = uint(parent.Int64)
		}
		nodes[id] = n
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, id := range order {
		n := nodes[id]
		if p, ok := nodes[n.parent]; ok && n.parent != 0 {
			p.children = append(p.children, id)
		} else {
			roots = append(roots, id)
		}
	}

	var build func(ids []uint) []model.ItemRecord
	build = func(ids []uint) []model.ItemRecord {
		out := make([]model.ItemRecord, 0, len(ids))
		for _, id := range ids {
			n := nodes[id]
			rec := n.rec
			rec.Children = build(n.children)
			out = append(out, rec)
		}
		return out
	}
	return build(roots), nil
}

func (r *pageRepo) decodeDocument(ctx context.Context, page *model.Page, content []byte) (*model.Document, error) {
	c, ok := model.NewContent(page.Kind)
	if !ok {
		return nil, fmt.Errorf("未知的页面类型: %s", page.Kind)
	}
	if len(content) > 0 {
		if err := json.Unmarshal(content, c.Fields()); err != nil {
			return nil, fmt.Errorf("解析页面 %d 内容失败: %w", page.ID, err)
		}
	}
	items, err := r.loadItems(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	if err := c.SetItems(items); err != nil {
		return nil, err
	}
	return &model.Document{Page: *page, Content: c}, nil
}

func encodeContent(c model.Content) ([]byte, []model.ItemRecord, error) {
	content, err := json.Marshal(c.Fields())
	if err != nil {
		return nil, nil, fmt.Errorf("序列化页面内容失败: %w", err)
	}
	items, err := c.Items()
	if err != nil {
		return nil, nil, err
	}
	return content, items, nil
}

func scanPage(row rowScanner, withContent bool) (*model.Page, []byte, error) {
	var p model.Page
	var kind string
	var parentID sql.NullInt64
	var firstPublished, lastPublished, goLive, createdAt, updatedAt nullTime
	dest := []any{&p.ID, &kind, &parentID, &p.Depth, &p.Path, &p.URLPath, &p.Slug, &p.Title,
		&p.SEOTitle, &p.SearchDescription, &p.Live, &p.Private, &firstPublished, &lastPublished,
		&goLive, &createdAt, &updatedAt}
	var content string
	if withContent {
		dest = append(dest, &content)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, nil, err
	}
	p.Kind = model.PageKind(kind)
	if parentID.Valid {
		id := uint(parentID.Int64)
		p.ParentID = &id
	}
	p.FirstPublishedAt = firstPublished.ptr()
	p.LastPublishedAt = lastPublished.ptr()
	p.GoLiveAt = goLive.ptr()
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, []byte(content), nil
}
