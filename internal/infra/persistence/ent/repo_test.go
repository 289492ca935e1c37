package ent

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/infra/persistence/database"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entgo.io/ent/dialect"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, "sqlite"))
	return db
}

func createSubmission(t *testing.T, repo repository.ContactSubmissionRepository, s model.ContactSubmission) *model.ContactSubmission {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &s))
	require.NotZero(t, s.ID)
	return &s
}

func TestContactSubmissionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewContactSubmissionRepo(newTestDB(t), dialect.SQLite)

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	john := createSubmission(t, repo, model.ContactSubmission{
		Name: "John Smith", Email: "john@example.com", Service: "web_development",
		Message: "Need a new website", CreatedAt: base,
	})
	sarah := createSubmission(t, repo, model.ContactSubmission{
		Name: "Sarah Johnson", Email: "sarah@example.com", Service: "ai_automation",
		Message: "Chatbot project", CreatedAt: base.Add(24 * time.Hour),
	})
	createSubmission(t, repo, model.ContactSubmission{
		Name: "Ahmed Ali", Email: "ahmed@example.com", Service: "web_development",
		Message: "E-commerce", CreatedAt: base.Add(48 * time.Hour), IsResponded: true,
	})

	got, err := repo.FindByID(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", got.Name)
	assert.True(t, got.CreatedAt.Equal(base))
	assert.False(t, got.IsResponded)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, constant.ErrNotFound)

	byEmail, err := repo.FindByEmail(ctx, "sarah@example.com")
	require.NoError(t, err)
	assert.Equal(t, sarah.ID, byEmail.ID)

	pending := false
	after := base.Add(12 * time.Hour)
	tests := []struct {
		name      string
		opts      model.ListContactSubmissionsOptions
		wantNames []string
	}{
		{name: "全部按时间倒序", opts: model.ListContactSubmissionsOptions{}, wantNames: []string{"Ahmed Ali", "Sarah Johnson", "John Smith"}},
		{name: "按服务过滤", opts: model.ListContactSubmissionsOptions{Service: "web_development"}, wantNames: []string{"Ahmed Ali", "John Smith"}},
		{name: "按回复状态过滤", opts: model.ListContactSubmissionsOptions{IsResponded: &pending}, wantNames: []string{"Sarah Johnson", "John Smith"}},
		{name: "按创建时间过滤", opts: model.ListContactSubmissionsOptions{CreatedAfter: &after}, wantNames: []string{"Ahmed Ali", "Sarah Johnson"}},
		{name: "搜索不区分大小写", opts: model.ListContactSubmissionsOptions{Search: "CHATBOT"}, wantNames: []string{"Sarah Johnson"}},
		{name: "分页", opts: model.ListContactSubmissionsOptions{Page: 2, PageSize: 2}, wantNames: []string{"John Smith"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, total, err := repo.List(ctx, &tt.opts)
			require.NoError(t, err)
			names := make([]string, 0, len(list))
			for _, s := range list {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			if tt.opts.Page == 0 {
				assert.Equal(t, len(tt.wantNames), total)
			} else {
				assert.Equal(t, 3, total)
			}
		})
	}

	n, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	changed, err := repo.SetResponded(ctx, []uint{john.ID, sarah.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	n, err = repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.UpdateNotes(ctx, john.ID, "called back"))
	got, err = repo.FindByID(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, "called back", got.Notes)
	assert.True(t, got.IsResponded)

	deleted, err := repo.Delete(ctx, []uint{john.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	deleted, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func createPage(t *testing.T, repo repository.PageRepository, parent *model.Page, step string, content model.Content, slug string) *model.Document {
	t.Helper()
	doc := &model.Document{
		Page: model.Page{
			Kind:  content.Kind(),
			Slug:  slug,
			Title: slug,
			Live:  true,
		},
		Content: content,
	}
	if parent == nil {
		doc.Depth, doc.Path, doc.URLPath = 1, step, "/"
	} else {
		doc.ParentID = &parent.ID
		doc.Depth = parent.Depth + 1
		doc.Path = parent.Path + step
		doc.URLPath = parent.URLPath + slug + "/"
	}
	require.NoError(t, repo.Create(context.Background(), doc))
	return doc
}

func TestPageRepoTree(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepo(newTestDB(t), dialect.SQLite)

	root := createPage(t, repo, nil, "0001", model.NewRootPage(), "root")
	home := model.NewHomePage()
	home.Services = []model.ServiceItem{{Title: "Web"}, {Title: "Mobile"}}
	homeDoc := createPage(t, repo, &root.Page, "0001", home, "home")
	blog := createPage(t, repo, &homeDoc.Page, "0001", model.NewBlogIndexPage(), "blog")
	post := model.NewBlogPost()
	post.Tags = "go, web"
	post.Content = []model.ContentBlock{{Type: model.BlockParagraph, HTML: "<p>hi</p>"}}
	postDoc := createPage(t, repo, &blog.Page, "0001", post, "first-post")

	found, err := repo.FindRoot(ctx)
	require.NoError(t, err)
	assert.Equal(t, root.ID, found.ID)

	doc, err := repo.FindByURLPath(ctx, "/home/blog/first-post/")
	require.NoError(t, err)
	assert.Equal(t, postDoc.ID, doc.ID)
	require.IsType(t, &model.BlogPost{}, doc.Content)
	assert.Equal(t, "go, web", doc.Content.(*model.BlogPost).Tags)
	assert.Equal(t, "<p>hi</p>", doc.Content.(*model.BlogPost).Content[0].HTML)

	loaded, err := repo.FindByID(ctx, homeDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, home.Services, loaded.Content.(*model.HomePage).Services)

	maxChild, err := repo.MaxChildPath(ctx, root.Path)
	require.NoError(t, err)
	assert.Equal(t, "00010001", maxChild)
	maxChild, err = repo.MaxChildPath(ctx, postDoc.Path)
	require.NoError(t, err)
	assert.Empty(t, maxChild)

	exists, err := repo.SlugExists(ctx, homeDoc.ID, "blog", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.SlugExists(ctx, homeDoc.ID, "blog", blog.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	n, err := repo.CountByKind(ctx, model.KindHome)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	descendants, err := repo.FindDescendants(ctx, homeDoc.Path, repository.DescendantQuery{Kind: model.KindBlogPost, LiveOnly: true})
	require.NoError(t, err)
	require.Len(t, descendants, 1)
	assert.Equal(t, postDoc.ID, descendants[0].ID)

	// slug 改名后子孙页面的 url_path 随之更新
	updated, err := repo.ReplaceURLPrefix(ctx, blog.Path, "/home/blog/", "/home/news/")
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	_, err = repo.FindByURLPath(ctx, "/home/news/first-post/")
	assert.NoError(t, err)

	ancestors, err := repo.FindByPaths(ctx, postDoc.AncestorPaths())
	require.NoError(t, err)
	require.Len(t, ancestors, 3)
	assert.Equal(t, blog.ID, ancestors[2].ID)

	deleted, err := repo.DeleteSubtree(ctx, blog.Path)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	_, err = repo.FindByID(ctx, postDoc.ID)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestPageRepoPublishing(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepo(newTestDB(t), dialect.SQLite)
	root := createPage(t, repo, nil, "0001", model.NewRootPage(), "root")
	about := createPage(t, repo, &root.Page, "0001", model.NewAboutPage(), "about")

	meta, err := repo.FindMetaByID(ctx, about.ID)
	require.NoError(t, err)
	goLive := time.Now().Add(-time.Minute).UTC().Truncate(time.Second)
	meta.Live = false
	meta.Private = true
	meta.GoLiveAt = &goLive
	require.NoError(t, repo.UpdateMeta(ctx, meta))

	due, err := repo.FindDueForPublish(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, about.ID, due[0].ID)
	require.NotNil(t, due[0].GoLiveAt)
	assert.True(t, due[0].GoLiveAt.Equal(goLive))

	due, err = repo.FindDueForPublish(ctx, goLive.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, due)

	private, err := repo.FindPrivatePaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{about.Path}, private)

	live, err := repo.FindLive(ctx)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, root.ID, live[0].ID)

	err = repo.UpdateMeta(ctx, &model.Page{ID: 9999})
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestTransactionRollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txMgr := NewTransactionManager(db, dialect.SQLite)
	repos := NewRepositories(db, dialect.SQLite)

	boom := errors.New("boom")
	err := txMgr.Do(ctx, func(tx repository.Repositories) error {
		require.NoError(t, tx.ContactSubmission.Create(ctx, &model.ContactSubmission{Name: "Temp", Email: "t@example.com"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, total, err := repos.ContactSubmission.List(ctx, &model.ListContactSubmissionsOptions{})
	require.NoError(t, err)
	assert.Zero(t, total)

	err = txMgr.Do(ctx, func(tx repository.Repositories) error {
		return tx.ContactSubmission.Create(ctx, &model.ContactSubmission{Name: "Kept", Email: "k@example.com"})
	})
	require.NoError(t, err)
	_, total, err = repos.ContactSubmission.List(ctx, &model.ListContactSubmissionsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
