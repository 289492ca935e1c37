package page

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/testutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *service
	cache *utility.MemoryCacheService
	root  *model.Page
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos, txMgr := testutil.NewRepositories(t)
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)

	svc := NewService(repos.Page, txMgr, cache, nil).(*service)
	root, err := svc.EnsureRoot(context.Background())
	require.NoError(t, err)
	return &fixture{svc: svc, cache: cache, root: root}
}

func (f *fixture) create(t *testing.T, parentID uint, content model.Content, title, slug string) *model.Document {
	t.Helper()
	doc, err := f.svc.Create(context.Background(), parentID, content, model.PageOptions{
		Title:   title,
		Slug:    slug,
		Publish: true,
	})
	require.NoError(t, err)
	return doc
}

func TestEnsureRootIsIdempotent(t *testing.T) {
	f := newFixture(t)
	again, err := f.svc.EnsureRoot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.root.ID, again.ID)
	assert.Equal(t, RootPath, again.Path)
}

func TestSingletonPageTypes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")

	_, err := f.svc.Create(ctx, f.root.ID, model.NewHomePage(), model.PageOptions{Title: "Home 2", Slug: "home-2"})
	assert.ErrorIs(t, err, constant.ErrPageLimitReached)

	tests := []struct {
		name    string
		slug    string
		content func() model.Content
	}{
		{name: "关于页", slug: "about", content: func() model.Content { return model.NewAboutPage() }},
		{name: "联系页", slug: "contact", content: func() model.Content { return model.NewContactPage() }},
		{name: "作品集", slug: "portfolio", content: func() model.Content { return model.NewPortfolioIndexPage() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, home.ID, tt.content(), model.PageOptions{Title: tt.name, Slug: tt.slug})
			require.NoError(t, err)
			_, err = f.svc.Create(ctx, home.ID, tt.content(), model.PageOptions{Title: tt.name, Slug: tt.slug + "-2"})
			assert.ErrorIs(t, err, constant.ErrPageLimitReached)
		})
	}
}

func TestSubpageRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	blog := f.create(t, home.ID, model.NewBlogIndexPage(), "Blog", "blog")
	portfolio := f.create(t, home.ID, model.NewPortfolioIndexPage(), "Portfolio", "portfolio")

	_, err := f.svc.Create(ctx, home.ID, model.NewBlogPost(), model.PageOptions{Title: "Orphan"})
	assert.ErrorIs(t, err, constant.ErrPageTypeNotAllowed)

	_, err = f.svc.Create(ctx, blog.ID, model.NewProjectPage(), model.PageOptions{Title: "Project"})
	assert.ErrorIs(t, err, constant.ErrPageTypeNotAllowed)

	_, err = f.svc.Create(ctx, portfolio.ID, model.NewBlogPost(), model.PageOptions{Title: "Post"})
	assert.ErrorIs(t, err, constant.ErrPageTypeNotAllowed)

	post, err := f.svc.Create(ctx, blog.ID, model.NewBlogPost(), model.PageOptions{Title: "Hello World"})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "/home/blog/hello-world/", post.URLPath)
	assert.Equal(t, blog.Path+"0001", post.Path)
	assert.False(t, post.Content.(*model.BlogPost).PublishDate.IsZero())

	_, err = f.svc.Create(ctx, 9999, model.NewServicesPage(), model.PageOptions{Title: "Nowhere"})
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestSiblingSlugConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	f.create(t, home.ID, model.NewServicesPage(), "Services", "services")

	_, err := f.svc.Create(ctx, home.ID, model.NewTeamPage(), model.PageOptions{Title: "Services"})
	assert.ErrorIs(t, err, constant.ErrSlugConflict)

	_, err = f.svc.Create(ctx, home.ID, model.NewTeamPage(), model.PageOptions{Title: "Team", Slug: "Bad Slug"})
	assert.ErrorIs(t, err, constant.ErrInvalidSlug)

	team := f.create(t, home.ID, model.NewTeamPage(), "Team", "team")
	_, err = f.svc.Update(ctx, team.ID, nil, model.PageOptions{Slug: "services"})
	assert.ErrorIs(t, err, constant.ErrSlugConflict)
}

func TestRenameRewritesDescendants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	blog := f.create(t, home.ID, model.NewBlogIndexPage(), "Blog", "blog")
	post := f.create(t, blog.ID, model.NewBlogPost(), "First Post", "first-post")

	updated, err := f.svc.Update(ctx, blog.ID, nil, model.PageOptions{Slug: "news", Title: "News"})
	require.NoError(t, err)
	assert.Equal(t, "/home/news/", updated.URLPath)
	assert.Equal(t, "News", updated.Title)

	got, err := f.svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "/home/news/first-post/", got.URLPath)

	resolved, err := f.svc.Resolve(ctx, "/news/first-post/")
	require.NoError(t, err)
	assert.Equal(t, post.ID, resolved.ID)

	_, err = f.svc.Update(ctx, f.root.ID, nil, model.PageOptions{Slug: "other"})
	assert.ErrorIs(t, err, constant.ErrInvalidOperation)
}

func TestUpdateRejectsKindChange(t *testing.T) {
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	_, err := f.svc.Update(context.Background(), home.ID, model.NewAboutPage(), model.PageOptions{})
	assert.ErrorIs(t, err, constant.ErrBadRequest)
}

func TestPrivateSubtreeIsHidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	blog := f.create(t, home.ID, model.NewBlogIndexPage(), "Blog", "blog")
	post := f.create(t, blog.ID, model.NewBlogPost(), "Secret", "secret")

	latest, err := f.svc.LatestPosts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "/blog/secret/", latest[0].URL)

	_, err = f.svc.SetPrivate(ctx, blog.ID, true)
	require.NoError(t, err)

	latest, err = f.svc.LatestPosts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, latest)

	_, err = f.svc.Resolve(ctx, "/blog/secret/")
	assert.ErrorIs(t, err, constant.ErrNotFound)

	pages, err := f.svc.PublicPages(ctx)
	require.NoError(t, err)
	for _, p := range pages {
		assert.NotEqual(t, post.ID, p.ID)
		assert.NotEqual(t, blog.ID, p.ID)
	}
	require.Len(t, pages, 1)
	assert.Equal(t, "/", pages[0].URL)
}

func TestPublishLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")

	draft, err := f.svc.Create(ctx, home.ID, model.NewServicesPage(), model.PageOptions{Title: "Services"})
	require.NoError(t, err)
	assert.False(t, draft.Live)
	_, err = f.svc.Resolve(ctx, "/services/")
	assert.ErrorIs(t, err, constant.ErrNotFound)

	first := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return first }
	p, err := f.svc.Publish(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, p.Live)

	f.svc.now = func() time.Time { return first.Add(time.Hour) }
	p, err = f.svc.Publish(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, p.FirstPublishedAt.Equal(first))
	assert.True(t, p.LastPublishedAt.Equal(first.Add(time.Hour)))

	_, err = f.svc.Resolve(ctx, "/services/")
	require.NoError(t, err)

	_, err = f.svc.Unpublish(ctx, draft.ID)
	require.NoError(t, err)
	_, err = f.svc.Resolve(ctx, "/services/")
	assert.ErrorIs(t, err, constant.ErrNotFound)

	f.svc.now = time.Now
	at := time.Now().Add(time.Hour)
	p, err = f.svc.SchedulePublish(ctx, draft.ID, at)
	require.NoError(t, err)
	assert.False(t, p.Live)
	require.NotNil(t, p.GoLiveAt)

	n, err := f.svc.PublishDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.svc.PublishDue(ctx, at.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, got.Live)
	assert.Nil(t, got.GoLiveAt)
}

func TestRenderContextIsCachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	about := f.create(t, home.ID, model.NewAboutPage(), "About Us", "about")

	data, err := f.svc.RenderContext(ctx, "/about/")
	require.NoError(t, err)

	var rc struct {
		Page        model.Page   `json:"page"`
		Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
	}
	require.NoError(t, json.Unmarshal(data, &rc))
	assert.Equal(t, about.ID, rc.Page.ID)
	assert.Equal(t, []Breadcrumb{{Title: "Home", URL: "/"}, {Title: "About Us", URL: "/about/"}}, rc.Breadcrumbs)

	cached, err := f.cache.Get(ctx, renderCachePrefix+"/about/")
	require.NoError(t, err)
	assert.Equal(t, string(data), cached)

	_, err = f.svc.Update(ctx, about.ID, nil, model.PageOptions{Title: "About Fintaa"})
	require.NoError(t, err)
	cached, err = f.cache.Get(ctx, renderCachePrefix+"/about/")
	require.NoError(t, err)
	assert.Empty(t, cached)

	_, err = f.svc.RenderContext(ctx, "/missing/")
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestRichTextIsSanitized(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	blog := f.create(t, home.ID, model.NewBlogIndexPage(), "Blog", "blog")

	post := model.NewBlogPost()
	post.Content = []model.ContentBlock{{Type: model.BlockParagraph, HTML: `<p>ok</p><script>alert(1)</script>`}}
	doc, err := f.svc.Create(ctx, blog.ID, post, model.PageOptions{Title: "Safe"})
	require.NoError(t, err)
	html := doc.Content.(*model.BlogPost).Content[0].HTML
	assert.Contains(t, html, "<p>ok</p>")
	assert.NotContains(t, html, "<script>")

	md := model.NewBlogPost()
	md.Content = []model.ContentBlock{{Type: model.BlockParagraph, HTML: "**bold**"}}
	doc, err = f.svc.Create(ctx, blog.ID, md, model.PageOptions{Title: "Markdown", Markdown: true})
	require.NoError(t, err)
	assert.Contains(t, doc.Content.(*model.BlogPost).Content[0].HTML, "<strong>bold</strong>")
}

func TestDeleteSubtree(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	home := f.create(t, f.root.ID, model.NewHomePage(), "Home", "home")
	blog := f.create(t, home.ID, model.NewBlogIndexPage(), "Blog", "blog")
	f.create(t, blog.ID, model.NewBlogPost(), "One", "one")

	n, err := f.svc.Delete(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	children, err := f.svc.Children(ctx, home.ID)
	require.NoError(t, err)
	assert.Empty(t, children)

	_, err = f.svc.Delete(ctx, f.root.ID)
	assert.ErrorIs(t, err, constant.ErrInvalidOperation)
}

func TestNextChildPath(t *testing.T) {
	tests := []struct {
		name     string
		maxChild string
		want     string
	}{
		{name: "第一个子页面", maxChild: "", want: "00010001"},
		{name: "十进制进位", maxChild: "00010009", want: "0001000A"},
		{name: "三十六进制进位", maxChild: "0001000Z", want: "00010010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextChildPath("0001", tt.maxChild)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := nextChildPath("0001", "0001ZZZZ")
	assert.Error(t, err)
}
