package rss

import (
	"context"
	"testing"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/testutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlog(t *testing.T) (page.Service, *utility.MemoryCacheService, *model.Document) {
	t.Helper()
	ctx := context.Background()
	repos, txMgr := testutil.NewRepositories(t)
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)
	pages := page.NewService(repos.Page, txMgr, cache, nil)

	root, err := pages.EnsureRoot(ctx)
	require.NoError(t, err)
	home, err := pages.Create(ctx, root.ID, model.NewHomePage(), model.PageOptions{Title: "Home", Slug: "home", Publish: true})
	require.NoError(t, err)
	blog, err := pages.Create(ctx, home.ID, model.NewBlogIndexPage(), model.PageOptions{Title: "Blog", Slug: "blog", Publish: true})
	require.NoError(t, err)
	return pages, cache, blog
}

func TestGenerateFeed(t *testing.T) {
	ctx := context.Background()
	pages, cache, blog := newBlog(t)

	post := model.NewBlogPost()
	post.Tags = "go, web"
	post.Content = []model.ContentBlock{{Type: model.BlockParagraph, HTML: "<p>Fast &amp; <b>safe</b> sites.</p>"}}
	_, err := pages.Create(ctx, blog.ID, post, model.PageOptions{Title: "Tips & Tricks", Slug: "tips", Publish: true})
	require.NoError(t, err)

	svc := NewService(pages, cache, "Fintaa")
	buildTime := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	feed, err := svc.GenerateFeed(ctx, &FeedOptions{BaseURL: "https://fintaa.example/", BuildTime: buildTime})
	require.NoError(t, err)

	assert.Equal(t, "Fintaa", feed.Title)
	assert.Equal(t, "https://fintaa.example", feed.Link)
	require.Len(t, feed.Items, 1)
	item := feed.Items[0]
	assert.Equal(t, "https://fintaa.example/blog/tips/", item.Link)
	assert.Equal(t, "Fast & safe sites.", item.Description)
	assert.Equal(t, "Fintaa Team", item.Author)
	assert.Equal(t, []string{"go", "web"}, item.Categories)

	xml := svc.GenerateXML(feed)
	assert.Contains(t, xml, "<title>Tips &amp; Tricks</title>")
	assert.Contains(t, xml, "<category>go</category>")
	assert.Contains(t, xml, `<atom:link href="https://fintaa.example/rss.xml"`)
}

func TestFeedCache(t *testing.T) {
	ctx := context.Background()
	pages, cache, blog := newBlog(t)
	svc := NewService(pages, cache, "Fintaa")

	feed, err := svc.GenerateFeed(ctx, &FeedOptions{BaseURL: "https://fintaa.example"})
	require.NoError(t, err)
	assert.Empty(t, feed.Items)

	_, err = pages.Create(ctx, blog.ID, model.NewBlogPost(), model.PageOptions{Title: "New", Slug: "new", Publish: true})
	require.NoError(t, err)

	// 失效前返回缓存内容
	feed, err = svc.GenerateFeed(ctx, &FeedOptions{BaseURL: "https://fintaa.example"})
	require.NoError(t, err)
	assert.Empty(t, feed.Items)

	require.NoError(t, svc.InvalidateCache(ctx))
	feed, err = svc.GenerateFeed(ctx, &FeedOptions{BaseURL: "https://fintaa.example"})
	require.NoError(t, err)
	assert.Len(t, feed.Items, 1)
}

func TestPostDescription(t *testing.T) {
	post := model.NewBlogPost()
	assert.Empty(t, postDescription(post))

	post.Content = []model.ContentBlock{
		{Type: model.BlockHeading, Text: "Intro"},
		{Type: model.BlockParagraph, HTML: "<p>First paragraph</p>"},
	}
	assert.Equal(t, "First paragraph", postDescription(post))

	post.Excerpt = "Short summary"
	assert.Equal(t, "Short summary", postDescription(post))
}
