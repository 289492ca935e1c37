package sitemap

import (
	"context"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/testutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemap(t *testing.T) {
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
	_, err = pages.Create(ctx, blog.ID, model.NewBlogPost(), model.PageOptions{Title: "Post", Slug: "post", Publish: true})
	require.NoError(t, err)
	about, err := pages.Create(ctx, home.ID, model.NewAboutPage(), model.PageOptions{Title: "About", Slug: "about", Publish: true})
	require.NoError(t, err)
	_, err = pages.Create(ctx, home.ID, model.NewContactPage(), model.PageOptions{Title: "Contact", Slug: "contact"})
	require.NoError(t, err)
	_, err = pages.SetPrivate(ctx, about.ID, true)
	require.NoError(t, err)

	svc := NewService(pages, "https://fintaa.example/")
	set, err := svc.GenerateSitemap(ctx)
	require.NoError(t, err)

	byLoc := map[string]URL{}
	for _, u := range set.URLs {
		byLoc[u.Location] = u
	}
	require.Len(t, byLoc, 3, "草稿与私有页面不出现在站点地图中")

	assert.Equal(t, string(ChangeFreqDaily), byLoc["https://fintaa.example/"].ChangeFreq)
	assert.InDelta(t, 1.0, byLoc["https://fintaa.example/"].Priority, 0.001)
	assert.InDelta(t, 0.8, byLoc["https://fintaa.example/blog/"].Priority, 0.001)
	assert.Equal(t, string(ChangeFreqWeekly), byLoc["https://fintaa.example/blog/post/"].ChangeFreq)
	assert.InDelta(t, 0.6, byLoc["https://fintaa.example/blog/post/"].Priority, 0.001)

	data, err := svc.GenerateXML(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
}

func TestGenerateRequiresBaseURL(t *testing.T) {
	svc := NewService(nil, "")
	_, err := svc.GenerateSitemap(context.Background())
	assert.Error(t, err)

	robots, err := svc.GenerateRobots(context.Background())
	require.NoError(t, err)
	assert.Contains(t, robots, "Disallow: /api/")
	assert.NotContains(t, robots, "Sitemap:")
}

func TestPriorityFor(t *testing.T) {
	assert.InDelta(t, 1.0, priorityFor("/"), 0.001)
	assert.InDelta(t, 0.4, priorityFor("/a/b/c/d/"), 0.001)
}
