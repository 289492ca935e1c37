package seed

import (
	"bytes"
	"context"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/testutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedFixture struct {
	seeder *Seeder
	pages  page.Service
	repos  repository.Repositories
	out    *bytes.Buffer
}

func newSeedFixture(t *testing.T, withRoot bool) *seedFixture {
	t.Helper()
	repos, txMgr := testutil.NewRepositories(t)
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)
	pages := page.NewService(repos.Page, txMgr, cache, nil)
	if withRoot {
		_, err := pages.EnsureRoot(context.Background())
		require.NoError(t, err)
	}
	out := &bytes.Buffer{}
	return &seedFixture{
		seeder: NewSeeder(pages, repos.Page, repos.ContactSubmission, out),
		pages:  pages,
		repos:  repos,
		out:    out,
	}
}

func (f *seedFixture) submissionCount(t *testing.T) int {
	t.Helper()
	_, total, err := f.repos.ContactSubmission.List(context.Background(), &model.ListContactSubmissionsOptions{})
	require.NoError(t, err)
	return total
}

func childSlugs(t *testing.T, pages page.Service, id uint) []string {
	t.Helper()
	children, err := pages.Children(context.Background(), id)
	require.NoError(t, err)
	slugs := make([]string, 0, len(children))
	for _, c := range children {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

func TestRunRequiresRoot(t *testing.T) {
	f := newSeedFixture(t, false)
	err := f.seeder.Run(context.Background(), false)
	assert.ErrorIs(t, err, constant.ErrRootMissing)
	assert.Contains(t, f.out.String(), "Root page not found. Please run migrations first.")
}

func TestRunSeedsFullSite(t *testing.T) {
	ctx := context.Background()
	f := newSeedFixture(t, true)
	require.NoError(t, f.seeder.Run(ctx, false))
	assert.Contains(t, f.out.String(), "Database seeding completed successfully!")

	homeDoc, err := f.pages.Resolve(ctx, "/")
	require.NoError(t, err)
	home := homeDoc.Content.(*model.HomePage)
	assert.Len(t, home.Services, 6)
	assert.Len(t, home.AboutFeatures, 6)

	assert.Equal(t, []string{"about", "contact", "services", "team", "blog", "portfolio"}, childSlugs(t, f.pages, homeDoc.ID))

	about, err := f.pages.Resolve(ctx, "/about/")
	require.NoError(t, err)
	assert.Len(t, about.Content.(*model.AboutPage).Values, 6)
	assert.Len(t, about.Content.(*model.AboutPage).TeamMembers, 3)

	contactDoc, err := f.pages.Resolve(ctx, "/contact/")
	require.NoError(t, err)
	assert.Len(t, contactDoc.Content.(*model.ContactPage).ContactMethods, 3)

	posts, err := f.pages.LatestPosts(ctx, 20)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "/blog/future-web-development-2025/", posts[0].URL)

	portfolio, err := f.pages.Resolve(ctx, "/portfolio/")
	require.NoError(t, err)
	assert.Len(t, childSlugs(t, f.pages, portfolio.ID), 3)

	assert.Equal(t, 3, f.submissionCount(t))
}

func TestRunCleanReplacesContent(t *testing.T) {
	ctx := context.Background()
	f := newSeedFixture(t, true)
	require.NoError(t, f.seeder.Run(ctx, false))
	require.NoError(t, f.seeder.Run(ctx, true))

	root, err := f.repos.Page.FindRoot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, childSlugs(t, f.pages, root.ID))
	assert.Equal(t, 3, f.submissionCount(t))
}

func TestSeedContactsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newSeedFixture(t, true)

	created, err := f.seeder.SeedContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = f.seeder.SeedContacts(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Contains(t, f.out.String(), "already exists")
	assert.Equal(t, 3, f.submissionCount(t))
}
