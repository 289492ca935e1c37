package contact

import (
	"context"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/testutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/idgen"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *utility.MemoryCacheService) {
	t.Helper()
	require.NoError(t, idgen.InitSqidsEncoder())
	repos, _ := testutil.NewRepositories(t)
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)
	return NewService(repos.ContactSubmission, cache, nil), cache
}

func TestSubmitStoresAllFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	sub, err := svc.Submit(ctx, map[string]string{
		"name":     "John Smith",
		"email":    "john@example.com",
		"service":  "web_development",
		"budget":   "15k_50k",
		"timeline": "3_months",
		"message":  "We need a new e-commerce website.",
	})
	require.NoError(t, err)
	assert.NotZero(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())

	got, err := svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", got.Name)
	assert.Empty(t, got.Phone)
	assert.Empty(t, got.Company)
	assert.False(t, got.IsResponded)
	assert.Empty(t, got.Notes)
}

func TestSubmitKeepsValuesAsIs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	sub, err := svc.Submit(ctx, map[string]string{"name": "  Padded  ", "email": "not-an-email", "service": "unknown"})
	require.NoError(t, err)
	got, err := svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "  Padded  ", got.Name)
	assert.Equal(t, "not-an-email", got.Email)
	assert.Equal(t, "unknown", got.Service)

	dto, err := svc.ToDTO(got)
	require.NoError(t, err)
	assert.Equal(t, "unknown", dto.ServiceDisplay)
	assert.Equal(t, constant.DefaultServiceEmoji, dto.ServiceEmoji)
}

func TestBulkMarkMessages(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		sub, err := svc.Submit(ctx, map[string]string{"name": name})
		require.NoError(t, err)
		ids = append(ids, sub.ID)
	}

	n, msg, err := svc.MarkResponded(ctx, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "2 contact submission(s) marked as responded.", msg)

	n, msg, err = svc.MarkPending(ctx, ids[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1 contact submission(s) marked as pending.", msg)

	n, msg, err = svc.MarkResponded(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "0 contact submission(s) marked as responded.", msg)
}

func TestPendingCountCacheIsInvalidated(t *testing.T) {
	ctx := context.Background()
	svc, cache := newTestService(t)

	sub, err := svc.Submit(ctx, map[string]string{"name": "A"})
	require.NoError(t, err)

	n, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	cached, err := cache.Get(ctx, PendingCountCacheKey)
	require.NoError(t, err)
	assert.Equal(t, "1", cached)

	_, err = svc.SetResponded(ctx, sub.ID, true)
	require.NoError(t, err)
	cached, err = cache.Get(ctx, PendingCountCacheKey)
	require.NoError(t, err)
	assert.Empty(t, cached)

	n, err = svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmitInvalidatesPendingCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	n, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.Submit(ctx, map[string]string{"name": "New", "email": "new@example.com", "message": "hi"})
	require.NoError(t, err)

	n, err = svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListClampsPaging(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Submit(ctx, map[string]string{"name": name})
		require.NoError(t, err)
	}

	tests := []struct {
		name         string
		opts         model.ListContactSubmissionsOptions
		wantLen      int
		wantPageSize int
	}{
		{name: "超大每页条数被限制", opts: model.ListContactSubmissionsOptions{PageSize: 1 << 50}, wantLen: 3, wantPageSize: model.MaxSubmissionPageSize},
		{name: "超大页码返回空页", opts: model.ListContactSubmissionsOptions{Page: 1 << 60, PageSize: model.MaxSubmissionPageSize}, wantLen: 0, wantPageSize: model.MaxSubmissionPageSize},
		{name: "末页之后返回空页", opts: model.ListContactSubmissionsOptions{Page: 3, PageSize: 2}, wantLen: 0, wantPageSize: 2},
		{name: "末页", opts: model.ListContactSubmissionsOptions{Page: 2, PageSize: 2}, wantLen: 1, wantPageSize: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(ctx, &tt.opts)
			require.NoError(t, err)
			assert.Equal(t, 3, resp.Total)
			assert.Len(t, resp.List, tt.wantLen)
			assert.Equal(t, tt.wantPageSize, resp.PageSize)
		})
	}
}

func TestNotesAndReversibleStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	sub, err := svc.Submit(ctx, map[string]string{"name": "A", "email": "a@example.com"})
	require.NoError(t, err)

	got, err := svc.UpdateNotes(ctx, sub.ID, "follow up on Monday")
	require.NoError(t, err)
	assert.Equal(t, "follow up on Monday", got.Notes)
	assert.Equal(t, "a@example.com", got.Email)

	got, err = svc.SetResponded(ctx, sub.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsResponded)
	got, err = svc.SetResponded(ctx, sub.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsResponded)
	assert.Equal(t, "follow up on Monday", got.Notes)

	_, err = svc.UpdateNotes(ctx, 9999, "x")
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestListDTO(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	sub, err := svc.Submit(ctx, map[string]string{
		"name": "Sarah", "service": "ai_automation", "budget": "50k_plus", "timeline": "asap",
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, model.DefaultSubmissionPageSize, resp.PageSize)
	require.Len(t, resp.List, 1)

	dto := resp.List[0]
	assert.Equal(t, "AI & Automation", dto.ServiceDisplay)
	assert.Equal(t, "$50,000+", dto.BudgetDisplay)
	assert.Equal(t, "ASAP", dto.TimelineDisplay)
	assert.Equal(t, "🤖", dto.ServiceEmoji)
	assert.Equal(t, constant.StatusPending.Label, dto.StatusLabel)

	id, err := idgen.DecodePublicID(dto.ID, idgen.EntityTypeContactSubmission)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, id)

	n, err := svc.Delete(ctx, []uint{sub.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
