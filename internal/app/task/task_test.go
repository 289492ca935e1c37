package task

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/testutil"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/contact"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (page.Service, contact.Service) {
	t.Helper()
	repos, txMgr := testutil.NewRepositories(t)
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)
	return page.NewService(repos.Page, txMgr, cache, nil), contact.NewService(repos.ContactSubmission, cache, nil)
}

func TestRegisterJobs(t *testing.T) {
	pages, contacts := newServices(t)
	var out bytes.Buffer
	s := newScheduler(&out, pages, contacts)

	require.NoError(t, s.RegisterJobs())
	assert.Equal(t, 2, s.Entries())
	assert.Contains(t, out.String(), "job_name=ScheduledPublishJob")
	assert.Contains(t, out.String(), "job_name=PendingSubmissionDigestJob")
	assert.Contains(t, out.String(), "system=cron")

	s.Start()
	s.Stop()
}

func TestScheduledPublishJob(t *testing.T) {
	ctx := context.Background()
	pages, _ := newServices(t)
	root, err := pages.EnsureRoot(ctx)
	require.NoError(t, err)
	home, err := pages.Create(ctx, root.ID, model.NewHomePage(), model.PageOptions{Title: "Home", Slug: "home", Publish: true})
	require.NoError(t, err)
	about, err := pages.Create(ctx, home.ID, model.NewAboutPage(), model.PageOptions{Title: "About", Slug: "about"})
	require.NoError(t, err)

	goLive := time.Now().Add(time.Hour)
	_, err = pages.SchedulePublish(ctx, about.ID, goLive)
	require.NoError(t, err)

	var out bytes.Buffer
	job := NewScheduledPublishJob(pages, slog.New(slog.NewTextHandler(&out, nil)))
	job.now = func() time.Time { return goLive.Add(time.Minute) }
	job.Run()
	assert.Contains(t, out.String(), "published=1")

	doc, err := pages.Get(ctx, about.ID)
	require.NoError(t, err)
	assert.True(t, doc.Live)
}

func TestPendingSubmissionDigestJob(t *testing.T) {
	ctx := context.Background()
	_, contacts := newServices(t)

	var out bytes.Buffer
	job := NewPendingSubmissionDigestJob(contacts, slog.New(slog.NewTextHandler(&out, nil)))
	job.Run()
	assert.Contains(t, out.String(), "所有联系表单都已回复")

	_, err := contacts.Submit(ctx, map[string]string{"name": "John"})
	require.NoError(t, err)
	out.Reset()
	job.Run()
	assert.Contains(t, out.String(), "pending=1")
}

type panicJob struct{}

func (panicJob) Run()         { panic("boom") }
func (panicJob) Name() string { return "PanicJob" }

func TestWrappers(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	job := cron.NewChain(NewPanicRecoveryWrapper(logger), NewLoggingWrapper(logger)).Then(panicJob{})

	assert.NotPanics(t, job.Run)
	assert.Contains(t, out.String(), "Job panicked")
	assert.Contains(t, out.String(), "job_name=PanicJob")
	assert.Contains(t, out.String(), "execution_id=")
	assert.Equal(t, "PanicJob", getJobName(job))
}
