/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-07-12 16:09:46
 * @LastEditTime: 2026-10-14 16:02:33
 * @LastEditors: 安知鱼
 */
package task

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/contact"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和任务依赖，负责任务的注册、启动和停止。
type Scheduler struct {
	cron       *cron.Cron
	logger     *slog.Logger
	pageSvc    page.Service
	contactSvc contact.Service
}

// NewScheduler 创建调度器，日志固定带 "system":"cron" 属性
func NewScheduler(pageSvc page.Service, contactSvc contact.Service) *Scheduler {
	return newScheduler(os.Stdout, pageSvc, contactSvc)
}

func newScheduler(out io.Writer, pageSvc page.Service, contactSvc contact.Service) *Scheduler {
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
		),
	)

	return &Scheduler{
		cron:       c,
		logger:     logger,
		pageSvc:    pageSvc,
		contactSvc: contactSvc,
	}
}

// RegisterJobs 在调度器中注册所有定时任务。
func (s *Scheduler) RegisterJobs() error {
	s.logger.Info("Registering all periodic jobs...")

	jobs := []struct {
		spec     string
		job      Job
		schedule string
	}{
		{ScheduleEveryMinute, NewScheduledPublishJob(s.pageSvc, s.logger), "every minute"},
		{ScheduleDailyDigest, NewPendingSubmissionDigestJob(s.contactSvc, s.logger), "every day at 9:00:00 AM"},
	}
	for _, j := range jobs {
		if _, err := s.cron.AddJob(j.spec, j.job); err != nil {
			s.logger.Error("Failed to add job", slog.String("job_name", j.job.Name()), slog.Any("error", err))
			return fmt.Errorf("注册定时任务 %s 失败: %w", j.job.Name(), err)
		}
		s.logger.Info("-> Successfully registered job", "job_name", j.job.Name(), "schedule", j.schedule)
	}

	s.logger.Info("All periodic jobs registered.")
	return nil
}

// Entries 已注册的任务数量
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 停止调度器并等待正在运行的任务结束。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
