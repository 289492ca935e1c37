/*
 * @Description: 定时发布页面任务
 * @Author: 安知鱼
 * @Date: 2026-01-07
 */
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
)

// ScheduledPublishJob 每分钟检查一次到达上线时间的页面并发布
type ScheduledPublishJob struct {
	pageSvc page.Service
	logger  *slog.Logger
	now     func() time.Time
}

func NewScheduledPublishJob(pageSvc page.Service, logger *slog.Logger) *ScheduledPublishJob {
	return &ScheduledPublishJob{
		pageSvc: pageSvc,
		logger:  logger,
		now:     time.Now,
	}
}

func (j *ScheduledPublishJob) Name() string {
	return "ScheduledPublishJob"
}

func (j *ScheduledPublishJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := j.now()
	published, err := j.pageSvc.PublishDue(ctx, now)
	if err != nil {
		j.logger.Error("定时发布页面失败", slog.Any("error", err), slog.Int("published", published))
		return
	}
	if published == 0 {
		j.logger.Debug("没有待发布的定时页面")
		return
	}
	j.logger.Info("定时页面发布完成", slog.Int("published", published), slog.Time("check_time", now))
}
