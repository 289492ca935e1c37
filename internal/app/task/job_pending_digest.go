package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/contact"
)

// PendingSubmissionDigestJob 每天早上汇报待回复的联系表单数量
type PendingSubmissionDigestJob struct {
	contactSvc contact.Service
	logger     *slog.Logger
}

func NewPendingSubmissionDigestJob(contactSvc contact.Service, logger *slog.Logger) *PendingSubmissionDigestJob {
	return &PendingSubmissionDigestJob{contactSvc: contactSvc, logger: logger}
}

func (j *PendingSubmissionDigestJob) Name() string {
	return "PendingSubmissionDigestJob"
}

func (j *PendingSubmissionDigestJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pending, err := j.contactSvc.PendingCount(ctx)
	if err != nil {
		j.logger.Error("统计待回复联系表单失败", slog.Any("error", err))
		return
	}
	if pending == 0 {
		j.logger.Info("所有联系表单都已回复")
		return
	}
	j.logger.Warn("存在待回复的联系表单", slog.Int("pending", pending))
}
