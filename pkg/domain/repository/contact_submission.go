package repository

import (
	"context"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
)

// ContactSubmissionRepository 联系表单提交仓库接口
type ContactSubmissionRepository interface {
	BaseRepository[model.ContactSubmission]

	// FindByEmail 按邮箱查找最早的一条提交
	FindByEmail(ctx context.Context, email string) (*model.ContactSubmission, error)

	// List 按条件过滤分页，新提交在前
	List(ctx context.Context, opts *model.ListContactSubmissionsOptions) ([]*model.ContactSubmission, int, error)

	// SetResponded 批量设置 is_responded，返回受影响的行数
	SetResponded(ctx context.Context, ids []uint, responded bool) (int, error)

	// UpdateNotes 只更新 notes 列
	UpdateNotes(ctx context.Context, id uint, notes string) error

	// CountPending 统计未回复的提交
	CountPending(ctx context.Context) (int, error)

	// Delete 批量删除，返回删除的行数
	Delete(ctx context.Context, ids []uint) (int, error)

	// DeleteAll 删除所有提交
	DeleteAll(ctx context.Context) (int, error)
}
