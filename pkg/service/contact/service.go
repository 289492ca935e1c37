/*
 * @Description: 联系表单提交与后台处理
 * @Author: 安知鱼
 * @Date: 2025-07-20 10:02:44
 * @LastEditTime: 2026-10-14 13:25:09
 * @LastEditors: 安知鱼
 */
package contact

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/event"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/anzhiyu-c/fintaa-site/pkg/idgen"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
)

// 访客看到的提示消息
const (
	SuccessMessage = "Thank you for your message! We will get back to you within 24 hours."
	FailureMessage = "There was an error sending your message. Please try again."
)

// PendingCountCacheKey 待处理数量的缓存键
const PendingCountCacheKey = "contact:pending_count"

const pendingCountTTL = 60 * time.Second

// Service 联系表单服务接口
type Service interface {
	// Submit 读取表单中的八个字段（缺省为空字符串）并插入一条记录
	Submit(ctx context.Context, form map[string]string) (*model.ContactSubmission, error)

	// MarkResponded 批量标记为已回复，返回受影响数量及提示消息
	MarkResponded(ctx context.Context, ids []uint) (int, string, error)
	// MarkPending 批量标记为待处理，返回受影响数量及提示消息
	MarkPending(ctx context.Context, ids []uint) (int, string, error)

	SetResponded(ctx context.Context, id uint, responded bool) (*model.ContactSubmission, error)
	UpdateNotes(ctx context.Context, id uint, notes string) (*model.ContactSubmission, error)

	List(ctx context.Context, opts *model.ListContactSubmissionsOptions) (*model.ContactSubmissionListResponse, error)
	Get(ctx context.Context, id uint) (*model.ContactSubmission, error)
	PendingCount(ctx context.Context) (int, error)
	// Delete 后台批量清理
	Delete(ctx context.Context, ids []uint) (int, error)

	ToDTO(s *model.ContactSubmission) (model.ContactSubmissionDTO, error)
}

type service struct {
	repo     repository.ContactSubmissionRepository
	cacheSvc utility.CacheService
	eventBus *event.EventBus
}

// NewService 创建联系表单服务
func NewService(
	repo repository.ContactSubmissionRepository,
	cacheSvc utility.CacheService,
	eventBus *event.EventBus,
) Service {
	return &service{
		repo:     repo,
		cacheSvc: cacheSvc,
		eventBus: eventBus,
	}
}

func (s *service) Submit(ctx context.Context, form map[string]string) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		Name:     form["name"],
		Email:    form["email"],
		Phone:    form["phone"],
		Company:  form["company"],
		Service:  form["service"],
		Budget:   form["budget"],
		Timeline: form["timeline"],
		Message:  form["message"],
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("保存联系表单失败: %w", err)
	}
	if err := s.cacheSvc.Delete(ctx, PendingCountCacheKey); err != nil {
		log.Printf("[Contact] 清除待处理数量缓存失败: %v", err)
	}
	if s.eventBus != nil {
		s.eventBus.Publish(event.ContactSubmitted, event.ContactSubmittedPayload{ID: sub.ID, Service: sub.Service})
	}
	return sub, nil
}

func (s *service) MarkResponded(ctx context.Context, ids []uint) (int, string, error) {
	n, err := s.setResponded(ctx, ids, true)
	if err != nil {
		return 0, "", err
	}
	return n, fmt.Sprintf("%d contact submission(s) marked as responded.", n), nil
}

func (s *service) MarkPending(ctx context.Context, ids []uint) (int, string, error) {
	n, err := s.setResponded(ctx, ids, false)
	if err != nil {
		return 0, "", err
	}
	return n, fmt.Sprintf("%d contact submission(s) marked as pending.", n), nil
}

func (s *service) setResponded(ctx context.Context, ids []uint, responded bool) (int, error) {
	n, err := s.repo.SetResponded(ctx, ids, responded)
	if err != nil {
		return 0, err
	}
	s.triaged(ctx, n)
	return n, nil
}

func (s *service) SetResponded(ctx context.Context, id uint, responded bool) (*model.ContactSubmission, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.setResponded(ctx, []uint{id}, responded); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateNotes(ctx context.Context, id uint, notes string) (*model.ContactSubmission, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateNotes(ctx, id, notes); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, opts *model.ListContactSubmissionsOptions) (*model.ContactSubmissionListResponse, error) {
	if opts == nil {
		opts = &model.ListContactSubmissionsOptions{}
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = model.DefaultSubmissionPageSize
	}
	if opts.PageSize > model.MaxSubmissionPageSize {
		opts.PageSize = model.MaxSubmissionPageSize
	}
	subs, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	list := make([]model.ContactSubmissionDTO, 0, len(subs))
	for _, sub := range subs {
		dto, err := s.ToDTO(sub)
		if err != nil {
			return nil, err
		}
		list = append(list, dto)
	}
	return &model.ContactSubmissionListResponse{
		List:     list,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

func (s *service) Get(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	return s.repo.FindByID(ctx, id)
}

// PendingCount 后台角标使用的待处理数量，缓存 60 秒
func (s *service) PendingCount(ctx context.Context) (int, error) {
	if cached, err := s.cacheSvc.Get(ctx, PendingCountCacheKey); err == nil && cached != "" {
		if n, err := strconv.Atoi(cached); err == nil {
			return n, nil
		}
	}
	n, err := s.repo.CountPending(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.cacheSvc.Set(ctx, PendingCountCacheKey, strconv.Itoa(n), pendingCountTTL); err != nil {
		log.Printf("[Contact] 缓存待处理数量失败: %v", err)
	}
	return n, nil
}

func (s *service) Delete(ctx context.Context, ids []uint) (int, error) {
	n, err := s.repo.Delete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("删除联系表单提交失败: %w", err)
	}
	s.triaged(ctx, n)
	return n, nil
}

// triaged 状态变化后立即失效缓存，再通知其他订阅者
func (s *service) triaged(ctx context.Context, affected int) {
	if affected == 0 {
		return
	}
	if err := s.cacheSvc.Delete(ctx, PendingCountCacheKey); err != nil {
		log.Printf("[Contact] 清除待处理数量缓存失败: %v", err)
	}
	if s.eventBus != nil {
		s.eventBus.Publish(event.ContactTriaged, affected)
	}
}

func (s *service) ToDTO(sub *model.ContactSubmission) (model.ContactSubmissionDTO, error) {
	publicID, err := idgen.GeneratePublicID(sub.ID, idgen.EntityTypeContactSubmission)
	if err != nil {
		return model.ContactSubmissionDTO{}, err
	}
	status := constant.StatusFor(sub.IsResponded)
	return model.ContactSubmissionDTO{
		ID:                publicID,
		ContactSubmission: *sub,
		ServiceDisplay:    sub.ServiceDisplay(),
		BudgetDisplay:     model.ChoiceLabel(model.BudgetChoices, sub.Budget),
		TimelineDisplay:   model.ChoiceLabel(model.TimelineChoices, sub.Timeline),
		ServiceEmoji:      constant.EmojiForService(sub.Service),
		StatusLabel:       status.Label,
		StatusColor:       status.Color,
	}, nil
}
