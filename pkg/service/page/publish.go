package page

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
)

// markPublished 设置发布状态，首次发布时间只记录一次
func (s *service) markPublished(p *model.Page) {
	now := s.now()
	p.Live = true
	if p.FirstPublishedAt == nil {
		p.FirstPublishedAt = &now
	}
	p.LastPublishedAt = &now
	p.GoLiveAt = nil
}

func (s *service) Publish(ctx context.Context, id uint) (*model.Page, error) {
	return s.updateMeta(ctx, id, s.markPublished)
}

func (s *service) Unpublish(ctx context.Context, id uint) (*model.Page, error) {
	return s.updateMeta(ctx, id, func(p *model.Page) {
		p.Live = false
		p.GoLiveAt = nil
	})
}

func (s *service) SchedulePublish(ctx context.Context, id uint, at time.Time) (*model.Page, error) {
	if !at.After(s.now()) {
		return s.Publish(ctx, id)
	}
	return s.updateMeta(ctx, id, func(p *model.Page) {
		t := at
		p.GoLiveAt = &t
	})
}

func (s *service) PublishDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.repo.FindDueForPublish(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("查询待发布页面失败: %w", err)
	}
	published := 0
	for _, p := range due {
		s.markPublished(p)
		if err := s.repo.UpdateMeta(ctx, p); err != nil {
			log.Printf("[Page] 定时发布页面 %d 失败: %v", p.ID, err)
			continue
		}
		published++
		s.changed(ctx, p)
	}
	return published, nil
}

func (s *service) SetPrivate(ctx context.Context, id uint, private bool) (*model.Page, error) {
	return s.updateMeta(ctx, id, func(p *model.Page) {
		p.Private = private
	})
}

func (s *service) updateMeta(ctx context.Context, id uint, mutate func(p *model.Page)) (*model.Page, error) {
	p, err := s.repo.FindMetaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(p)
	if err := s.repo.UpdateMeta(ctx, p); err != nil {
		return nil, err
	}
	s.changed(ctx, p)
	return p, nil
}
