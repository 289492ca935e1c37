/*
 * @Description: 监听页面与联系表单事件，处理与请求无关的后续工作
 * @Author: 安知鱼
 * @Date: 2025-07-18 17:30:00
 * @LastEditTime: 2026-10-14 16:08:51
 * @LastEditors: 安知鱼
 */
package listener

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/event"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/rss"
)

// SiteEventListener 页面变化时清除 RSS 缓存，新的联系表单提交时记录运维日志
type SiteEventListener struct {
	rssSvc rss.Service
}

// NewSiteEventListener 创建监听器并订阅事件
func NewSiteEventListener(eventBus *event.EventBus, rssSvc rss.Service) *SiteEventListener {
	l := &SiteEventListener{rssSvc: rssSvc}
	eventBus.Subscribe(event.PageChanged, l.handlePageChanged)
	eventBus.Subscribe(event.ContactSubmitted, l.handleContactSubmitted)
	eventBus.Subscribe(event.ContactTriaged, l.handleContactTriaged)
	return l
}

func (l *SiteEventListener) handlePageChanged(payload interface{}) {
	p, ok := payload.(event.PageChangedPayload)
	if !ok {
		log.Printf("[SiteEventListener] 错误：收到的PageChanged事件负载类型不正确")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.rssSvc.InvalidateCache(ctx); err != nil {
		log.Printf("[SiteEventListener] 页面 %d (%s) 变化后清除RSS缓存失败: %v", p.ID, p.URLPath, err)
	}
}

func (l *SiteEventListener) handleContactSubmitted(payload interface{}) {
	p, ok := payload.(event.ContactSubmittedPayload)
	if !ok {
		log.Printf("[SiteEventListener] 错误：收到的ContactSubmitted事件负载类型不正确")
		return
	}
	service := p.Service
	if service == "" {
		service = "未填写"
	}
	log.Printf("[SiteEventListener] 📬 收到新的联系表单 #%d，服务类型: %s", p.ID, service)
}

func (l *SiteEventListener) handleContactTriaged(payload interface{}) {
	if n, ok := payload.(int); ok && n > 0 {
		log.Printf("[SiteEventListener] %d 条联系表单的状态已更新", n)
	}
}
