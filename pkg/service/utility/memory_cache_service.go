/*
 * @Description: 内存缓存服务实现（用于 Redis 不可用时的降级方案）
 * @Author: 安知鱼
 * @Date: 2025-10-05 00:00:00
 * @LastEditTime: 2026-10-14 12:47:36
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"strings"
	"sync"
	"time"
)

// cacheItem 缓存项结构
type cacheItem struct {
	value      string
	expiration time.Time
}

func (item *cacheItem) isExpired(now time.Time) bool {
	return !item.expiration.IsZero() && now.After(item.expiration)
}

// MemoryCacheService 是基于内存的缓存服务实现
type MemoryCacheService struct {
	mu     sync.Mutex
	data   map[string]*cacheItem
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	now    func() time.Time
}

// NewMemoryCacheService 创建内存缓存服务实例，并每分钟清理一次过期数据
func NewMemoryCacheService() *MemoryCacheService {
	svc := &MemoryCacheService{
		data:   make(map[string]*cacheItem),
		ticker: time.NewTicker(time.Minute),
		done:   make(chan struct{}),
		now:    time.Now,
	}
	go svc.cleanupExpired()
	return svc
}

func (s *MemoryCacheService) cleanupExpired() {
	for {
		select {
		case <-s.ticker.C:
			s.mu.Lock()
			now := s.now()
			for key, item := range s.data {
				if item.isExpired(now) {
					delete(s.data, key)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Stop 停止清理任务，可重复调用
func (s *MemoryCacheService) Stop() {
	s.once.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}

func (s *MemoryCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	item := &cacheItem{value: value}
	if expiration > 0 {
		item.expiration = s.now().Add(expiration)
	}
	s.mu.Lock()
	s.data[key] = item
	s.mu.Unlock()
	return nil
}

func (s *MemoryCacheService) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(key), nil
}

func (s *MemoryCacheService) GetDel(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val := s.load(key)
	delete(s.data, key)
	return val, nil
}

// load 调用方需持有锁
func (s *MemoryCacheService) load(key string) string {
	item, ok := s.data[key]
	if !ok {
		return ""
	}
	if item.isExpired(s.now()) {
		delete(s.data, key)
		return ""
	}
	return item.value
}

func (s *MemoryCacheService) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.data, key)
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryCacheService) DeletePattern(ctx context.Context, pattern string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key := range s.data {
		if matchPattern(key, pattern) {
			delete(s.data, key)
			n++
		}
	}
	return n, nil
}

// matchPattern 简单的模式匹配（支持 * 通配符）
func matchPattern(s, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return s == pattern
	}
	parts := strings.Split(pattern, "*")
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		i := strings.Index(s, part)
		if i < 0 {
			return false
		}
		s = s[i+len(part):]
	}
	return strings.HasSuffix(s, last)
}
