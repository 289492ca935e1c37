// Package flash 实现只消费一次的提示消息，消息内容保存在缓存中，浏览器只持有令牌
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/google/uuid"
)

const (
	// CookieName 保存消息令牌的 Cookie 名称
	CookieName = "fintaa_flash"
	// MessageTTL 消息在缓存中保留的时间
	MessageTTL = 5 * time.Minute

	keyPrefix = "flash:"
)

// Level 消息级别
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message 一条提示消息
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Service 提示消息服务
type Service interface {
	// Add 保存一条消息并返回它的令牌
	Add(ctx context.Context, msg Message) (string, error)
	// Consume 读取并删除令牌对应的消息，令牌不存在时返回空切片
	Consume(ctx context.Context, token string) ([]Message, error)
}

type service struct {
	cacheSvc utility.CacheService
}

func NewService(cacheSvc utility.CacheService) Service {
	return &service{cacheSvc: cacheSvc}
}

func (s *service) Add(ctx context.Context, msg Message) (string, error) {
	data, err := json.Marshal([]Message{msg})
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := s.cacheSvc.Set(ctx, keyPrefix+token, string(data), MessageTTL); err != nil {
		return "", fmt.Errorf("保存提示消息失败: %w", err)
	}
	return token, nil
}

func (s *service) Consume(ctx context.Context, token string) ([]Message, error) {
	messages := []Message{}
	if _, err := uuid.Parse(token); err != nil {
		return messages, nil
	}
	raw, err := s.cacheSvc.GetDel(ctx, keyPrefix+token)
	if err != nil {
		return messages, fmt.Errorf("读取提示消息失败: %w", err)
	}
	if raw == "" {
		return messages, nil
	}
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return []Message{}, fmt.Errorf("解析提示消息失败: %w", err)
	}
	return messages, nil
}
