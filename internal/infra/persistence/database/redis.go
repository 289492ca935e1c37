/*
 * @Description: 可选的 Redis 连接
 * @Author: 安知鱼
 * @Date: 2025-06-15 11:30:55
 * @LastEditTime: 2026-10-14 11:50:03
 * @LastEditors: 安知鱼
 */
package database

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 返回 Redis 客户端；未配置或连接失败时返回 nil，由上层降级为内存缓存
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	addr := cfg.GetString(config.KeyRedisAddr)
	if addr == "" {
		log.Println("⚠️  Redis 地址未配置，渲染缓存与提示消息将使用内存缓存")
		return nil, nil
	}
	db := cfg.GetInt(config.KeyRedisDB)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.GetString(config.KeyRedisPassword),
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("⚠️  连接 Redis (%s, DB %d) 失败: %v，将使用内存缓存", addr, db, err)
		rdb.Close()
		return nil, nil
	}

	log.Printf("✅ 成功连接到 Redis (%s, DB %d)", addr, db)
	return rdb, nil
}
