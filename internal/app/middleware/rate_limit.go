/*
 * @Description: 频率限制中间件
 * @Author: 安知鱼
 * @Date: 2025-11-08 00:00:00
 * @LastEditTime: 2026-10-14 15:48:09
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipRateLimiter 用于存储每个IP地址的限流器
type ipRateLimiter struct {
	limiters map[string]*limiterInfo
	mu       sync.Mutex
	// 每个IP每分钟允许的请求数
	requestsPerMinute int
	// 突发请求数
	burst int
}

// limiterInfo 存储限流器及其最后访问时间
type limiterInfo struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

func newIPRateLimiter(requestsPerMinute, burst int) *ipRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		limiters:          make(map[string]*limiterInfo),
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
	}
}

// allow 判断该 IP 是否还能继续请求，顺带清理超过10分钟未访问的限流器
func (i *ipRateLimiter) allow(ip string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()
	info, exists := i.limiters[ip]
	if !exists {
		if len(i.limiters) > 1024 {
			for key, old := range i.limiters {
				if now.Sub(old.lastAccessed) > 10*time.Minute {
					delete(i.limiters, key)
				}
			}
		}
		info = &limiterInfo{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(i.requestsPerMinute)), i.burst),
		}
		i.limiters[ip] = info
	}
	info.lastAccessed = now
	return info.limiter.Allow()
}

// CustomRateLimit 创建一个自定义的频率限制中间件
// requestsPerMinute 为 0 时不限流
func CustomRateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	return RateLimitWith(requestsPerMinute, burst, func(c *gin.Context) {
		response.Fail(c, http.StatusTooManyRequests, "请求过于频繁，请稍后再试")
	})
}

// RateLimitWith 超出频率时调用 onLimited 代替后续处理器
func RateLimitWith(requestsPerMinute, burst int, onLimited gin.HandlerFunc) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newIPRateLimiter(requestsPerMinute, burst)

	return func(c *gin.Context) {
		if !limiter.allow(util.GetRealClientIP(c)) {
			onLimited(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OnlyForMethod 只对指定方法的请求执行 h，其余请求直接放行
func OnlyForMethod(method string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != method {
			c.Next()
			return
		}
		h(c)
	}
}
