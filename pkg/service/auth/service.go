/*
 * @Description: 后台管理员认证
 * @Author: 安知鱼
 * @Date: 2025-08-22 12:41:16
 * @LastEditTime: 2026-10-14 14:44:38
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/auth"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/security"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/utils"
	"github.com/anzhiyu-c/fintaa-site/pkg/config"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
)

// LoginResult 登录成功后返回的令牌
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Service 认证服务接口
type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ParseAccessToken(ctx context.Context, token string) (*auth.CustomClaims, error)
}

type service struct {
	username     string
	passwordHash string
	jwtSecret    []byte
}

// NewService 创建认证服务，passwordHash 为 bcrypt 哈希
func NewService(username, passwordHash string, jwtSecret []byte) Service {
	return &service{
		username:     username,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

// NewServiceFromConfig 从配置读取管理员账号。
// 只配置明文密码时在启动时计算哈希；JWT 密钥为空时随机生成。
func NewServiceFromConfig(cfg *config.Config) (Service, error) {
	hash := cfg.GetString(config.KeyAdminPasswordHash)
	if hash == "" {
		if plain := cfg.GetString(config.KeyAdminPassword); plain != "" {
			h, err := security.HashPassword(plain)
			if err != nil {
				return nil, fmt.Errorf("计算管理员密码哈希失败: %w", err)
			}
			hash = h
		} else {
			log.Println("⚠️ 未配置管理员密码，后台登录已禁用")
		}
	}

	secret := cfg.GetString(config.KeyJWTSecret)
	if secret == "" {
		s, err := utils.GenerateRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("生成 JWT 密钥失败: %w", err)
		}
		secret = s
		log.Println("提示: 未配置 JWTSecret，已随机生成，重启后需要重新登录")
	}
	return NewService(cfg.GetString(config.KeyAdminUsername), hash, []byte(secret)), nil
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// 用户名不匹配时也执行哈希比较
	passOK := security.CheckPasswordHash(password, s.passwordHash)
	if !userOK || !passOK {
		return nil, fmt.Errorf("%w: 用户名或密码错误", constant.ErrUnauthorized)
	}
	token, expiresAt, err := auth.GenerateToken(s.username, s.jwtSecret, auth.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}

func (s *service) ParseAccessToken(ctx context.Context, token string) (*auth.CustomClaims, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidToken, err)
	}
	if claims.Username != s.username {
		return nil, constant.ErrInvalidToken
	}
	return claims, nil
}
