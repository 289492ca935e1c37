package auth

import (
	"context"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/security"
	"github.com/anzhiyu-c/fintaa-site/pkg/config"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := security.HashPassword("correct horse")
	require.NoError(t, err)
	svc := NewService("admin", hash, []byte("secret"))

	result, err := svc.Login(ctx, "admin", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := svc.ParseAccessToken(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "密码错误", username: "admin", password: "wrong"},
		{name: "用户名错误", username: "root", password: "correct horse"},
		{name: "空密码", username: "admin", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, constant.ErrUnauthorized)
		})
	}
}

func TestParseAccessTokenRejectsOtherAdmin(t *testing.T) {
	ctx := context.Background()
	hash, err := security.HashPassword("pw")
	require.NoError(t, err)
	other := NewService("someone", hash, []byte("secret"))
	result, err := other.Login(ctx, "someone", "pw")
	require.NoError(t, err)

	svc := NewService("admin", hash, []byte("secret"))
	_, err = svc.ParseAccessToken(ctx, result.AccessToken)
	assert.ErrorIs(t, err, constant.ErrInvalidToken)
}

func TestNewServiceFromConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := config.NewConfigFromFile(t.TempDir() + "/absent.ini")
	require.NoError(t, err)

	// 未配置密码时登录被禁用
	svc, err := NewServiceFromConfig(cfg)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "admin", "")
	assert.ErrorIs(t, err, constant.ErrUnauthorized)

	cfg.Set(config.KeyAdminPassword, "plain-pass")
	cfg.Set(config.KeyJWTSecret, "fixed")
	svc, err = NewServiceFromConfig(cfg)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "admin", "plain-pass")
	assert.NoError(t, err)
}
