package flash

import (
	"context"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndConsume(t *testing.T) {
	ctx := context.Background()
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)
	svc := NewService(cache)

	token, err := svc.Add(ctx, Message{Level: LevelSuccess, Text: "Thanks!"})
	require.NoError(t, err)

	messages, err := svc.Consume(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []Message{{Level: LevelSuccess, Text: "Thanks!"}}, messages)

	messages, err = svc.Consume(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, messages, "消息只能读取一次")
	assert.NotNil(t, messages)
}

func TestConsumeInvalidToken(t *testing.T) {
	ctx := context.Background()
	cache := utility.NewMemoryCacheService()
	t.Cleanup(cache.Stop)
	svc := NewService(cache)

	require.NoError(t, cache.Set(ctx, keyPrefix+"not-a-uuid", `[{"level":"error","text":"x"}]`, MessageTTL))
	messages, err := svc.Consume(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Empty(t, messages)

	messages, err = svc.Consume(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
