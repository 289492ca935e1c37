package utility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*MemoryCacheService, *time.Time) {
	t.Helper()
	svc := NewMemoryCacheService()
	t.Cleanup(svc.Stop)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestCache(t)

	require.NoError(t, svc.Set(ctx, "short", "v1", time.Minute))
	require.NoError(t, svc.Set(ctx, "forever", "v2", 0))

	val, err := svc.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, "v1", val)

	*now = now.Add(2 * time.Minute)
	val, err = svc.Get(ctx, "short")
	require.NoError(t, err)
	assert.Empty(t, val, "过期后视为未命中")

	val, _ = svc.Get(ctx, "forever")
	assert.Equal(t, "v2", val)

	val, _ = svc.Get(ctx, "missing")
	assert.Empty(t, val)
}

func TestMemoryCacheGetDel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCache(t)

	require.NoError(t, svc.Set(ctx, "flash:abc", "hello", time.Minute))
	val, err := svc.GetDel(ctx, "flash:abc")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	val, err = svc.GetDel(ctx, "flash:abc")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCache(t)

	for _, key := range []string{"page:render:/", "page:render:/about/", "contact:pending_count"} {
		require.NoError(t, svc.Set(ctx, key, "x", time.Minute))
	}

	n, err := svc.DeletePattern(ctx, "page:render:*")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	val, _ := svc.Get(ctx, "contact:pending_count")
	assert.Equal(t, "x", val)

	require.NoError(t, svc.Delete(ctx, "contact:pending_count", "absent"))
	val, _ = svc.Get(ctx, "contact:pending_count")
	assert.Empty(t, val)
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		pattern string
		want    bool
	}{
		{name: "精确匹配", key: "rss:feed", pattern: "rss:feed", want: true},
		{name: "精确不匹配", key: "rss:feed2", pattern: "rss:feed", want: false},
		{name: "前缀通配", key: "page:render:/blog/", pattern: "page:render:*", want: true},
		{name: "中间通配", key: "page:render:/blog/", pattern: "page:*/blog/", want: true},
		{name: "多个通配", key: "a:b:c:d", pattern: "a:*:c:*", want: true},
		{name: "前缀不同", key: "contact:x", pattern: "page:*", want: false},
		{name: "后缀不同", key: "page:render:/", pattern: "page:*/about/", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPattern(tt.key, tt.pattern))
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	svc := NewMemoryCacheService()
	svc.Stop()
	assert.NotPanics(t, svc.Stop)
}

func TestFallbackWithoutRedis(t *testing.T) {
	svc := NewCacheServiceWithFallback(nil)
	mem, ok := svc.(*MemoryCacheService)
	require.True(t, ok)
	t.Cleanup(mem.Stop)
	assert.Equal(t, CacheTypeMemory, GetCacheServiceType(svc))
}
