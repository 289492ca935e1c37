package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/infra/storage"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	provider, err := storage.NewLocalProvider(storage.Options{LocalDir: root})
	require.NoError(t, err)
	svc := NewService(provider).(*service)
	svc.now = func() time.Time { return time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC) }

	result, err := svc.Upload(ctx, "team.JPG", "", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "2025/07/"), result.Key)
	assert.True(t, strings.HasSuffix(result.Key, ".jpg"), result.Key)
	assert.Equal(t, "/media/"+result.Key, result.URL)

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(result.Key)))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, result.Key))
	assert.ErrorIs(t, svc.Delete(ctx, ""), constant.ErrBadRequest)
}

func TestUploadRejectsType(t *testing.T) {
	provider, err := storage.NewLocalProvider(storage.Options{LocalDir: t.TempDir()})
	require.NoError(t, err)
	svc := NewService(provider)

	_, err = svc.Upload(context.Background(), "notes.txt", "text/plain; charset=utf-8", strings.NewReader("x"))
	assert.ErrorIs(t, err, constant.ErrBadRequest)
}

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		want        string
	}{
		{name: "去掉参数", contentType: "image/PNG; q=1", filename: "a.png", want: "image/png"},
		{name: "按扩展名推断", contentType: "application/octet-stream", filename: "a.webp", want: "image/webp"},
		{name: "缺失类型", contentType: "", filename: "icon.svg", want: "image/svg+xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeContentType(tt.contentType, tt.filename))
		})
	}
}
