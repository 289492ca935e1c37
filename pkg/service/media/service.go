package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/infra/storage"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/google/uuid"
)

// MaxUploadSize 单个媒体文件的大小上限
const MaxUploadSize = 10 << 20

// allowedTypes 允许上传的媒体类型
var allowedTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// UploadResult 上传结果
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Service 页面图片等媒体文件的上传服务
type Service interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	provider storage.IStorageProvider
	now      func() time.Time
}

func NewService(provider storage.IStorageProvider) Service {
	return &service{provider: provider, now: time.Now}
}

// Upload 以 年/月/uuid.扩展名 作为对象键保存文件
func (s *service) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*UploadResult, error) {
	contentType = normalizeContentType(contentType, filename)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: 不支持的文件类型 %q", constant.ErrBadRequest, contentType)
	}

	key := path.Join(s.now().Format("2006/01"), uuid.NewString()+ext)
	url, err := s.provider.Put(ctx, key, io.LimitReader(file, MaxUploadSize), contentType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{Key: key, URL: url}, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: 对象键不能为空", constant.ErrBadRequest)
	}
	return s.provider.Delete(ctx, key)
}

// normalizeContentType 去掉参数部分，缺失时按扩展名推断
func normalizeContentType(contentType, filename string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != "application/octet-stream" {
		return strings.ToLower(mediaType)
	}
	if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(filename))); byExt != "" {
		mediaType, _, _ := mime.ParseMediaType(byExt)
		return mediaType
	}
	return contentType
}
