/*
 * @Description: 定义了所有存储驱动需要遵守的接口和公共结构
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2026-10-14 15:21:40
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
)

// 支持的存储类型
const (
	TypeLocal      = "local"
	TypeAWSS3      = "s3"
	TypeAliyunOSS  = "oss"
	TypeTencentCOS = "cos"
	TypeQiniuKodo  = "kodo"
)

// Options 存储驱动的连接参数，来自配置文件的 Storage 段
type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// BaseURL 对象的公开访问前缀，本地存储默认为 /media
	BaseURL string
	// LocalDir 本地存储的根目录
	LocalDir string
}

// IStorageProvider 定义了所有存储提供者必须实现的接口。
type IStorageProvider interface {
	// Put 将文件流写入 key，返回公开访问 URL
	Put(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	// Delete 删除一个对象，对象不存在时不返回错误
	Delete(ctx context.Context, key string) error
}

// NewProvider 根据存储类型创建存储提供者
func NewProvider(storageType string, opts Options) (IStorageProvider, error) {
	switch strings.ToLower(storageType) {
	case "", TypeLocal:
		return NewLocalProvider(opts)
	case TypeAWSS3:
		return NewAWSS3Provider(opts)
	case TypeAliyunOSS:
		return NewAliyunOSSProvider(opts)
	case TypeTencentCOS:
		return NewTencentCOSProvider(opts)
	case TypeQiniuKodo:
		return NewQiniuKodoProvider(opts)
	default:
		return nil, fmt.Errorf("%w: 未知的存储类型 %q", constant.ErrStorageNotConfigured, storageType)
	}
}

// publicURL 拼接公开访问地址
func publicURL(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(key, "/")
}

// requireCredentials 校验云存储的必填参数
func requireCredentials(name string, opts Options) error {
	if opts.Bucket == "" {
		return fmt.Errorf("%w: %s缺少存储桶名称", constant.ErrStorageNotConfigured, name)
	}
	if opts.AccessKey == "" || opts.SecretKey == "" {
		return fmt.Errorf("%w: %s缺少AccessKey或SecretKey", constant.ErrStorageNotConfigured, name)
	}
	return nil
}
