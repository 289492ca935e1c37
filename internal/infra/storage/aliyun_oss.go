/*
 * @Description: 阿里云OSS存储提供者
 * @Author: 安知鱼
 * @Date: 2025-09-28 18:00:00
 * @LastEditTime: 2026-10-14 15:30:47
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
)

// AliyunOSSProvider 阿里云OSS存储提供者
type AliyunOSSProvider struct {
	bucket  *oss.Bucket
	baseURL string
}

// NewAliyunOSSProvider 创建阿里云OSS存储提供者，Endpoint 格式如 https://oss-cn-shanghai.aliyuncs.com
func NewAliyunOSSProvider(opts Options) (IStorageProvider, error) {
	if err := requireCredentials("阿里云OSS", opts); err != nil {
		return nil, err
	}
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("%w: 阿里云OSS缺少Endpoint配置", constant.ErrStorageNotConfigured)
	}

	client, err := oss.New(opts.Endpoint, opts.AccessKey, opts.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("创建阿里云OSS客户端失败: %w", err)
	}
	bucket, err := client.Bucket(opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("获取阿里云OSS存储桶失败: %w", err)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		host := strings.TrimPrefix(strings.TrimPrefix(opts.Endpoint, "https://"), "http://")
		baseURL = fmt.Sprintf("https://%s.%s", opts.Bucket, host)
	}
	log.Printf("[阿里云OSS] 成功创建客户端和存储桶: %s", opts.Bucket)
	return &AliyunOSSProvider{bucket: bucket, baseURL: baseURL}, nil
}

func (p *AliyunOSSProvider) Put(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if err := p.bucket.PutObject(key, file, oss.ContentType(contentType)); err != nil {
		log.Printf("[阿里云OSS] 上传失败: %v", err)
		return "", fmt.Errorf("上传文件到阿里云OSS失败: %w", err)
	}
	return publicURL(p.baseURL, key), nil
}

func (p *AliyunOSSProvider) Delete(ctx context.Context, key string) error {
	if err := p.bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("删除阿里云OSS对象 %s 失败: %w", key, err)
	}
	return nil
}
