/*
 * @Description: 腾讯云COS存储提供者
 * @Author: 安知鱼
 * @Date: 2025-09-28 17:00:00
 * @LastEditTime: 2026-10-14 15:33:15
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/tencentyun/cos-go-sdk-v5"
)

// TencentCOSProvider 腾讯云COS存储提供者
type TencentCOSProvider struct {
	client  *cos.Client
	baseURL string
}

// NewTencentCOSProvider 创建腾讯云COS存储提供者，Endpoint 为存储桶访问域名
// 如 https://examplebucket-1250000000.cos.ap-guangzhou.myqcloud.com
func NewTencentCOSProvider(opts Options) (IStorageProvider, error) {
	if opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("%w: 腾讯云COS缺少SecretID或SecretKey", constant.ErrStorageNotConfigured)
	}
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("%w: 腾讯云COS缺少访问域名配置", constant.ErrStorageNotConfigured)
	}
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("解析存储桶URL失败: %w", err)
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Timeout: 100 * time.Second,
		Transport: &cos.AuthorizationTransport{
			SecretID:  opts.AccessKey,
			SecretKey: opts.SecretKey,
		},
	})

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = opts.Endpoint
	}
	return &TencentCOSProvider{client: client, baseURL: baseURL}, nil
}

func (p *TencentCOSProvider) Put(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := p.client.Object.Put(ctx, key, file, &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{ContentType: contentType},
	})
	if err != nil {
		return "", fmt.Errorf("上传文件到腾讯云COS失败: %w", err)
	}
	return publicURL(p.baseURL, key), nil
}

func (p *TencentCOSProvider) Delete(ctx context.Context, key string) error {
	if _, err := p.client.Object.Delete(ctx, key); err != nil {
		return fmt.Errorf("删除腾讯云COS对象 %s 失败: %w", key, err)
	}
	return nil
}
