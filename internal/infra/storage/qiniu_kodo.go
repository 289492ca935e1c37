/*
 * @Description: 七牛云Kodo存储提供者
 * @Author: 安知鱼
 * @Date: 2025-09-28 20:00:00
 * @LastEditTime: 2026-10-14 15:36:29
 * @LastEditors: 安知鱼
 */
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/qiniu/go-sdk/v7/auth"
	"github.com/qiniu/go-sdk/v7/storage"
)

// QiniuKodoProvider 七牛云存储提供者，BaseURL 必须配置为绑定的访问域名
type QiniuKodoProvider struct {
	mac     *auth.Credentials
	cfg     *storage.Config
	bucket  string
	baseURL string
}

func NewQiniuKodoProvider(opts Options) (IStorageProvider, error) {
	if err := requireCredentials("七牛云", opts); err != nil {
		return nil, err
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("七牛云缺少访问域名配置")
	}
	return &QiniuKodoProvider{
		mac:     auth.New(opts.AccessKey, opts.SecretKey),
		cfg:     uploadConfig(opts.Region),
		bucket:  opts.Bucket,
		baseURL: opts.BaseURL,
	}, nil
}

// uploadConfig 根据区域标识选择上传区域
// z0=华东, z1=华北, z2=华南, na0=北美, as0=东南亚
func uploadConfig(region string) *storage.Config {
	cfg := &storage.Config{UseHTTPS: true}
	switch strings.ToLower(region) {
	case "z1":
		cfg.Region = &storage.ZoneHuabei
	case "z2":
		cfg.Region = &storage.ZoneHuanan
	case "na0":
		cfg.Region = &storage.ZoneBeimei
	case "as0":
		cfg.Region = &storage.ZoneXinjiapo
	default:
		cfg.Region = &storage.ZoneHuadong
	}
	return cfg
}

func (p *QiniuKodoProvider) Put(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	putPolicy := storage.PutPolicy{
		Scope: fmt.Sprintf("%s:%s", p.bucket, key),
	}
	upToken := putPolicy.UploadToken(p.mac)

	// 七牛云SDK需要知道文件大小
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("读取上传文件失败: %w", err)
	}

	ret := storage.PutRet{}
	putExtra := storage.PutExtra{MimeType: contentType}
	formUploader := storage.NewFormUploader(p.cfg)
	if err := formUploader.Put(ctx, &ret, upToken, key, bytes.NewReader(data), int64(len(data)), &putExtra); err != nil {
		log.Printf("[七牛云] 上传失败: %v", err)
		return "", fmt.Errorf("上传文件到七牛云失败: %w", err)
	}
	return publicURL(p.baseURL, key), nil
}

func (p *QiniuKodoProvider) Delete(ctx context.Context, key string) error {
	bucketManager := storage.NewBucketManager(p.mac, p.cfg)
	if err := bucketManager.Delete(p.bucket, key); err != nil {
		return fmt.Errorf("删除七牛云对象 %s 失败: %w", key, err)
	}
	return nil
}
