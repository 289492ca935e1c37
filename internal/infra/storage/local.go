package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalProvider 将媒体文件保存在本地目录，由 /media 路由对外提供
type LocalProvider struct {
	root    string
	baseURL string
}

// NewLocalProvider 创建本地存储提供者，目录不存在时自动创建
func NewLocalProvider(opts Options) (IStorageProvider, error) {
	root := opts.LocalDir
	if root == "" {
		root = "data/media"
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("创建本地存储目录 '%s' 失败: %w", root, err)
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = "/media"
	}
	return &LocalProvider{root: root, baseURL: baseURL}, nil
}

// Root 本地存储根目录
func (p *LocalProvider) Root() string {
	return p.root
}

// physicalPath 将对象键限制在根目录内
func (p *LocalProvider) physicalPath(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("非法的对象键: %q", key)
	}
	return filepath.Join(p.root, cleaned), nil
}

func (p *LocalProvider) Put(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	dst, err := p.physicalPath(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}

	// 先写临时文件再重命名
	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("同步文件到磁盘失败: %w", err)
	}
	out.Close()
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("保存文件失败: %w", err)
	}
	return publicURL(p.baseURL, key), nil
}

func (p *LocalProvider) Delete(ctx context.Context, key string) error {
	path, err := p.physicalPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除本地文件失败: %w", err)
	}
	return nil
}
