package storage

import (
	"context"
	"io"
	"net/url"
	"path"
)

// File 一次待上传的图片
type File struct {
	Name        string // 原始文件名，仅用于保留扩展名
	ContentType string
	Body        io.Reader
	Size        int64
}

// ObjectStore 图片对象存储。Delete 对不存在的 key 幂等。
type ObjectStore interface {
	Upload(ctx context.Context, f File) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

// objectKey 从公开 URL 提取对象 key（最后一段路径）。
func objectKey(objectURL string) string {
	u, err := url.Parse(objectURL)
	if err != nil {
		return path.Base(objectURL)
	}
	return path.Base(u.Path)
}
