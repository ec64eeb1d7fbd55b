package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// MemStore 内存实现，供测试与本地开发（storage.driver=memory）使用。
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte // key -> body
	bucket  string
}

func NewMemStore(bucket string) *MemStore {
	return &MemStore{objects: make(map[string][]byte), bucket: bucket}
}

func (m *MemStore) Upload(_ context.Context, f File) (string, error) {
	body, err := io.ReadAll(f.Body)
	if err != nil {
		return "", err
	}
	key := uuid.New().String() + filepath.Ext(f.Name)
	m.mu.Lock()
	m.objects[key] = body
	m.mu.Unlock()
	return fmt.Sprintf("https://%s.s3.local/%s", m.bucket, key), nil
}

func (m *MemStore) Delete(_ context.Context, objectURL string) error {
	m.mu.Lock()
	delete(m.objects, objectKey(objectURL))
	m.mu.Unlock()
	return nil
}

// Has 判断 URL 对应对象是否仍在存储中（测试用）。
func (m *MemStore) Has(objectURL string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[objectKey(objectURL)]
	return ok
}

// Len 当前对象数（测试用）。
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
