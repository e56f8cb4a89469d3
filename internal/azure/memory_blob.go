package azure

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryBlobStorage keeps report documents in process memory. It backs local
// development when no storage account is configured.
type MemoryBlobStorage struct {
	mu      sync.RWMutex
	storage map[string][]byte
}

// NewMemoryBlobStorage creates an empty in-memory store
func NewMemoryBlobStorage() *MemoryBlobStorage {
	return &MemoryBlobStorage{storage: make(map[string][]byte)}
}

// UploadPDF stores a PDF under reports/<filename>
func (m *MemoryBlobStorage) UploadPDF(ctx context.Context, filename string, data []byte) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required")
	}
	blobName := fmt.Sprintf("reports/%s", filename)

	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	m.storage[blobName] = buf
	m.mu.Unlock()
	return blobName, nil
}

// DownloadPDF returns a copy of a stored PDF
func (m *MemoryBlobStorage) DownloadPDF(ctx context.Context, blobName string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.storage[blobName]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("blob not found: %s", blobName)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ListBlobs returns stored blob names in lexical order
func (m *MemoryBlobStorage) ListBlobs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.storage))
	for name := range m.storage {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
