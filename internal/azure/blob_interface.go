package azure

import "context"

// BlobStorage stores generated report documents
type BlobStorage interface {
	UploadPDF(ctx context.Context, filename string, data []byte) (string, error)
	DownloadPDF(ctx context.Context, blobName string) ([]byte, error)
}

var (
	_ BlobStorage = (*BlobStorageClient)(nil)
	_ BlobStorage = (*MemoryBlobStorage)(nil)
)
