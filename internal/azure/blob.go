package azure

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"go.uber.org/zap"
)

// BlobStorageClient stores report PDFs in an Azure Blob Storage container
type BlobStorageClient struct {
	client        *azblob.Client
	containerName string
	logger        *zap.Logger
}

// NewBlobStorageClient creates a new Azure Blob Storage client
func NewBlobStorageClient(accountName, accountKey, containerName string, logger *zap.Logger) (*BlobStorageClient, error) {
	if accountName == "" || accountKey == "" || containerName == "" {
		return nil, fmt.Errorf("accountName, accountKey, and containerName are required")
	}

	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", accountName)

	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &BlobStorageClient{
		client:        client,
		containerName: containerName,
		logger:        logger,
	}, nil
}

// UploadPDF stores a rendered adherence report under reports/ and returns its blob name
func (c *BlobStorageClient) UploadPDF(ctx context.Context, filename string, data []byte) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("report filename is required")
	}
	blobName := reportBlobName(filename)

	c.logger.Info("storing adherence report",
		zap.String("blob_name", blobName),
		zap.Int("size_bytes", len(data)),
	)

	blobClient := c.client.ServiceClient().NewContainerClient(c.containerName).NewBlockBlobClient(blobName)
	if _, err := blobClient.UploadBuffer(ctx, data, reportUploadOptions()); err != nil {
		c.logger.Error("failed to store adherence report",
			zap.String("blob_name", blobName),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to store report %s: %w", blobName, err)
	}

	return blobName, nil
}

// DownloadPDF fetches a stored adherence report
func (c *BlobStorageClient) DownloadPDF(ctx context.Context, blobName string) ([]byte, error) {
	blobClient := c.client.ServiceClient().NewContainerClient(c.containerName).NewBlockBlobClient(blobName)

	resp, err := blobClient.DownloadStream(ctx, nil)
	if err != nil {
		c.logger.Error("failed to fetch adherence report",
			zap.String("blob_name", blobName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to fetch report %s: %w", blobName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", blobName, err)
	}

	c.logger.Debug("adherence report fetched",
		zap.String("blob_name", blobName),
		zap.Int("size_bytes", len(data)),
	)
	return data, nil
}

func reportBlobName(filename string) string {
	return "reports/" + filename
}

// reportUploadOptions serves stored reports as PDFs
func reportUploadOptions() *azblob.UploadBufferOptions {
	return &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType:        to.Ptr("application/pdf"),
			BlobContentDisposition: to.Ptr("inline"),
		},
		Metadata: map[string]*string{
			"kind": to.Ptr("adherence-report"),
		},
	}
}
