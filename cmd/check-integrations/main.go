package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/notify"
	"github.com/vcscsvcscs/dosewise/internal/pdf"
	"github.com/vcscsvcscs/dosewise/pkg/model"
)

// check-integrations exercises the optional external services against real
// credentials. Services without credentials are skipped.
func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	failed := false

	logger.Info("=== Checking Azure OpenAI ===")
	if err := checkOpenAI(ctx, logger); err != nil {
		logger.Error("OpenAI check failed", zap.Error(err))
		failed = true
	}

	logger.Info("=== Checking Azure Blob Storage ===")
	if err := checkBlobStorage(ctx, logger); err != nil {
		logger.Error("Blob storage check failed", zap.Error(err))
		failed = true
	}

	logger.Info("=== Checking Firebase credentials ===")
	if err := checkFirebase(ctx, logger); err != nil {
		logger.Error("Firebase check failed", zap.Error(err))
		failed = true
	}

	if failed {
		os.Exit(1)
	}
	logger.Info("=== All checks completed ===")
}

func checkOpenAI(ctx context.Context, logger *zap.Logger) error {
	endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")
	apiKey := os.Getenv("AZURE_OPENAI_API_KEY")
	deployment := os.Getenv("AZURE_OPENAI_DEPLOYMENT")
	if endpoint == "" || apiKey == "" || deployment == "" {
		logger.Warn("skipping: set AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY and AZURE_OPENAI_DEPLOYMENT")
		return nil
	}

	client, err := azure.NewOpenAIClient(endpoint, apiKey, deployment, logger)
	if err != nil {
		return fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	reply, err := client.Chat(ctx,
		"You are a medication reminder assistant. Answer in one sentence.",
		[]azure.ChatMessage{{Role: azure.RoleUser, Content: "When should I take a dose scheduled for 08:00?"}},
	)
	if err != nil {
		return fmt.Errorf("chat completion failed: %w", err)
	}

	logger.Info("OpenAI response received", zap.String("response", reply))
	return nil
}

func checkBlobStorage(ctx context.Context, logger *zap.Logger) error {
	accountName := os.Getenv("AZURE_STORAGE_ACCOUNT_NAME")
	accountKey := os.Getenv("AZURE_STORAGE_ACCOUNT_KEY")
	if accountName == "" || accountKey == "" {
		logger.Warn("skipping: set AZURE_STORAGE_ACCOUNT_NAME and AZURE_STORAGE_ACCOUNT_KEY")
		return nil
	}
	container := os.Getenv("AZURE_STORAGE_REPORT_CONTAINER")
	if container == "" {
		container = "adherence-reports"
	}

	client, err := azure.NewBlobStorageClient(accountName, accountKey, container, logger)
	if err != nil {
		return fmt.Errorf("failed to create Blob Storage client: %w", err)
	}

	now := time.Now()
	data, err := pdf.NewPDFGenerator(logger).Generate(&pdf.ReportData{
		UserName:    "Integration Check",
		From:        now.AddDate(0, 0, -7),
		To:          now,
		GeneratedAt: now,
		Schedules: []model.Schedule{{
			Name:      "Check",
			Dosage:    "1 tablet",
			Times:     []string{"08:00"},
			StartDate: now.AddDate(0, 0, -7),
			Frequency: model.FrequencyDaily,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	blobName, err := client.UploadPDF(ctx, fmt.Sprintf("integration-check-%d.pdf", now.Unix()), data)
	if err != nil {
		return fmt.Errorf("PDF upload failed: %w", err)
	}
	logger.Info("PDF uploaded", zap.String("blob_name", blobName))

	downloaded, err := client.DownloadPDF(ctx, blobName)
	if err != nil {
		return fmt.Errorf("PDF download failed: %w", err)
	}
	if !bytes.Equal(downloaded, data) {
		return fmt.Errorf("downloaded PDF doesn't match uploaded PDF")
	}

	logger.Info("PDF downloaded and verified", zap.Int("size_bytes", len(downloaded)))
	return nil
}

func checkFirebase(ctx context.Context, logger *zap.Logger) error {
	credentials := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if credentials == "" {
		logger.Warn("skipping: set FIREBASE_CREDENTIALS_FILE")
		return nil
	}

	if _, err := notify.NewFirebaseMessaging(ctx, credentials); err != nil {
		return err
	}
	logger.Info("Firebase messaging client initialized")
	return nil
}
