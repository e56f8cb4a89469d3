package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vcscsvcscs/dosewise/internal/adherence"
	"github.com/vcscsvcscs/dosewise/internal/audit"
	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/pdf"
	"github.com/vcscsvcscs/dosewise/internal/timeutil"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// ReportRenderer renders report data into a document
type ReportRenderer interface {
	Generate(data *pdf.ReportData) ([]byte, error)
}

// ReportService manages adherence report generation
type ReportService struct {
	reports    ReportRepository
	schedules  ScheduleRepository
	logs       DoseLogRepository
	users      UserRepository
	aggregator *adherence.Aggregator
	blob       azure.BlobStorage
	renderer   ReportRenderer
	audit      audit.Recorder
	logger     *zap.Logger
	now        func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	reports ReportRepository,
	schedules ScheduleRepository,
	logs DoseLogRepository,
	users UserRepository,
	aggregator *adherence.Aggregator,
	blob azure.BlobStorage,
	renderer ReportRenderer,
	recorder audit.Recorder,
	logger *zap.Logger,
) *ReportService {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &ReportService{
		reports:    reports,
		schedules:  schedules,
		logs:       logs,
		users:      users,
		aggregator: aggregator,
		blob:       blob,
		renderer:   renderer,
		audit:      recorder,
		logger:     logger,
		now:        time.Now,
	}
}

// GenerateAdherenceReport renders a PDF covering the dose logs of [from, to],
// uploads it and records the report
func (s *ReportService) GenerateAdherenceReport(ctx context.Context, userID string, from, to time.Time) (*model.Report, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}
	if from.IsZero() || to.IsZero() {
		return nil, validationErrorf("start and end dates are required")
	}
	if to.Before(from) {
		return nil, validationErrorf("end date is before start date")
	}

	s.logger.Info("generating adherence report",
		zap.String("user_id", userID),
		zap.Time("start_date", from),
		zap.Time("end_date", to),
	)

	reportID := uuid.New().String()
	now := s.now()

	schedules, err := s.schedules.FindByUserID(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	rangeLogs, err := s.logs.FindInRange(ctx, userID, timeutil.StartOfDay(from), timeutil.EndOfDay(to))
	if err != nil {
		return nil, fmt.Errorf("failed to get dose logs: %w", err)
	}
	allLogs, err := s.logs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dose logs: %w", err)
	}

	userName := ""
	user, err := s.users.FindByID(ctx, userID)
	switch {
	case err == nil:
		userName = user.Name
	case errors.Is(err, ErrNotFound):
		if err := s.users.Ensure(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to ensure user: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	summary := s.aggregator.Summarize(now, schedules, allLogs)
	data := &pdf.ReportData{
		UserName:        userName,
		From:            from,
		To:              to,
		GeneratedAt:     now,
		AdherenceWeekly: summary.KPIs.AdherenceWeekly,
		CurrentStreak:   summary.KPIs.CurrentStreak,
		Achievements:    summary.Achievements,
		Schedules:       schedules,
		DoseLogs:        rangeLogs,
	}

	pdfBytes, err := s.renderer.Generate(data)
	if err != nil {
		s.logger.Error("failed to generate PDF", zap.Error(err), zap.String("report_id", reportID))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	filename := fmt.Sprintf("%s/%s_%s.pdf", userID, reportID, now.Format("20060102"))
	blobPath, err := s.blob.UploadPDF(ctx, filename, pdfBytes)
	if err != nil {
		s.logger.Error("failed to upload PDF to blob storage", zap.Error(err), zap.String("report_id", reportID))
		return nil, fmt.Errorf("failed to upload PDF: %w", err)
	}

	report := &model.Report{
		ID:             reportID,
		UserID:         userID,
		DateRangeStart: from,
		DateRangeEnd:   to,
		FilePath:       blobPath,
		GeneratedAt:    now,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.Error("failed to save report record", zap.Error(err), zap.String("report_id", reportID))
		return nil, fmt.Errorf("failed to save report record: %w", err)
	}

	if err := s.audit.Record(ctx, audit.Entry{
		UserID:        userID,
		OperationType: audit.OperationCreate,
		ResourceType:  audit.ResourceReport,
		ResourceID:    reportID,
	}); err != nil {
		s.logger.Warn("failed to record report audit entry", zap.Error(err))
	}

	s.logger.Info("adherence report generated",
		zap.String("report_id", reportID),
		zap.String("user_id", userID),
		zap.String("blob_path", blobPath),
	)
	return report, nil
}

// GetReport returns the PDF of one of the user's reports
func (s *ReportService) GetReport(ctx context.Context, userID, reportID string) ([]byte, error) {
	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get report record: %w", err)
	}
	if report.UserID != userID {
		return nil, fmt.Errorf("report %s: %w", reportID, ErrNotFound)
	}

	pdfBytes, err := s.blob.DownloadPDF(ctx, report.FilePath)
	if err != nil {
		s.logger.Error("failed to download PDF from blob storage",
			zap.Error(err),
			zap.String("report_id", reportID),
			zap.String("blob_path", report.FilePath),
		)
		return nil, fmt.Errorf("failed to download PDF: %w", err)
	}

	s.logger.Info("report retrieved",
		zap.String("report_id", reportID),
		zap.Int("size_bytes", len(pdfBytes)),
	)
	return pdfBytes, nil
}
