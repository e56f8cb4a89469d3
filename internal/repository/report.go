package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// ReportRepository records generated adherence reports
type ReportRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores report metadata
func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	query := `
		INSERT INTO reports (id, user_id, date_range_start, date_range_end, file_path, generated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		report.ID,
		report.UserID,
		report.DateRangeStart,
		report.DateRangeEnd,
		report.FilePath,
		report.GeneratedAt,
	).Scan(&report.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create report", zap.Error(err), zap.String("report_id", report.ID))
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// FindByID retrieves report metadata by ID
func (r *ReportRepository) FindByID(ctx context.Context, reportID string) (*model.Report, error) {
	query := `
		SELECT id, user_id, date_range_start, date_range_end, file_path, generated_at, created_at
		FROM reports
		WHERE id = $1
	`

	var report model.Report
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&report.ID,
		&report.UserID,
		&report.DateRangeStart,
		&report.DateRangeEnd,
		&report.FilePath,
		&report.GeneratedAt,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", reportID, ErrNotFound)
		}
		r.logger.Error("failed to find report", zap.Error(err), zap.String("report_id", reportID))
		return nil, fmt.Errorf("failed to find report: %w", err)
	}
	return &report, nil
}
