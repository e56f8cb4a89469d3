package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

const doseLogColumns = `
	id, user_id, schedule_id, medication_name, time,
	scheduled_time, action_time, status, created_at
`

// DoseLogRepository manages the append-only dose log
type DoseLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewDoseLogRepository creates a new DoseLogRepository
func NewDoseLogRepository(db *pgxpool.Pool, logger *zap.Logger) *DoseLogRepository {
	return &DoseLogRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a dose log
func (r *DoseLogRepository) Create(ctx context.Context, l *model.DoseLog) error {
	query := `
		INSERT INTO dose_logs (
			id, user_id, schedule_id, medication_name, time,
			scheduled_time, action_time, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	var scheduleID *string
	if l.ScheduleID != "" {
		scheduleID = &l.ScheduleID
	}

	err := r.db.QueryRow(ctx, query,
		l.ID,
		l.UserID,
		scheduleID,
		l.MedicationName,
		l.Time,
		l.ScheduledTime,
		l.ActionTime,
		l.Status,
	).Scan(&l.CreatedAt)

	if err != nil {
		r.logger.Error("failed to create dose log",
			zap.Error(err),
			zap.String("user_id", l.UserID),
			zap.String("schedule_id", l.ScheduleID),
		)
		return fmt.Errorf("failed to create dose log: %w", err)
	}

	return nil
}

// FindByUserID retrieves every log of a user, most recent action first
func (r *DoseLogRepository) FindByUserID(ctx context.Context, userID string) ([]model.DoseLog, error) {
	query := `
		SELECT ` + doseLogColumns + `
		FROM dose_logs
		WHERE user_id = $1
		ORDER BY action_time DESC
	`
	return r.query(ctx, query, userID)
}

// FindRecent retrieves the latest limit logs of a user by creation time
func (r *DoseLogRepository) FindRecent(ctx context.Context, userID string, limit int) ([]model.DoseLog, error) {
	query := `
		SELECT ` + doseLogColumns + `
		FROM dose_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.query(ctx, query, userID, limit)
}

// FindInRange retrieves the logs of a user whose action time falls in [from, to]
func (r *DoseLogRepository) FindInRange(ctx context.Context, userID string, from, to time.Time) ([]model.DoseLog, error) {
	query := `
		SELECT ` + doseLogColumns + `
		FROM dose_logs
		WHERE user_id = $1 AND action_time BETWEEN $2 AND $3
		ORDER BY action_time ASC
	`
	return r.query(ctx, query, userID, from, to)
}

// FindForDose retrieves the logs of one dose of a schedule scheduled in [from, to)
func (r *DoseLogRepository) FindForDose(ctx context.Context, scheduleID, tod string, from, to time.Time) ([]model.DoseLog, error) {
	query := `
		SELECT ` + doseLogColumns + `
		FROM dose_logs
		WHERE schedule_id = $1 AND time = $2 AND scheduled_time >= $3 AND scheduled_time < $4
		ORDER BY action_time DESC
	`
	return r.query(ctx, query, scheduleID, tod, from, to)
}

// FindByID retrieves a dose log by ID
func (r *DoseLogRepository) FindByID(ctx context.Context, id string) (*model.DoseLog, error) {
	query := `SELECT ` + doseLogColumns + ` FROM dose_logs WHERE id = $1`

	l, err := scanDoseLog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("dose log %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find dose log: %w", err)
	}
	return l, nil
}

func (r *DoseLogRepository) query(ctx context.Context, query string, args ...any) ([]model.DoseLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query dose logs", zap.Error(err))
		return nil, fmt.Errorf("failed to query dose logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.DoseLog, 0)
	for rows.Next() {
		l, err := scanDoseLog(rows)
		if err != nil {
			r.logger.Error("failed to scan dose log", zap.Error(err))
			continue
		}
		logs = append(logs, *l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating dose logs", zap.Error(err))
		return nil, fmt.Errorf("error iterating dose logs: %w", err)
	}

	return logs, nil
}

func scanDoseLog(row pgx.Row) (*model.DoseLog, error) {
	var (
		l          model.DoseLog
		scheduleID *string
	)
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&scheduleID,
		&l.MedicationName,
		&l.Time,
		&l.ScheduledTime,
		&l.ActionTime,
		&l.Status,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if scheduleID != nil {
		l.ScheduleID = *scheduleID
	}
	return &l, nil
}
