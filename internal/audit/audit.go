package audit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// OperationType represents the type of operation performed
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
)

// ResourceType represents the type of resource being changed
type ResourceType string

const (
	ResourceSchedule    ResourceType = "schedule"
	ResourceDoseLog     ResourceType = "dose_log"
	ResourcePreferences ResourceType = "preferences"
	ResourceDevice      ResourceType = "device"
	ResourceReport      ResourceType = "report"
)

// Entry represents an audit log entry
type Entry struct {
	UserID         string
	OperationType  OperationType
	ResourceType   ResourceType
	ResourceID     string
	Timestamp      time.Time
	IPAddress      string
	UserAgent      string
	AdditionalData map[string]any
}

// Recorder stores audit entries
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Logger writes audit entries to the structured log and the audit_logs table
type Logger struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewLogger creates a new audit logger
func NewLogger(db *pgxpool.Pool, logger *zap.Logger) *Logger {
	return &Logger{
		db:     db,
		logger: logger,
	}
}

// Record creates an audit log entry
func (l *Logger) Record(ctx context.Context, entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	l.logger.Info("audit",
		zap.String("user_id", entry.UserID),
		zap.String("operation", string(entry.OperationType)),
		zap.String("resource_type", string(entry.ResourceType)),
		zap.String("resource_id", entry.ResourceID),
		zap.Time("timestamp", entry.Timestamp),
	)

	query := `
		INSERT INTO audit_logs (
			user_id, operation_type, resource_type, resource_id,
			timestamp, ip_address, user_agent, additional_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := l.db.Exec(ctx, query,
		entry.UserID,
		entry.OperationType,
		entry.ResourceType,
		entry.ResourceID,
		entry.Timestamp,
		entry.IPAddress,
		entry.UserAgent,
		entry.AdditionalData,
	)
	if err != nil {
		l.logger.Error("failed to write audit log",
			zap.Error(err),
			zap.String("user_id", entry.UserID),
			zap.String("operation", string(entry.OperationType)),
			zap.String("resource_type", string(entry.ResourceType)),
		)
		return err
	}

	return nil
}

// Nop discards audit entries
type Nop struct{}

// Record implements Recorder
func (Nop) Record(context.Context, Entry) error { return nil }
