// Package jobs runs the periodic background work of the service on a cron
// scheduler.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Default cron specs
const (
	DefaultSweepSpec    = "*/15 * * * *"
	DefaultRearmSpec    = "*/5 * * * *"
	DefaultMidnightSpec = "1 0 * * *"
	DefaultDigestSpec   = "0 7 * * 1"
)

// MissedSweeper records Missed logs for overdue doses
type MissedSweeper interface {
	SweepMissed(ctx context.Context, now time.Time, grace time.Duration) (int, error)
}

// Rearmer arms the reminders of every user
type Rearmer interface {
	RearmAll(ctx context.Context) (int, error)
}

// Config holds the cron specs and job tunables
type Config struct {
	SweepSpec    string
	RearmSpec    string
	MidnightSpec string
	DigestSpec   string
	MissedGrace  time.Duration
	JobTimeout   time.Duration
}

// Runner owns the cron scheduler
type Runner struct {
	cron    *cron.Cron
	cfg     Config
	sweeper MissedSweeper
	rearmer Rearmer
	digest  *Digest
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner creates a Runner. Any of sweeper, rearmer or digest may be nil to
// disable that job.
func NewRunner(cfg Config, sweeper MissedSweeper, rearmer Rearmer, digest *Digest, logger *zap.Logger) *Runner {
	if cfg.SweepSpec == "" {
		cfg.SweepSpec = DefaultSweepSpec
	}
	if cfg.RearmSpec == "" {
		cfg.RearmSpec = DefaultRearmSpec
	}
	if cfg.MidnightSpec == "" {
		cfg.MidnightSpec = DefaultMidnightSpec
	}
	if cfg.DigestSpec == "" {
		cfg.DigestSpec = DefaultDigestSpec
	}
	if cfg.MissedGrace <= 0 {
		cfg.MissedGrace = 2 * time.Hour
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 2 * time.Minute
	}

	return &Runner{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger{logger}))),
		cfg:     cfg,
		sweeper: sweeper,
		rearmer: rearmer,
		digest:  digest,
		logger:  logger,
		now:     time.Now,
	}
}

// Register adds the enabled jobs to the scheduler
func (r *Runner) Register() error {
	type job struct {
		name string
		spec string
		run  func(ctx context.Context)
	}

	jobs := make([]job, 0, 4)
	if r.sweeper != nil {
		jobs = append(jobs, job{"missed-sweep", r.cfg.SweepSpec, r.Sweep})
	}
	if r.rearmer != nil {
		jobs = append(jobs,
			job{"reminder-rearm", r.cfg.RearmSpec, r.Rearm},
			job{"reminder-midnight", r.cfg.MidnightSpec, r.Rearm},
		)
	}
	if r.digest != nil {
		jobs = append(jobs, job{"weekly-digest", r.cfg.DigestSpec, r.SendDigest})
	}

	for _, j := range jobs {
		j := j
		_, err := r.cron.AddFunc(j.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), r.cfg.JobTimeout)
			defer cancel()
			r.logger.Debug("running job", zap.String("job", j.name))
			j.run(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s with %q: %w", j.name, j.spec, err)
		}
	}
	return nil
}

// Start runs the scheduler in the background
func (r *Runner) Start() {
	r.cron.Start()
	r.logger.Info("background jobs started", zap.Int("jobs", len(r.cron.Entries())))
}

// Stop stops the scheduler and waits for running jobs until ctx is done
func (r *Runner) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		r.logger.Warn("background jobs did not finish before shutdown")
	}
}

// Sweep records missed doses
func (r *Runner) Sweep(ctx context.Context) {
	n, err := r.sweeper.SweepMissed(ctx, r.now(), r.cfg.MissedGrace)
	if err != nil {
		r.logger.Error("missed dose sweep failed", zap.Error(err), zap.Int("swept", n))
	}
}

// Rearm arms today's reminders for all users
func (r *Runner) Rearm(ctx context.Context) {
	n, err := r.rearmer.RearmAll(ctx)
	if err != nil {
		r.logger.Error("reminder re-arm failed", zap.Error(err))
		return
	}
	if n > 0 {
		r.logger.Info("reminders re-armed", zap.Int("armed", n))
	}
}

// SendDigest mails the weekly digest
func (r *Runner) SendDigest(ctx context.Context) {
	sent, err := r.digest.SendAll(ctx)
	if err != nil {
		r.logger.Error("weekly digest failed", zap.Error(err), zap.Int("sent", sent))
		return
	}
	r.logger.Info("weekly digest sent", zap.Int("sent", sent))
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
