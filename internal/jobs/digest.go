package jobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/vcscsvcscs/dosewise/internal/adherence"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// DigestSubject is the subject line of the weekly digest
const DigestSubject = "Your weekly medication summary"

// UserLister lists every user
type UserLister interface {
	FindAll(ctx context.Context) ([]model.User, error)
}

// SummaryProvider computes the dashboard of a user
type SummaryProvider interface {
	Snapshot(ctx context.Context, userID string) (adherence.Summary, error)
}

// MailSender delivers an HTML email
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

var digestTemplate = template.Must(template.New("digest").Parse(`<html><body>
<h2>Hi{{if .Name}} {{.Name}}{{end}},</h2>
<p>Here is how your medication plan went this week.</p>
<ul>
<li>Weekly adherence: <strong>{{.AdherenceWeekly}}%</strong></li>
<li>Current streak: <strong>{{.CurrentStreak}} day{{if ne .CurrentStreak 1}}s{{end}}</strong></li>
</ul>
{{if .Achievements}}<h3>Achievements</h3>
<ul>{{range .Achievements}}
<li>{{.Emoji}} {{.Title}}: {{.Description}}</li>{{end}}
</ul>{{end}}
</body></html>`))

type digestView struct {
	Name            string
	AdherenceWeekly int
	CurrentStreak   int
	Achievements    []model.Achievement
}

// Digest builds and mails the weekly summary of every user with an email
type Digest struct {
	users     UserLister
	summaries SummaryProvider
	mailer    MailSender
	logger    *zap.Logger
}

// NewDigest creates a new Digest
func NewDigest(users UserLister, summaries SummaryProvider, mailer MailSender, logger *zap.Logger) *Digest {
	return &Digest{
		users:     users,
		summaries: summaries,
		mailer:    mailer,
		logger:    logger,
	}
}

// SendAll mails the digest to every user with an email address. Per-user
// failures are collected and do not stop the run.
func (d *Digest) SendAll(ctx context.Context) (int, error) {
	users, err := d.users.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	sent := 0
	var errs []error
	for _, u := range users {
		if u.Email == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := d.send(ctx, u); err != nil {
			d.logger.Warn("failed to send weekly digest", zap.Error(err), zap.String("user_id", u.ID))
			errs = append(errs, err)
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

func (d *Digest) send(ctx context.Context, u model.User) error {
	summary, err := d.summaries.Snapshot(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("failed to compute summary for %s: %w", u.ID, err)
	}

	body, err := RenderDigest(u.Name, summary)
	if err != nil {
		return err
	}
	if err := d.mailer.Send(u.Email, DigestSubject, body); err != nil {
		return fmt.Errorf("failed to mail digest to %s: %w", u.ID, err)
	}
	return nil
}

// RenderDigest renders the digest body for one user
func RenderDigest(name string, summary adherence.Summary) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, digestView{
		Name:            name,
		AdherenceWeekly: summary.KPIs.AdherenceWeekly,
		CurrentStreak:   summary.KPIs.CurrentStreak,
		Achievements:    summary.Achievements,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render digest: %w", err)
	}
	return buf.String(), nil
}
