// Package notify turns in-request email sends into queued background
// jobs. Enqueue failures are logged and swallowed so a redis outage never
// fails a registration.
package notify

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/kenf/property-management/internal/tasks"
)

type Enqueuer struct {
	client *asynq.Client
	logger *slog.Logger
}

// NewEnqueuer wraps an asynq client. A nil client (redis unavailable at
// startup) degrades to logging that the email was skipped.
func NewEnqueuer(client *asynq.Client, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{client: client, logger: logger}
}

func (e *Enqueuer) WelcomeEmail(ctx context.Context, to, name, publicID, confirmationCode string) error {
	task, err := tasks.NewWelcomeEmailTask(tasks.WelcomeEmailPayload{
		To:               to,
		Name:             name,
		UserID:           publicID,
		ConfirmationCode: confirmationCode,
	})
	if err != nil {
		return err
	}
	return e.enqueue(ctx, task, "default")
}

func (e *Enqueuer) PasswordResetEmail(ctx context.Context, to, resetLink string) error {
	task, err := tasks.NewPasswordResetEmailTask(tasks.PasswordResetEmailPayload{
		To:        to,
		ResetLink: resetLink,
	})
	if err != nil {
		return err
	}
	// Reset links are time-limited; deliver ahead of other mail.
	return e.enqueue(ctx, task, "critical")
}

func (e *Enqueuer) ProfileCreatedEmail(ctx context.Context, to, name, profile string) error {
	task, err := tasks.NewProfileCreatedEmailTask(tasks.ProfileCreatedEmailPayload{
		To:      to,
		Name:    name,
		Profile: profile,
	})
	if err != nil {
		return err
	}
	return e.enqueue(ctx, task, "low")
}

func (e *Enqueuer) enqueue(ctx context.Context, task *asynq.Task, queue string) error {
	if e.client == nil {
		e.logger.Warn("email queue unavailable, skipping notification", "task", task.Type())
		return nil
	}
	if _, err := e.client.EnqueueContext(ctx, task, asynq.Queue(queue)); err != nil {
		return err
	}
	return nil
}
