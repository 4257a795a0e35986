package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/kenf/property-management/internal/mail"
)

type Handler struct {
	logger *slog.Logger
	mailer *mail.Mailer
}

func NewHandler(logger *slog.Logger, mailer *mail.Mailer) *Handler {
	return &Handler{logger: logger, mailer: mailer}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeWelcomeEmail, h.HandleWelcomeEmail)
	mux.HandleFunc(TypePasswordResetEmail, h.HandlePasswordResetEmail)
	mux.HandleFunc(TypeProfileCreatedEmail, h.HandleProfileCreatedEmail)
}

func (h *Handler) HandleWelcomeEmail(ctx context.Context, t *asynq.Task) error {
	var payload WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	subject := fmt.Sprintf("Welcome to %s! Confirm Your Account", h.mailer.AppName())
	err := h.mailer.Send(payload.To, subject, "welcome.html", map[string]string{
		"AppName":          h.mailer.AppName(),
		"Name":             payload.Name,
		"UserID":           payload.UserID,
		"ConfirmationCode": payload.ConfirmationCode,
	})
	if err != nil {
		h.logger.Error("failed to deliver welcome email", "to", payload.To, "error", err)
		return err
	}

	h.logger.Info("delivered welcome email", "to", payload.To)
	return nil
}

func (h *Handler) HandlePasswordResetEmail(ctx context.Context, t *asynq.Task) error {
	var payload PasswordResetEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	err := h.mailer.Send(payload.To, "Password Reset Request", "reset_password.html", map[string]string{
		"AppName":   h.mailer.AppName(),
		"ResetLink": payload.ResetLink,
	})
	if err != nil {
		h.logger.Error("failed to deliver password reset email", "to", payload.To, "error", err)
		return err
	}

	h.logger.Info("delivered password reset email", "to", payload.To)
	return nil
}

func (h *Handler) HandleProfileCreatedEmail(ctx context.Context, t *asynq.Task) error {
	var payload ProfileCreatedEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	subject := fmt.Sprintf("Welcome to %s!", h.mailer.AppName())
	err := h.mailer.Send(payload.To, subject, "profile_created.html", map[string]string{
		"AppName": h.mailer.AppName(),
		"Name":    payload.Name,
		"Profile": payload.Profile,
	})
	if err != nil {
		h.logger.Error("failed to deliver profile created email", "to", payload.To, "error", err)
		return err
	}

	h.logger.Info("delivered profile created email", "to", payload.To, "profile", payload.Profile)
	return nil
}
