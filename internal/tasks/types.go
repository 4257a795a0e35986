package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeWelcomeEmail        = "email:welcome"
	TypePasswordResetEmail  = "email:password_reset"
	TypeProfileCreatedEmail = "email:profile_created"
)

// WelcomeEmailPayload carries the data for the registration email.
type WelcomeEmailPayload struct {
	To               string `json:"to"`
	Name             string `json:"name"`
	UserID           string `json:"user_id"`
	ConfirmationCode string `json:"confirmation_code"`
}

func NewWelcomeEmailTask(payload WelcomeEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWelcomeEmail, data), nil
}

// PasswordResetEmailPayload carries the reset link email data.
type PasswordResetEmailPayload struct {
	To        string `json:"to"`
	ResetLink string `json:"reset_link"`
}

func NewPasswordResetEmailTask(payload PasswordResetEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePasswordResetEmail, data), nil
}

// ProfileCreatedEmailPayload carries the landlord/tenant profile notice.
type ProfileCreatedEmailPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Profile string `json:"profile"` // "landlord" or "tenant"
}

func NewProfileCreatedEmailTask(payload ProfileCreatedEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeProfileCreatedEmail, data), nil
}
