package notify_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kenf/property-management/internal/notify"
	"github.com/stretchr/testify/assert"
)

// A nil asynq client stands in for redis being down at startup; every
// notification must degrade to a logged skip, never an error.
func TestEnqueuer_NilClient(t *testing.T) {
	e := notify.NewEnqueuer(nil, slog.Default())
	ctx := context.Background()

	assert.NoError(t, e.WelcomeEmail(ctx, "user@x.com", "Grace", "AB12CD", "XYZQWE23"))
	assert.NoError(t, e.PasswordResetEmail(ctx, "user@x.com", "http://localhost:3000/reset-password?token=abc"))
	assert.NoError(t, e.ProfileCreatedEmail(ctx, "user@x.com", "Grace", "landlord"))
}
