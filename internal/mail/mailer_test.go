package mail_test

import (
	"testing"

	"github.com/kenf/property-management/internal/mail"
	"github.com/kenf/property-management/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T) *mail.Mailer {
	t.Helper()

	m, err := mail.NewMailer(&config.SMTPConfig{
		Host: "localhost",
		Port: 1025,
		From: "noreply@example.com",
	}, "Kenf Management")
	require.NoError(t, err)
	return m
}

func TestMailer_Render(t *testing.T) {
	m := newTestMailer(t)

	t.Run("welcome template", func(t *testing.T) {
		body, err := m.Render("welcome.html", map[string]string{
			"AppName":          m.AppName(),
			"Name":             "Grace Njeri",
			"UserID":           "AB12CD",
			"ConfirmationCode": "XYZQWE23",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Grace Njeri")
		assert.Contains(t, body, "AB12CD")
		assert.Contains(t, body, "XYZQWE23")
		assert.Contains(t, body, "Kenf Management")
	})

	t.Run("reset template links the reset URL", func(t *testing.T) {
		body, err := m.Render("reset_password.html", map[string]string{
			"AppName":   m.AppName(),
			"ResetLink": "http://localhost:3000/reset-password?token=abc",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "http://localhost:3000/reset-password?token=abc")
	})

	t.Run("profile created template", func(t *testing.T) {
		body, err := m.Render("profile_created.html", map[string]string{
			"AppName": m.AppName(),
			"Name":    "Grace Njeri",
			"Profile": "landlord",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "landlord")
	})

	t.Run("unknown template is an error", func(t *testing.T) {
		_, err := m.Render("no_such_template.html", nil)
		assert.Error(t, err)
	})
}
