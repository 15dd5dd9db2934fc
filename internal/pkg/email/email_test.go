package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/hrflo/hrflo-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, cfg config.SMTPConfig) *emailServiceImpl {
	t.Helper()
	svc, err := NewEmailService(cfg)
	require.NoError(t, err)
	impl := svc.(*emailServiceImpl)
	impl.backoff = 0
	return impl
}

func TestSendWelcome_SkipsWithoutHost(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{})
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without SMTP host")
		return nil
	}

	assert.NoError(t, svc.SendWelcome("new@example.com", WelcomeData{Name: "New"}))
}

func TestSendWelcome_RendersTemplate(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{Host: "smtp.local", Port: 2525, From: "hr@example.com", FromName: "HR"})

	var gotAddr string
	var gotMsg string
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotMsg = string(msg)
		assert.Nil(t, a)
		assert.Equal(t, []string{"new@example.com"}, to)
		return nil
	}

	err := svc.SendWelcome("new@example.com", WelcomeData{
		Name:      "Nia <script>",
		Email:     "new@example.com",
		Position:  "Analyst",
		StartDate: "2026-11-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.local:2525", gotAddr)
	assert.Contains(t, gotMsg, "From: HR <hr@example.com>\r\n")
	assert.Contains(t, gotMsg, "Subject: Welcome to the team\r\n")
	assert.Contains(t, gotMsg, "Analyst")
	assert.Contains(t, gotMsg, "2026-11-02")
	assert.False(t, strings.Contains(gotMsg, "<script>"), "names are html escaped")
}

func TestSendWelcome_RetriesThenFails(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{Host: "smtp.local", Port: 25})

	attempts := 0
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		attempts++
		return errors.New("connection refused")
	}

	err := svc.SendWelcome("x@example.com", WelcomeData{Name: "X"})
	assert.Error(t, err)
	assert.Equal(t, maxRetries, attempts)
}
