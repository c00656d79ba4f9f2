package mailer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/skillforge/marketplace-backend/internal/models"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSend(msgs ...*mail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msgs...)
	return nil
}

func render(t *testing.T, m *mail.Msg) string {
	t.Helper()
	var sb strings.Builder
	_, err := m.WriteTo(&sb)
	require.NoError(t, err)
	return sb.String()
}

func TestNotifyAccepted(t *testing.T) {
	sender := &fakeSender{}
	svc := NewWithSender(sender, "team@marketplace.local", "https://forms.example.com/onboarding")

	require.NoError(t, svc.Notify("dev@example.com", models.BidAccepted))
	require.Len(t, sender.sent, 1)

	raw := render(t, sender.sent[0])
	assert.Contains(t, raw, "Your Bid Has Been Accepted")
	assert.Contains(t, raw, "https://forms.example.com/onboarding")
	assert.Contains(t, raw, "text/html")
}

func TestNotifyRejected(t *testing.T) {
	sender := &fakeSender{}
	svc := NewWithSender(sender, "team@marketplace.local", "https://forms.example.com/onboarding")

	require.NoError(t, svc.Notify("dev@example.com", models.BidRejected))
	require.Len(t, sender.sent, 1)

	raw := render(t, sender.sent[0])
	assert.Contains(t, raw, "Your Bid Has Been Rejected")
	assert.Contains(t, raw, "Your bid has been rejected")
	assert.NotContains(t, raw, "forms.example.com")
}

func TestNotifyUnknownOutcome(t *testing.T) {
	sender := &fakeSender{}
	svc := NewWithSender(sender, "team@marketplace.local", "https://forms.example.com/onboarding")

	assert.Error(t, svc.Notify("dev@example.com", models.BidPending))
	assert.Empty(t, sender.sent)
}

func TestNotifySendFailureSurfaces(t *testing.T) {
	sender := &fakeSender{err: errors.New("relay down")}
	svc := NewWithSender(sender, "team@marketplace.local", "https://forms.example.com/onboarding")

	err := svc.Notify("dev@example.com", models.BidAccepted)
	assert.ErrorContains(t, err, "relay down")
}
