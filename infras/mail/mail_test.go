package mail_test

import (
	"context"
	"testing"

	"alora/config"
	"alora/infras/mail"
	"alora/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() mail.Message {
	return mail.Message{
		From:    "clinic@alora.test",
		To:      []string{"frontdesk@alora.test"},
		ReplyTo: "patient@example.com",
		Subject: "Opening hours",
		Body:    "From: Ana <patient@example.com>\n\nAre you open on Sunday?",
	}
}

func TestBuildMessage(t *testing.T) {
	msg, err := mail.BuildMessage(validMessage())
	require.NoError(t, err)

	assert.Equal(t, []string{"<frontdesk@alora.test>"}, msg.GetToString())
	assert.Equal(t, []string{"Opening hours"}, msg.GetGenHeader("Subject"))
	assert.Equal(t, []string{"<patient@example.com>"}, msg.GetGenHeader("Reply-To"))
}

func TestBuildMessage_UnparsableReplyToIsDropped(t *testing.T) {
	message := validMessage()
	message.ReplyTo = "patient@"

	msg, err := mail.BuildMessage(message)
	require.NoError(t, err)

	assert.Empty(t, msg.GetGenHeader("Reply-To"))
	assert.Equal(t, []string{"<frontdesk@alora.test>"}, msg.GetToString())
}

func TestBuildMessage_InvalidHeaders(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*mail.Message)
		wantErr error
	}{
		{
			name:    "no recipients",
			mutate:  func(m *mail.Message) { m.To = nil },
			wantErr: mail.ErrNoRecipients,
		},
		{
			name:    "subject with newline",
			mutate:  func(m *mail.Message) { m.Subject = "Hello\nBcc: victim@example.com" },
			wantErr: mail.ErrInvalidHeader,
		},
		{
			name:    "invalid sender",
			mutate:  func(m *mail.Message) { m.From = "not an address" },
			wantErr: mail.ErrInvalidHeader,
		},
		{
			name:    "invalid recipient",
			mutate:  func(m *mail.Message) { m.To = []string{"frontdesk"} },
			wantErr: mail.ErrInvalidHeader,
		},
		{
			name:    "reply-to with newline",
			mutate:  func(m *mail.Message) { m.ReplyTo = "patient@example.com\r\nBcc: victim@example.com" },
			wantErr: mail.ErrInvalidHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := validMessage()
			tt.mutate(&message)

			_, err := mail.BuildMessage(message)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSend_InvalidHeaderSkipsDial(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.Host = "smtp.invalid"

	message := validMessage()
	message.From = "broken"

	err := mail.New(cfg, mocks.NewOtel()).Send(context.Background(), message)

	assert.ErrorIs(t, err, mail.ErrInvalidHeader)
}

func TestSend_NoHost(t *testing.T) {
	cfg := &config.Config{}

	err := mail.New(cfg, mocks.NewOtel()).Send(context.Background(), validMessage())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, mail.ErrInvalidHeader)
}
