package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"alora/config"
	"alora/infras/mail"
	mailMocks "alora/infras/mail/mocks"
	"alora/infras/otel/mocks"
	contactMocks "alora/internal/domains/contact/mocks"
	"alora/internal/domains/contact/model"
	"alora/internal/domains/contact/model/dto"
	"alora/internal/domains/contact/service"
	"alora/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mail.Username = "smtp-user@alora.test"
	cfg.Mail.DefaultFrom = "clinic@alora.test"
	cfg.Contact.Recipients = []string{"frontdesk@alora.test", " ", "doctor@alora.test"}

	return cfg
}

func validRequest() dto.SubmitContactRequest {
	return dto.SubmitContactRequest{
		Name:    " Ana ",
		Email:   "ana@example.com ",
		Subject: "Opening hours",
		Message: "Are you open on Sunday?",
	}
}

func TestResolveRecipients(t *testing.T) {
	tests := []struct {
		name        string
		recipients  []string
		username    string
		defaultFrom string
		want        []string
	}{
		{
			name:        "explicit list wins",
			recipients:  []string{"a@alora.test", "", "b@alora.test"},
			username:    "user@alora.test",
			defaultFrom: "from@alora.test",
			want:        []string{"a@alora.test", "b@alora.test"},
		},
		{
			name:        "falls back to username",
			username:    "user@alora.test",
			defaultFrom: "from@alora.test",
			want:        []string{"user@alora.test"},
		},
		{
			name:        "falls back to default sender",
			defaultFrom: "from@alora.test",
			want:        []string{"from@alora.test"},
		},
		{
			name: "nothing configured",
			want: []string{},
		},
		{
			name:       "list of blanks",
			recipients: []string{" ", ""},
			username:   "user@alora.test",
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Contact.Recipients = tt.recipients
			cfg.Mail.Username = tt.username
			cfg.Mail.DefaultFrom = tt.defaultFrom

			assert.Equal(t, tt.want, service.ResolveRecipients(cfg))
		})
	}
}

func TestSenderAddress(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.Username = "user@alora.test"
	assert.Equal(t, "user@alora.test", service.SenderAddress(cfg))

	cfg.Mail.DefaultFrom = "from@alora.test"
	assert.Equal(t, "from@alora.test", service.SenderAddress(cfg))
}

func TestContactService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contactMocks.NewMockContactRepository(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	svc := service.New(repo, newConfig(), mocks.NewOtel(), mailer)

	var stored model.ContactSubmission

	gomock.InOrder(
		mailer.EXPECT().Send(gomock.Any(), mail.Message{
			From:    "clinic@alora.test",
			To:      []string{"frontdesk@alora.test", "doctor@alora.test"},
			ReplyTo: "ana@example.com",
			Subject: "Opening hours",
			Body:    "From: Ana <ana@example.com>\n\nAre you open on Sunday?",
		}).Return(nil),
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, submission model.ContactSubmission) error {
			stored = submission

			return nil
		}),
	)

	err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Ana", stored.Name)
	assert.Equal(t, "Opening hours", stored.Subject)
	assert.False(t, stored.SubmissionDate.IsZero())
}

func TestContactService_Submit_MissingField(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(contactMocks.NewMockContactRepository(ctrl), newConfig(), mocks.NewOtel(), mailMocks.NewMockMailer(ctrl))

	req := validRequest()
	req.Subject = "   "

	err := svc.Submit(context.Background(), req)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, failure.KindMissingField, fail.Kind)
	assert.Equal(t, dto.MessageMissingFields, fail.Message)
	assert.Equal(t, []string{"subject"}, fail.Details)
}

func TestContactService_Submit_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(contactMocks.NewMockContactRepository(ctrl), &config.Config{}, mocks.NewOtel(), mailMocks.NewMockMailer(ctrl))

	err := svc.Submit(context.Background(), validRequest())

	assert.True(t, failure.Is(err, failure.KindMailNotConfigured))
	assert.Equal(t, dto.MessageMailNotConfigured, err.Error())
}

func TestContactService_Submit_StorageFailureAfterDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contactMocks.NewMockContactRepository(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)
	svc := service.New(repo, newConfig(), mocks.NewOtel(), mailer)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	assert.NoError(t, svc.Submit(context.Background(), validRequest()))
}

func TestContactService_Submit_UnparsableEmailStillRelayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contactMocks.NewMockContactRepository(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)
	svc := service.New(repo, newConfig(), mocks.NewOtel(), mailer)

	req := validRequest()
	req.Email = "ana at example"

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, message mail.Message) error {
		_, err := mail.BuildMessage(message)

		return err
	})
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, svc.Submit(context.Background(), req))
}

func TestContactService_Submit_DeliveryFailures(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		sendErr     error
		wantMessage string
	}{
		{
			name:        "invalid header",
			sendErr:     fmt.Errorf("%w: reply-to", mail.ErrInvalidHeader),
			wantMessage: dto.MessageInvalidHeader,
		},
		{
			name:        "transport failure hides detail",
			sendErr:     errors.New("dial tcp: i/o timeout"),
			wantMessage: dto.MessageDeliveryFailed,
		},
		{
			name:        "transport failure in debug",
			debug:       true,
			sendErr:     fmt.Errorf("failed to send mail: %w", &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{Err: "no such host", Name: "smtp.invalid"}}),
			wantMessage: "Email failed: *net.DNSError: lookup smtp.invalid: no such host",
		},
		{
			name:        "unwrapped failure in debug",
			debug:       true,
			sendErr:     io.EOF,
			wantMessage: "Email failed: *errors.errorString: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := contactMocks.NewMockContactRepository(ctrl)
			mailer := mailMocks.NewMockMailer(ctrl)

			cfg := newConfig()
			cfg.Server.Debug = tt.debug

			svc := service.New(repo, cfg, mocks.NewOtel(), mailer)

			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tt.sendErr)

			err := svc.Submit(context.Background(), validRequest())

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, failure.KindMailDeliveryFailed, fail.Kind)
			assert.Equal(t, tt.wantMessage, fail.Message)
		})
	}
}
