package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alora/config"
	"alora/infras/otel"
	"alora/shared/constant"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

var (
	ErrInvalidHeader = errors.New("invalid header found")
	ErrNoRecipients  = errors.New("no recipients")
)

type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer relays plain text messages over SMTP. Each Send dials, delivers and closes its own connection.
type Mailer interface {
	Send(ctx context.Context, message Message) (err error)
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, message Message) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"mail.host":       m.config.Mail.Host,
		"mail.recipients": len(message.To),
	})

	msg, err := BuildMessage(message)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.config.Mail.Host, m.clientOptions()...)
	if err != nil {
		log.Error().Err(err).Str("host", m.config.Mail.Host).Msg("failed to create mail client")

		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("host", m.config.Mail.Host).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Int("recipients", len(message.To)).Msg("mail sent")

	return nil
}

func (m *mailerImpl) clientOptions() []gomail.Option {
	timeout := m.config.Mail.TimeoutSeconds
	if timeout <= 0 {
		timeout = constant.MailDialTimeoutSeconds
	}

	options := []gomail.Option{
		gomail.WithTimeout(time.Duration(timeout) * time.Second),
	}

	if m.config.Mail.Port > 0 {
		options = append(options, gomail.WithPort(m.config.Mail.Port))
	}

	switch {
	case m.config.Mail.UseSSL:
		options = append(options, gomail.WithSSL())
	case m.config.Mail.UseTLS:
		options = append(options, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		options = append(options, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	if m.config.Mail.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.config.Mail.Username),
			gomail.WithPassword(m.config.Mail.Password),
		)
	}

	return options
}

// BuildMessage validates the headers and assembles the message. Header injection and
// bad sender or recipient addresses are reported as ErrInvalidHeader. A reply-to
// address that does not parse is left off the message.
func BuildMessage(message Message) (*gomail.Msg, error) {
	if len(message.To) == 0 {
		return nil, ErrNoRecipients
	}

	if strings.ContainsAny(message.Subject, "\r\n") {
		return nil, fmt.Errorf("%w: subject", ErrInvalidHeader)
	}

	if strings.ContainsAny(message.ReplyTo, "\r\n") {
		return nil, fmt.Errorf("%w: reply-to", ErrInvalidHeader)
	}

	msg := gomail.NewMsg()

	if err := msg.From(message.From); err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrInvalidHeader, err)
	}

	if err := msg.To(message.To...); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrInvalidHeader, err)
	}

	if message.ReplyTo != "" {
		if err := msg.ReplyTo(message.ReplyTo); err != nil {
			log.Warn().Err(err).Str("reply_to", message.ReplyTo).Msg("reply-to address dropped")
		}
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)

	return msg, nil
}
