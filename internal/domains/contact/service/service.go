package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"alora/config"
	"alora/infras/mail"
	"alora/infras/otel"
	"alora/internal/domains/contact/model/dto"
	"alora/internal/domains/contact/repository"
	"alora/shared/constant"
	"alora/shared/failure"
	"alora/shared/validator"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) error
}

type serviceImpl struct {
	repo   repository.Contact
	cfg    *config.Config
	otel   otel.Otel
	mailer mail.Mailer
}

func New(repo repository.Contact, cfg *config.Config, otel otel.Otel, mailer mail.Mailer) Contact {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		otel:   otel,
		mailer: mailer,
	}
}

// ResolveRecipients returns CONTACT_RECIPIENTS when set, otherwise the mail username or,
// failing that, the default sender. Blank entries are dropped.
func ResolveRecipients(cfg *config.Config) []string {
	candidates := cfg.Contact.Recipients
	if len(candidates) == 0 {
		fallback := cfg.Mail.Username
		if fallback == "" {
			fallback = cfg.Mail.DefaultFrom
		}

		candidates = []string{fallback}
	}

	recipients := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			recipients = append(recipients, candidate)
		}
	}

	return recipients
}

// SenderAddress prefers the default sender and falls back to the mail username.
func SenderAddress(cfg *config.Config) string {
	if cfg.Mail.DefaultFrom != "" {
		return cfg.Mail.DefaultFrom
	}

	return cfg.Mail.Username
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if fields := validator.InvalidFields(&req); len(fields) > 0 {
		return failure.Validation(failure.KindMissingField, dto.MessageMissingFields, fields) //nolint:wrapcheck
	}

	recipients := ResolveRecipients(s.cfg)
	if len(recipients) == 0 {
		log.Error().Msg("contact form submitted but no recipient is configured")

		return failure.Internal(failure.KindMailNotConfigured, dto.MessageMailNotConfigured, nil) //nolint:wrapcheck
	}

	err = s.mailer.Send(ctx, mail.Message{
		From:    SenderAddress(s.cfg),
		To:      recipients,
		ReplyTo: req.Email,
		Subject: req.Subject,
		Body:    req.MailBody(),
	})
	if err != nil {
		log.Error().Err(err).Strs("recipients", recipients).Msg("failed to relay contact submission")

		if errors.Is(err, mail.ErrInvalidHeader) {
			return failure.Internal(failure.KindMailDeliveryFailed, dto.MessageInvalidHeader, err) //nolint:wrapcheck
		}

		message := dto.MessageDeliveryFailed
		if s.cfg.Server.Debug {
			message = dto.DeliveryDebugMessage(err)
		}

		return failure.Internal(failure.KindMailDeliveryFailed, message, err) //nolint:wrapcheck
	}

	// Only delivered submissions are recorded. An insert failure here does not fail the request.
	if insertErr := s.repo.Insert(ctx, req.ToModel()); insertErr != nil {
		log.Error().Err(insertErr).Str("email", req.Email).Msg("contact submission relayed but not stored")
	}

	log.Info().Int("recipients", len(recipients)).Msg("contact submission relayed")

	return nil
}
