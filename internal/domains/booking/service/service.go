package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"alora/config"
	"alora/infras/kafka"
	"alora/infras/otel"
	"alora/internal/domains/booking/model"
	"alora/internal/domains/booking/model/dto"
	"alora/internal/domains/booking/repository"
	"alora/shared/constant"
	gDto "alora/shared/dto"
	"alora/shared/failure"
	"alora/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultTopicBookingCreated = "booking.created"

	MessageSaveFailed     = "Failed to save booking to database"
	MessageRetrieveFailed = "Failed to retrieve bookings from database"
)

type Booking interface {
	Create(ctx context.Context, payload map[string]any) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel, producer kafka.Producer) Booking {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		otel:     otel,
		producer: producer,
	}
}

func (s *serviceImpl) Create(ctx context.Context, payload map[string]any) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	validated, err := dto.ValidateBooking(payload, timezone.Today())
	if err != nil {
		log.Warn().Err(err).Str("kind", string(failure.GetKind(err))).Msg("booking rejected")

		return res, err
	}

	booking := validated.ToModel()

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return s.repo.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, failure.Internal(failure.KindStorageFailure, MessageSaveFailed, err) //nolint:wrapcheck
	}

	log.Info().Str("id", booking.ID).Str("branch", booking.Branch).Str("service", booking.Service).Msg("booking created")

	res.FromModel(booking)

	s.publishCreated(ctx, res)

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking dto.BookingResponse) {
	topic := s.cfg.Kafka.Topics.BookingCreated
	if topic == "" {
		topic = defaultTopicBookingCreated
	}

	event := dto.BookingCreatedEvent{
		BookingResponse: booking,
		EventTime:       timezone.Format(timezone.Now(), constant.DateFormat),
	}

	if err := s.producer.SendMessages(ctx, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to publish booking created event")
	}
}

// GetAll reads from the database on every call so a committed booking is listed by the next read.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = model.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc
	filter := gDto.FilterGroup{}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.Internal(failure.KindStorageFailure, MessageRetrieveFailed, err) //nolint:wrapcheck
	}

	count := len(models)

	if params.Limit > 0 {
		count, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return res, failure.Internal(failure.KindStorageFailure, MessageRetrieveFailed, err) //nolint:wrapcheck
		}
	}

	res.FromModels(models, count)

	return res, nil
}
