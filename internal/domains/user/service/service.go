package service

import (
	"context"
	"errors"
	"fmt"

	"alora/config"
	"alora/infras/otel"
	"alora/internal/domains/user/model/dto"
	"alora/internal/domains/user/repository"
	"alora/shared/constant"
	"alora/shared/failure"
	"alora/shared/password"
	"alora/shared/validator"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const MessageEmailRegistered = "email already registered"

type User interface {
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, dto.FilterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(MessageEmailRegistered) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) || errors.Is(err, password.ErrPasswordTooLong) {
			return res, failure.BadRequest(err) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(constant.ContextSystem, hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(MessageEmailRegistered) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("email", user.Email).Str("level", user.Level).Msg("admin account created")

	res.FromModel(user)

	return res, nil
}
