package auth

import (
	"context"
	"net/http"

	"alora/infras/otel"
	"alora/internal/domains/auth/service"
	"alora/shared/constant"
	"alora/shared/validator"
	"alora/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
	})
}

// Login godoc
// @Summary Log in a staff account
// @Description Exchange staff credentials for an access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	exchange(handler, w, r, "Login", handler.service.Login)
}

// RefreshToken godoc
// @Summary Refresh an access token
// @Description Trade a valid refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	exchange(handler, w, r, "RefreshToken", handler.service.RefreshToken)
}

// exchange decodes Req from the body, hands it to call and writes the token pair back.
func exchange[Req, Res any](handler *Handler, w http.ResponseWriter, r *http.Request, operation string, call func(context.Context, Req) (Res, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	var req Req
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("operation", operation).Msg("rejected auth request body")

		response.WithError(w, err)

		return
	}

	res, err := call(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("operation", operation).Msg("auth request failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(operation + " succeeded")

	response.WithJSON(w, http.StatusOK, res)
}
