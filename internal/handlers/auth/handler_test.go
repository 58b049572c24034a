package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alora/infras/otel/mocks"
	authMocks "alora/internal/domains/auth/mocks"
	"alora/internal/domains/auth/model/dto"
	"alora/internal/domains/auth/service"
	"alora/internal/handlers/auth"
	"alora/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *authMocks.MockAuth) http.Handler {
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := authMocks.NewMockAuth(ctrl)

	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "admin@alora.test", Password: "password"}).
		Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil)

	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@alora.test","password":"password"}`)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, "access", res.Data.AccessToken)
	assert.Equal(t, "refresh", res.Data.RefreshToken)
}

func TestHandler_Login_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *authMocks.MockAuth)
		wantCode  int
	}{
		{
			name:      "invalid body",
			body:      `{"email":"not-an-email"}`,
			setupMock: func(*authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			body: `{"email":"admin@alora.test","password":"nope"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(dto.LoginResponse{}, failure.BadRequestFromString(service.MessageInvalidCredentials))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "deactivated",
			body: `{"email":"admin@alora.test","password":"password"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(dto.LoginResponse{}, failure.Unauthorized(service.MessageUserDeactivated))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := authMocks.NewMockAuth(ctrl)
			tt.setupMock(svc)

			recorder := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := authMocks.NewMockAuth(ctrl)

	svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "expired"}).
		Return(dto.RefreshTokenResponse{}, failure.Unauthorized(service.MessageInvalidRefresh))

	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/refresh-token",
		strings.NewReader(`{"refresh_token":"expired"}`)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), service.MessageInvalidRefresh)
}
