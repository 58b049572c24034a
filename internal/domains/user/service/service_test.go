package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"alora/config"
	"alora/infras/otel/mocks"
	userMocks "alora/internal/domains/user/mocks"
	"alora/internal/domains/user/model"
	"alora/internal/domains/user/model/dto"
	"alora/internal/domains/user/service"
	"alora/shared/constant"
	"alora/shared/failure"
	"alora/shared/password"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_CreateAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)

	svc := service.New(repo, &config.Config{}, mocks.NewOtel())

	var stored model.User

	repo.EXPECT().Exist(gomock.Any(), dto.FilterByEmail("owner@alora.test")).Return(false, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
		stored = user

		return nil
	})

	res, err := svc.CreateAdmin(context.Background(), dto.CreateAdminRequest{
		Email:    " Owner@Alora.test ",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@alora.test", res.Email)
	assert.Equal(t, "owner@alora.test", stored.Email)
	assert.Equal(t, constant.RoleAdmin, res.Level)
	assert.True(t, res.Active)
	assert.Equal(t, constant.ContextSystem, stored.CreatedBy)
	assert.NotEqual(t, "s3cret-password", stored.Password)
	require.NoError(t, password.Verify("s3cret-password", stored.Password))
}

func TestUserService_CreateAdmin_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAdminRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "invalid email",
			req:  dto.CreateAdminRequest{Email: "not-an-email", Password: "s3cret-password"},
			setupMock: func(*userMocks.MockUser) {
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "short password",
			req:  dto.CreateAdminRequest{Email: "owner@alora.test", Password: "short"},
			setupMock: func(*userMocks.MockUser) {
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown level",
			req:  dto.CreateAdminRequest{Email: "owner@alora.test", Password: "s3cret-password", Level: "root"},
			setupMock: func(*userMocks.MockUser) {
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "email taken",
			req:  dto.CreateAdminRequest{Email: "owner@alora.test", Password: "s3cret-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "lookup failure",
			req:  dto.CreateAdminRequest{Email: "owner@alora.test", Password: "s3cret-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "insert failure",
			req:  dto.CreateAdminRequest{Email: "owner@alora.test", Password: "s3cret-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "email registered concurrently",
			req:  dto.CreateAdminRequest{Email: "owner@alora.test", Password: "s3cret-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (user): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation}))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, &config.Config{}, mocks.NewOtel())

			_, err := svc.CreateAdmin(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
